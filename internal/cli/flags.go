package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/dayweave/internal/domain"
)

// enumValue is a pflag.Value restricted to a fixed set of strings, so bad
// archetype or mode spellings fail at parse time instead of deep in a service.
type enumValue struct {
	value   *string
	allowed map[string]bool
}

func newEnumValue(def string, target *string, allowed map[string]bool) *enumValue {
	*target = def
	return &enumValue{value: target, allowed: allowed}
}

func (e *enumValue) String() string { return *e.value }

func (e *enumValue) Set(v string) error {
	if !e.allowed[v] {
		return fmt.Errorf("must be one of: %s", strings.Join(sortedKeys(e.allowed), ", "))
	}
	*e.value = v
	return nil
}

func (e *enumValue) Type() string { return "string" }

var _ pflag.Value = (*enumValue)(nil)

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func archetypeFlag(target *string) *enumValue {
	allowed := make(map[string]bool, len(domain.ValidArchetypes))
	for a := range domain.ValidArchetypes {
		allowed[string(a)] = true
	}
	return newEnumValue(string(domain.ArchetypeSteadyBuilder), target, allowed)
}

func modeFlag(target *string) *enumValue {
	allowed := make(map[string]bool, len(domain.ValidModes))
	for m := range domain.ValidModes {
		allowed[string(m)] = true
	}
	return newEnumValue(string(domain.ModeStandard), target, allowed)
}
