package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/dayweave/internal/domain"
)

// LoadFile reads and validates a catalog file. Validation errors are joined
// into a single error so callers can surface the full list.
func LoadFile(path string) (*CatalogSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var schema CatalogSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	if errs := ValidateSchema(&schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return &schema, nil
}

// ToDomain converts a catalog entry to a domain template. The catalog must
// have been validated already; conversion does not re-check fields.
func ToDomain(c TemplateConfig, now time.Time) domain.Template {
	t := domain.Template{
		ID:             c.ID,
		Category:       domain.Category(c.Category),
		Subcategory:    c.Subcategory,
		Name:           c.Name,
		Description:    c.Description,
		DurationMin:    c.DurationMin,
		Difficulty:     c.Difficulty,
		VariationGroup: c.VariationGroup,
		TimeOfDayPref:  domain.TimeOfDay(c.TimeOfDay),
		Tags:           c.Tags,
		Active:         true,
		CreatedAt:      now,
	}
	if t.Difficulty == 0 {
		t.Difficulty = 1
	}
	if t.TimeOfDayPref == "" {
		t.TimeOfDayPref = domain.TimeAny
	}
	if c.Active != nil {
		t.Active = *c.Active
	}
	if len(c.ArchetypeFit) > 0 {
		t.ArchetypeFit = make(map[domain.Archetype]float64, len(c.ArchetypeFit))
		for k, v := range c.ArchetypeFit {
			t.ArchetypeFit[domain.Archetype(strings.TrimSpace(k))] = v
		}
	}
	if len(c.ModeFit) > 0 {
		t.ModeFit = make(map[domain.Mode]float64, len(c.ModeFit))
		for k, v := range c.ModeFit {
			t.ModeFit[domain.Mode(strings.TrimSpace(k))] = v
		}
	}
	return t
}
