package catalog

import (
	"fmt"

	"github.com/alexanderramin/dayweave/internal/domain"
)

// ValidateSchema checks a catalog for structural problems. It returns all
// errors found rather than stopping at the first one, so a bad catalog can be
// fixed in one pass.
func ValidateSchema(s *CatalogSchema) []error {
	var errs []error

	if len(s.Templates) == 0 {
		errs = append(errs, fmt.Errorf("catalog has no templates"))
		return errs
	}

	seen := make(map[string]bool, len(s.Templates))
	for i, t := range s.Templates {
		label := t.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}

		if t.ID == "" {
			errs = append(errs, fmt.Errorf("template %s: id is required", label))
		} else if seen[t.ID] {
			errs = append(errs, fmt.Errorf("template %s: duplicate id", label))
		}
		seen[t.ID] = true

		if t.Name == "" {
			errs = append(errs, fmt.Errorf("template %s: name is required", label))
		}
		if !domain.ValidCategories[domain.Category(t.Category)] {
			errs = append(errs, fmt.Errorf("template %s: unknown category %q", label, t.Category))
		}
		if t.DurationMin <= 0 {
			errs = append(errs, fmt.Errorf("template %s: duration_min must be positive", label))
		}
		if t.Difficulty < 0 || t.Difficulty > 5 {
			errs = append(errs, fmt.Errorf("template %s: difficulty must be between 1 and 5", label))
		}
		if t.VariationGroup == "" {
			errs = append(errs, fmt.Errorf("template %s: variation_group is required", label))
		}
		if t.TimeOfDay != "" {
			switch domain.TimeOfDay(t.TimeOfDay) {
			case domain.TimeMorning, domain.TimeAfternoon, domain.TimeEvening, domain.TimeAny:
			default:
				errs = append(errs, fmt.Errorf("template %s: unknown time_of_day %q", label, t.TimeOfDay))
			}
		}
		for arch, w := range t.ArchetypeFit {
			if !domain.ValidArchetypes[domain.Archetype(arch)] {
				errs = append(errs, fmt.Errorf("template %s: unknown archetype %q in archetype_fit", label, arch))
			}
			if w < 0 || w > 1 {
				errs = append(errs, fmt.Errorf("template %s: archetype_fit[%s] must be in [0,1]", label, arch))
			}
		}
		for mode, w := range t.ModeFit {
			if !domain.ValidModes[domain.Mode(mode)] {
				errs = append(errs, fmt.Errorf("template %s: unknown mode %q in mode_fit", label, mode))
			}
			if w < 0 || w > 1 {
				errs = append(errs, fmt.Errorf("template %s: mode_fit[%s] must be in [0,1]", label, mode))
			}
		}
	}

	return errs
}
