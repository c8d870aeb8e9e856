package domain

import "time"

// Template is a vetted activity template from the library. Templates are
// immutable once created; the catalog is maintained externally and imported.
type Template struct {
	ID             string
	Category       Category
	Subcategory    string
	Name           string
	Description    string
	DurationMin    int
	Difficulty     int // 1 (easiest) .. 5 (hardest)
	ArchetypeFit   map[Archetype]float64
	ModeFit        map[Mode]float64
	VariationGroup string
	TimeOfDayPref  TimeOfDay
	Tags           []string
	Active         bool
	CreatedAt      time.Time
}

const defaultFitWeight = 0.5

// ArchetypeWeight returns the fit weight for the archetype, defaulting to
// 0.5 when the template carries no weight for it.
func (t *Template) ArchetypeWeight(a Archetype) float64 {
	if w, ok := t.ArchetypeFit[a]; ok {
		return w
	}
	return defaultFitWeight
}

// ModeWeight returns the fit weight for the mode, defaulting to 0.5.
func (t *Template) ModeWeight(m Mode) float64 {
	if w, ok := t.ModeFit[m]; ok {
		return w
	}
	return defaultFitWeight
}

// MatchesTimeOfDay reports whether the template may be scheduled at the
// requested time of day. A preference of "any" on either side matches.
func (t *Template) MatchesTimeOfDay(tod TimeOfDay) bool {
	if tod == TimeAny || tod == "" {
		return true
	}
	return t.TimeOfDayPref == tod || t.TimeOfDayPref == TimeAny
}
