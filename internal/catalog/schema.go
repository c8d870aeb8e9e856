package catalog

// CatalogSchema is the top-level JSON structure of a template catalog file.
type CatalogSchema struct {
	Version   string           `json:"version"`
	Templates []TemplateConfig `json:"templates"`
}

// TemplateConfig is one activity template as maintained in the external
// catalog.
type TemplateConfig struct {
	ID             string             `json:"id"`
	Category       string             `json:"category"`
	Subcategory    string             `json:"subcategory,omitempty"`
	Name           string             `json:"name"`
	Description    string             `json:"description,omitempty"`
	DurationMin    int                `json:"duration_min"`
	Difficulty     int                `json:"difficulty,omitempty"`
	ArchetypeFit   map[string]float64 `json:"archetype_fit,omitempty"`
	ModeFit        map[string]float64 `json:"mode_fit,omitempty"`
	VariationGroup string             `json:"variation_group"`
	TimeOfDay      string             `json:"time_of_day,omitempty"`
	Tags           []string           `json:"tags,omitempty"`
	Active         *bool              `json:"active,omitempty"`
}
