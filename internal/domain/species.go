package domain

// Species is a unit of biodiversity.
type Species struct {
	Entity
	Classification any // e.g. "mammal", "artificial"
	Designation    any // e.g. "sentient"
	Language       any
}

// NewSpecies creates a Species with its subtype fields unpopulated.
func NewSpecies(url, name string) *Species {
	return &Species{Entity: Entity{URL: url, Name: name}}
}

// RepresentableForm returns the species' serialization-ready mapping.
func (s *Species) RepresentableForm() map[string]any {
	return map[string]any{
		"url":            s.URL,
		"name":           s.Name,
		"classification": s.Classification,
		"designation":    s.Designation,
		"language":       s.Language,
	}
}
