package domain

// Person is a sentient being (or droid) in the archive's people registry.
// Homeworld and Species are resolved from the archive when the person is
// built, so a fully populated person carries its own nested subgraph.
type Person struct {
	Entity
	BirthYear any // galactic-era year, e.g. "19BBY"
	Height    any // centimeters
	Mass      any // kilograms
	Homeworld *Planet
	Species   *Species
}

// NewPerson creates a Person with its subtype fields unpopulated.
func NewPerson(url, name string) *Person {
	return &Person{Entity: Entity{URL: url, Name: name}}
}

// RepresentableForm returns the person's serialization-ready mapping.
func (p *Person) RepresentableForm() map[string]any {
	return map[string]any{
		"url":        p.URL,
		"name":       p.Name,
		"birth_year": p.BirthYear,
		"height":     p.Height,
		"mass":       p.Mass,
		"homeworld":  p.Homeworld,
		"species":    p.Species,
	}
}
