package domain

// Planet is a planetary body in the archive's registry.
//
// Climate and Terrain hold []string after a successful list coercion,
// SurfaceWater and Population hold int — each keeps the original source
// text when conversion fails.
type Planet struct {
	Entity
	Gravity      any // archive notation, e.g. "1 standard"
	Climate      any
	Terrain      any
	SurfaceWater any // percentage of surface covered by water
	Population   any
}

// NewPlanet creates a Planet with its subtype fields unpopulated.
func NewPlanet(url, name string) *Planet {
	return &Planet{Entity: Entity{URL: url, Name: name}}
}

// RepresentableForm returns the planet's serialization-ready mapping.
func (p *Planet) RepresentableForm() map[string]any {
	return map[string]any{
		"url":           p.URL,
		"name":          p.Name,
		"gravity":       p.Gravity,
		"climate":       p.Climate,
		"terrain":       p.Terrain,
		"surface_water": p.SurfaceWater,
		"population":    p.Population,
	}
}
