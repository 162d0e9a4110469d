package domain

import "fmt"

// Entity holds the two fields every archive record shares: the resource
// identifier assigned by the upstream service and a common name. Concrete
// entity types embed it and override RepresentableForm with their full
// field set.
type Entity struct {
	URL  string
	Name string
}

// RepresentableForm returns the entity's serialization-ready mapping.
// The mapping is freshly allocated on every call.
func (e *Entity) RepresentableForm() map[string]any {
	return map[string]any{
		"url":  e.URL,
		"name": e.Name,
	}
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s (%s)", e.Name, e.URL)
}
