package domain

// Garrison is the military force assigned to a base: commander plus
// personnel counts broken down by role (troops, medical staff, droids).
type Garrison struct {
	Entity
	Commander *Person
	Personnel map[string]any
}

// NewGarrison creates a Garrison with an empty personnel breakdown.
func NewGarrison(url, name string) *Garrison {
	return &Garrison{
		Entity:    Entity{URL: url, Name: name},
		Personnel: map[string]any{},
	}
}

// RepresentableForm returns the garrison's serialization-ready mapping.
func (g *Garrison) RepresentableForm() map[string]any {
	return map[string]any{
		"url":       g.URL,
		"name":      g.Name,
		"commander": g.Commander,
		"personnel": g.Personnel,
	}
}

// MilitaryBase is a garrisoned installation. Composition is strictly
// tree-shaped: the base owns its location planet, garrison, and evacuation
// plan; none of them refer back to the base.
type MilitaryBase struct {
	Entity
	OperationalStatus any // under construction, active, abandoned, destroyed
	Location          *Planet
	Facilities        any
	Garrison          *Garrison
	FixedDefenses     any
	AirSpaceAssets    any // air and space craft assigned to the base
	EvacuationPlan    *EvacuationPlan
}

// NewMilitaryBase creates a MilitaryBase with its subtype fields unpopulated.
func NewMilitaryBase(url, name string) *MilitaryBase {
	return &MilitaryBase{Entity: Entity{URL: url, Name: name}}
}

// RepresentableForm returns the base's serialization-ready mapping.
func (b *MilitaryBase) RepresentableForm() map[string]any {
	return map[string]any{
		"url":                b.URL,
		"name":               b.Name,
		"operational_status": b.OperationalStatus,
		"location":           b.Location,
		"facilities":         b.Facilities,
		"garrison":           b.Garrison,
		"fixed_defenses":     b.FixedDefenses,
		"air_space_assets":   b.AirSpaceAssets,
		"evacuation_plan":    b.EvacuationPlan,
	}
}
