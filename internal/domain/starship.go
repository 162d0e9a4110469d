package domain

// Starship is a crewed transport craft used for inter-planetary travel in
// realspace or hyperspace. Crew and passenger assignment are separate
// operations from construction: a starship is built from archive and CSV
// data first, then staffed.
type Starship struct {
	Entity
	Model                string // official designation, e.g. "T-65 X-wing"
	StarshipClass        string // e.g. "Starfighter"
	Length               any    // meters
	MaxAtmospheringSpeed any
	HyperdriveRating     any
	MGLT                 any // megalights per hour
	Armament             any // installed weapon systems
	Crew                 any // maximum crew size
	Passengers           any // rated passenger capacity
	Consumables          any // endurance without resupply
	CargoCapacity        any // kilograms
	CrewMembers          map[string]*Person
	PassengerManifest    []*Person
}

// NewStarship creates a Starship with empty crew and passenger rosters.
func NewStarship(url, name, model, starshipClass string) *Starship {
	return &Starship{
		Entity:            Entity{URL: url, Name: name},
		Model:             model,
		StarshipClass:     starshipClass,
		CrewMembers:       map[string]*Person{},
		PassengerManifest: []*Person{},
	}
}

// AssignCrew merges role→person assignments into the crew roster,
// e.g. {"pilot": <Luke Skywalker>}. Existing roles are replaced.
func (s *Starship) AssignCrew(crew map[string]*Person) {
	for role, member := range crew {
		s.CrewMembers[role] = member
	}
}

// AssignPassengers extends the passenger manifest.
func (s *Starship) AssignPassengers(manifest []*Person) {
	s.PassengerManifest = append(s.PassengerManifest, manifest...)
}

// RepresentableForm returns the starship's serialization-ready mapping.
func (s *Starship) RepresentableForm() map[string]any {
	return map[string]any{
		"url":                    s.URL,
		"name":                   s.Name,
		"model":                  s.Model,
		"starship_class":         s.StarshipClass,
		"length":                 s.Length,
		"max_atmosphering_speed": s.MaxAtmospheringSpeed,
		"hyperdrive_rating":      s.HyperdriveRating,
		"MGLT":                   s.MGLT,
		"armament":               s.Armament,
		"crew":                   s.Crew,
		"passengers":             s.Passengers,
		"consumables":            s.Consumables,
		"cargo_capacity":         s.CargoCapacity,
		"crew_members":           s.CrewMembers,
		"passenger_manifest":     s.PassengerManifest,
	}
}
