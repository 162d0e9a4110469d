package domain

// EvacuationPlan provides for removal of a base's garrison in a single lift,
// converting cargo space to passenger space when transports run short. It
// lists the transports assigned to carry personnel and the starships
// escorting them after departure. Assignment lists hold both typed entities
// and raw mappings carried over from source documents, so they are []any.
type EvacuationPlan struct {
	Entity
	Classification               any // document classification, e.g. "Top Secret"
	YearEra                      any // e.g. "3 ABY"
	Description                  any
	GarrisonPersonnelCount       any
	NumAvailableTransports       any
	PassengerOverloadMultiplier  any
	MaxPassengerOverloadCapacity any
	TransportAssignments         []any
	TransportEscorts             []any
}

// NewEvacuationPlan creates an EvacuationPlan with empty assignment lists.
func NewEvacuationPlan(url, name string) *EvacuationPlan {
	return &EvacuationPlan{
		Entity:               Entity{URL: url, Name: name},
		TransportAssignments: []any{},
		TransportEscorts:     []any{},
	}
}

// AddTransport appends a transport to the passenger-assignment list.
func (p *EvacuationPlan) AddTransport(transport any) {
	p.TransportAssignments = append(p.TransportAssignments, transport)
}

// AddEscort appends a starship to the escort list.
func (p *EvacuationPlan) AddEscort(escort any) {
	p.TransportEscorts = append(p.TransportEscorts, escort)
}

// RepresentableForm returns the plan's serialization-ready mapping.
func (p *EvacuationPlan) RepresentableForm() map[string]any {
	return map[string]any{
		"url":                             p.URL,
		"name":                            p.Name,
		"classification":                  p.Classification,
		"year_era":                        p.YearEra,
		"description":                     p.Description,
		"garrison_personnel_count":        p.GarrisonPersonnelCount,
		"num_available_transports":        p.NumAvailableTransports,
		"passenger_overload_multiplier":   p.PassengerOverloadMultiplier,
		"max_passenger_overload_capacity": p.MaxPassengerOverloadCapacity,
		"transport_assignments":           p.TransportAssignments,
		"transport_escorts":               p.TransportEscorts,
	}
}
