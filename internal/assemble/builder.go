package assemble

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/evac-plan-etl/internal/adapter/archive"
	"github.com/couchcryptid/evac-plan-etl/internal/coerce"
	"github.com/couchcryptid/evac-plan-etl/internal/domain"
	"github.com/couchcryptid/evac-plan-etl/internal/observability"
)

// Builder constructs typed entities from raw source mappings, applying
// best-effort coercion field by field. Fields that fail to convert keep the
// source value unchanged. Person construction resolves homeworld and species
// references against the archive.
type Builder struct {
	client  *archive.Client
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewBuilder creates a Builder backed by the given archive client.
func NewBuilder(client *archive.Client, logger *slog.Logger, metrics *observability.Metrics) *Builder {
	return &Builder{
		client:  client,
		logger:  logger,
		metrics: metrics,
	}
}

// Planet builds a Planet from a raw mapping. Climate and terrain are split
// into lists, surface water and population converted to integers.
func (b *Builder) Planet(data map[string]any) *domain.Planet {
	planet := domain.NewPlanet(stringField(data, "url"), stringField(data, "name"))
	planet.Gravity = data["gravity"]
	planet.Climate = coerce.ToList(data["climate"], ", ")
	planet.Terrain = coerce.ToList(data["terrain"], ", ")
	planet.SurfaceWater = b.toInteger(data["surface_water"])
	planet.Population = b.toInteger(data["population"])

	b.metrics.EntitiesBuilt.WithLabelValues("planet").Inc()
	return planet
}

// Species builds a Species from a raw mapping.
func (b *Builder) Species(data map[string]any) *domain.Species {
	species := domain.NewSpecies(stringField(data, "url"), stringField(data, "name"))
	species.Classification = data["classification"]
	species.Designation = data["designation"]
	species.Language = data["language"]

	b.metrics.EntitiesBuilt.WithLabelValues("species").Inc()
	return species
}

// Person builds a Person from a raw mapping, fetching the referenced
// homeworld and first species resource from the archive.
func (b *Builder) Person(ctx context.Context, data map[string]any) (*domain.Person, error) {
	person := domain.NewPerson(stringField(data, "url"), stringField(data, "name"))
	person.BirthYear = data["birth_year"]
	person.Height = b.toNumber(data["height"])
	person.Mass = b.toNumber(data["mass"])

	if homeworldURL, ok := data["homeworld"].(string); ok && homeworldURL != "" {
		homeworld, err := b.client.GetResource(ctx, homeworldURL, nil)
		if err != nil {
			return nil, fmt.Errorf("person %q homeworld: %w", person.Name, err)
		}
		person.Homeworld = b.Planet(homeworld)
	}

	if speciesURL, ok := firstStringRef(data["species"]); ok {
		species, err := b.client.GetResource(ctx, speciesURL, nil)
		if err != nil {
			return nil, fmt.Errorf("person %q species: %w", person.Name, err)
		}
		person.Species = b.Species(species)
	}

	b.metrics.EntitiesBuilt.WithLabelValues("person").Inc()
	return person, nil
}

// Starship builds a Starship from a raw mapping, typically an archive record
// merged with CSV overrides.
func (b *Builder) Starship(data map[string]any) *domain.Starship {
	ship := domain.NewStarship(
		stringField(data, "url"),
		stringField(data, "name"),
		stringField(data, "model"),
		stringField(data, "starship_class"),
	)
	ship.Length = b.toNumber(data["length"])
	ship.MaxAtmospheringSpeed = b.toNumber(data["max_atmosphering_speed"])
	ship.HyperdriveRating = b.toNumber(data["hyperdrive_rating"])
	ship.MGLT = b.toInteger(data["MGLT"])
	ship.Armament = coerce.ToList(data["armament"], ", ")
	ship.Crew = b.toInteger(data["crew"])
	ship.Passengers = b.toInteger(data["passengers"])
	ship.Consumables = data["consumables"]
	ship.CargoCapacity = b.toInteger(data["cargo_capacity"])

	b.metrics.EntitiesBuilt.WithLabelValues("starship").Inc()
	return ship
}

// toNumber converts through coerce.ToNumber and counts the fallback when a
// text field comes back unconverted.
func (b *Builder) toNumber(v any) any {
	out := coerce.ToNumber(v)
	if _, wasText := v.(string); wasText {
		if _, stillText := out.(string); stillText {
			b.metrics.CoercionFallbacks.Inc()
		}
	}
	return out
}

// toInteger converts through coerce.ToInteger and counts the fallback when a
// text field comes back unconverted.
func (b *Builder) toInteger(v any) any {
	out := coerce.ToInteger(v)
	if _, wasText := v.(string); wasText {
		if _, stillText := out.(string); stillText {
			b.metrics.CoercionFallbacks.Inc()
		}
	}
	return out
}

// stringField extracts a string value by key, returning "" when the key is
// absent or not a string.
func stringField(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}

// firstStringRef returns the first element of a reference list when it is a
// non-empty string URL.
func firstStringRef(v any) (string, bool) {
	refs, ok := v.([]any)
	if !ok || len(refs) == 0 {
		return "", false
	}
	ref, ok := refs[0].(string)
	return ref, ok && ref != ""
}
