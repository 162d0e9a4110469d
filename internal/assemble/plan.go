package assemble

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/couchcryptid/evac-plan-etl/internal/adapter/archive"
	"github.com/couchcryptid/evac-plan-etl/internal/adapter/localfile"
	"github.com/couchcryptid/evac-plan-etl/internal/coerce"
	"github.com/couchcryptid/evac-plan-etl/internal/domain"
	"github.com/couchcryptid/evac-plan-etl/internal/observability"
	"github.com/couchcryptid/evac-plan-etl/internal/serializer"
)

// Input and output document names, relative to the configured directories.
const (
	planetRegistryFile = "sw_planets-v1p0.json"
	echoBaseFile       = "sw_echo_base-v1p0.json"
	transportCraftFile = "sw_echo_base_transport_craft.csv"
	brightHopeCrewFile = "sw_bright_hope_crew.json"

	uninhabitedOutFile = "sw_uninhabited_planets.json"
	echoBaseOutFile    = "sw_echo_base-v1p1.json"
)

// availableTransports is the number of GR-75 transports the base can field
// for a single-lift evacuation.
const availableTransports = 30

// Indices into archive listing results and the transport-craft CSV. The
// archive returns registries in a fixed published order; the CSV rows follow
// the base's hangar manifest.
const (
	peopleLukeIdx    = 0
	peopleC3POIdx    = 1
	peopleR2D2Idx    = 2
	peopleLeiaIdx    = 4
	planetsHothIdx   = 3
	starshipFalcIdx  = 4
	starshipXWingIdx = 6
	csvXWingIdx      = 0
)

// assetModels are corrected model designations for the base's air and space
// assets, applied over the source document's entries in order.
var assetModels = []string{
	"T-65 X-wing",
	"BTL Y-wing",
	"t-47 airspeeder",
	"GR-75 medium transport",
	"YT-1300fp light freighter",
}

// Workflow runs the evacuation-plan assembly end to end: the uninhabited
// planet survey first, then the Echo Base document with its evacuation plan.
type Workflow struct {
	client  *archive.Client
	builder *Builder
	logger  *slog.Logger
	metrics *observability.Metrics
	dataDir string
	outDir  string
}

// NewWorkflow creates a Workflow reading inputs from dataDir and writing
// documents to outDir.
func NewWorkflow(client *archive.Client, builder *Builder, logger *slog.Logger, metrics *observability.Metrics, dataDir, outDir string) *Workflow {
	return &Workflow{
		client:  client,
		builder: builder,
		logger:  logger,
		metrics: metrics,
		dataDir: dataDir,
		outDir:  outDir,
	}
}

// Run executes the full assembly. The first error aborts the run; nothing is
// retried.
func (w *Workflow) Run(ctx context.Context) error {
	started := clock.Now()

	if err := w.writeUninhabitedSurvey(); err != nil {
		return fmt.Errorf("uninhabited survey: %w", err)
	}
	if err := w.writeEchoBaseDocument(ctx); err != nil {
		return fmt.Errorf("echo base document: %w", err)
	}

	w.logger.Info("assembly complete", "duration", clock.Since(started))
	return nil
}

// writeUninhabitedSurvey reads the planet registry and writes the subset of
// planets whose population is an unknown marker — candidate sites for a
// fallback base.
func (w *Workflow) writeUninhabitedSurvey() error {
	doc, err := localfile.ReadJSON(filepath.Join(w.dataDir, planetRegistryFile))
	if err != nil {
		return err
	}
	registry, ok := doc.([]any)
	if !ok {
		return fmt.Errorf("planet registry %s: document is not a list", planetRegistryFile)
	}

	uninhabited := []*domain.Planet{}
	for i, entry := range registry {
		data, ok := entry.(map[string]any)
		if !ok {
			return fmt.Errorf("planet registry %s: entry %d is not an object", planetRegistryFile, i)
		}
		population, ok := data["population"].(string)
		if !ok {
			return fmt.Errorf("planet registry %s: entry %d population is missing or not text", planetRegistryFile, i)
		}
		if coerce.IsUnknown(population) {
			uninhabited = append(uninhabited, w.builder.Planet(data))
		}
	}

	if err := w.writeDocument(uninhabitedOutFile, uninhabited); err != nil {
		return err
	}
	w.logger.Info("uninhabited survey written",
		"planets_considered", len(registry),
		"uninhabited", len(uninhabited),
	)
	return nil
}

// writeEchoBaseDocument assembles the Echo Base entity, its garrison, and the
// evacuation plan with transport and escort assignments, then writes the
// complete document.
func (w *Workflow) writeEchoBaseDocument(ctx context.Context) error {
	doc, err := localfile.ReadJSON(filepath.Join(w.dataDir, echoBaseFile))
	if err != nil {
		return err
	}
	baseData, ok := doc.(map[string]any)
	if !ok {
		return fmt.Errorf("base document %s: not an object", echoBaseFile)
	}

	base := domain.NewMilitaryBase(stringField(baseData, "url"), stringField(baseData, "name"))

	if err := w.attachLocation(ctx, base, baseData); err != nil {
		return err
	}
	if err := w.attachGarrison(ctx, base, baseData); err != nil {
		return err
	}
	if err := attachBaseAssets(base, baseData); err != nil {
		return err
	}

	plan, err := w.buildEvacuationPlan(ctx, baseData)
	if err != nil {
		return err
	}
	base.EvacuationPlan = plan

	if err := w.writeDocument(echoBaseOutFile, base); err != nil {
		return err
	}
	w.logger.Info("echo base document written",
		"base", base.Name,
		"transports", len(plan.TransportAssignments),
		"escorts", len(plan.TransportEscorts),
	)
	return nil
}

// attachLocation builds the base's location planet from the archive registry,
// overriding its resource identifier with the base document's reference.
func (w *Workflow) attachLocation(ctx context.Context, base *domain.MilitaryBase, baseData map[string]any) error {
	planets, err := w.listResults(ctx, "/planets/")
	if err != nil {
		return err
	}
	planetData, err := resultAt(planets, planetsHothIdx)
	if err != nil {
		return fmt.Errorf("planet registry: %w", err)
	}

	location := w.builder.Planet(planetData)
	if ref, ok := baseData["planet"].(map[string]any); ok {
		location.URL = stringField(ref, "url")
	}
	base.Location = location
	return nil
}

// attachGarrison builds the garrison with its commander from the base
// document.
func (w *Workflow) attachGarrison(ctx context.Context, base *domain.MilitaryBase, baseData map[string]any) error {
	garrisonData, ok := baseData["garrison"].(map[string]any)
	if !ok {
		return fmt.Errorf("base document: missing garrison object")
	}

	garrison := domain.NewGarrison(stringField(garrisonData, "url"), stringField(garrisonData, "name"))

	commanderData, ok := garrisonData["commander"].(map[string]any)
	if !ok {
		return fmt.Errorf("base document: missing garrison commander")
	}
	commander, err := w.builder.Person(ctx, commanderData)
	if err != nil {
		return fmt.Errorf("garrison commander: %w", err)
	}
	garrison.Commander = commander

	if personnel, ok := garrisonData["personnel"].(map[string]any); ok {
		garrison.Personnel = personnel
	}

	base.Garrison = garrison
	return nil
}

// attachBaseAssets copies status, facilities, and defensive assets from the
// base document, applying the corrected model designations to the air and
// space asset entries.
func attachBaseAssets(base *domain.MilitaryBase, baseData map[string]any) error {
	assets, ok := baseData["air_space_assets"].([]any)
	if !ok || len(assets) < len(assetModels) {
		return fmt.Errorf("base document: expected at least %d air/space assets", len(assetModels))
	}
	for i, model := range assetModels {
		asset, ok := assets[i].(map[string]any)
		if !ok {
			return fmt.Errorf("base document: air/space asset %d is not an object", i)
		}
		asset["model"] = model
	}

	base.OperationalStatus = baseData["operational_status"]
	base.Facilities = baseData["facilities"]
	base.FixedDefenses = baseData["fixed_defenses"]
	base.AirSpaceAssets = assets
	return nil
}

// buildEvacuationPlan assembles the plan from the base document, staffs the
// Bright Hope transport and its escorts, and computes the evacuation
// arithmetic.
func (w *Workflow) buildEvacuationPlan(ctx context.Context, baseData map[string]any) (*domain.EvacuationPlan, error) {
	planData, ok := baseData["evacuation_plan"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("base document: missing evacuation_plan object")
	}

	plan := domain.NewEvacuationPlan(stringField(planData, "url"), stringField(planData, "name"))
	plan.Classification = planData["classification"]
	plan.YearEra = planData["year_era"]
	plan.Description = planData["description"]
	plan.PassengerOverloadMultiplier = coerce.ToInteger(planData["passenger_overload_multiplier"])
	if assignments, ok := planData["transport_passenger_assignments"].([]any); ok {
		plan.TransportAssignments = assignments
	}
	if escorts, ok := planData["transport_escorts"].([]any); ok {
		plan.TransportEscorts = escorts
	}

	starships, err := w.listResults(ctx, "/starships/")
	if err != nil {
		return nil, err
	}
	craftRows, err := localfile.ReadCSV(filepath.Join(w.dataDir, transportCraftFile), ',')
	if err != nil {
		return nil, err
	}
	if len(craftRows) < 2 {
		return nil, fmt.Errorf("transport craft %s: expected at least 2 rows", transportCraftFile)
	}
	people, err := w.listResults(ctx, "/people/")
	if err != nil {
		return nil, err
	}

	transport, err := w.buildBrightHope(ctx, starships, craftRows, people)
	if err != nil {
		return nil, err
	}
	plan.AddTransport(transport)

	xwing, err := w.buildXWingEscort(ctx, starships, craftRows, people)
	if err != nil {
		return nil, err
	}
	plan.AddEscort(xwing)

	falcon, err := w.buildFalconEscort(ctx, starships, craftRows)
	if err != nil {
		return nil, err
	}
	plan.AddEscort(falcon)

	count, err := personnelCount(baseData)
	if err != nil {
		return nil, err
	}
	plan.GarrisonPersonnelCount = count
	plan.NumAvailableTransports = availableTransports

	seating, ok := asInt(transport.Passengers)
	if !ok {
		return nil, fmt.Errorf("transport %q: passenger rating %v is not numeric", transport.Name, transport.Passengers)
	}
	multiplier, ok := asInt(plan.PassengerOverloadMultiplier)
	if !ok {
		return nil, fmt.Errorf("evacuation plan: overload multiplier %v is not numeric", plan.PassengerOverloadMultiplier)
	}
	plan.MaxPassengerOverloadCapacity = availableTransports * seating * multiplier

	return plan, nil
}

// buildBrightHope assembles the GR-75 transport from the archive record and
// CSV overrides, staffs its flight crew from the crew document, and embarks
// the priority passengers.
func (w *Workflow) buildBrightHope(ctx context.Context, starships []any, craftRows []map[string]string, people []any) (*domain.Starship, error) {
	record, err := resultAt(starships, len(starships)-1)
	if err != nil {
		return nil, fmt.Errorf("starship registry: %w", err)
	}
	combined := Merge(record, rowMapping(craftRows[len(craftRows)-2]))
	combined["name"] = "Bright Hope"
	transport := w.builder.Starship(combined)

	crewDoc, err := localfile.ReadJSON(filepath.Join(w.dataDir, brightHopeCrewFile))
	if err != nil {
		return nil, err
	}
	crewData, ok := crewDoc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("crew document %s: not an object", brightHopeCrewFile)
	}

	crew := map[string]*domain.Person{}
	for _, role := range []string{"pilot", "co-pilot", "navigator"} {
		memberData, ok := crewData[role].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("crew document %s: missing %s", brightHopeCrewFile, role)
		}
		member, err := w.builder.Person(ctx, memberData)
		if err != nil {
			return nil, fmt.Errorf("crew %s: %w", role, err)
		}
		crew[role] = member
	}
	transport.AssignCrew(crew)

	leia, err := w.personAt(ctx, people, peopleLeiaIdx)
	if err != nil {
		return nil, err
	}
	threepio, err := w.personAt(ctx, people, peopleC3POIdx)
	if err != nil {
		return nil, err
	}
	transport.AssignPassengers([]*domain.Person{leia, threepio})

	return transport, nil
}

// buildXWingEscort assembles the X-wing starfighter escort with Luke
// Skywalker at the stick and R2-D2 in the astromech socket.
func (w *Workflow) buildXWingEscort(ctx context.Context, starships []any, craftRows []map[string]string, people []any) (*domain.Starship, error) {
	record, err := resultAt(starships, starshipXWingIdx)
	if err != nil {
		return nil, fmt.Errorf("starship registry: %w", err)
	}
	xwing := w.builder.Starship(Merge(record, rowMapping(craftRows[csvXWingIdx])))

	luke, err := w.personAt(ctx, people, peopleLukeIdx)
	if err != nil {
		return nil, err
	}
	artoo, err := w.personAt(ctx, people, peopleR2D2Idx)
	if err != nil {
		return nil, err
	}
	xwing.AssignCrew(map[string]*domain.Person{
		"pilot":           luke,
		"astromech_droid": artoo,
	})

	return xwing, nil
}

// buildFalconEscort assembles the Millennium Falcon escort crewed by the
// smugglers Han Solo and Chewbacca, fetched by direct resource identifier.
func (w *Workflow) buildFalconEscort(ctx context.Context, starships []any, craftRows []map[string]string) (*domain.Starship, error) {
	record, err := resultAt(starships, starshipFalcIdx)
	if err != nil {
		return nil, fmt.Errorf("starship registry: %w", err)
	}
	falcon := w.builder.Starship(Merge(record, rowMapping(craftRows[len(craftRows)-1])))

	han, err := w.fetchPerson(ctx, w.client.URL("/people/14/"))
	if err != nil {
		return nil, err
	}
	chewbacca, err := w.fetchPerson(ctx, w.client.URL("/people/13/"))
	if err != nil {
		return nil, err
	}
	falcon.AssignCrew(map[string]*domain.Person{
		"pilot":    han,
		"co-pilot": chewbacca,
	})

	return falcon, nil
}

func (w *Workflow) writeDocument(name string, v any) error {
	path := filepath.Join(w.outDir, name)
	if err := serializer.WriteFile(path, v); err != nil {
		return err
	}
	w.metrics.DocumentsWritten.Inc()
	return nil
}

// listResults fetches a registry listing and returns its results sequence.
func (w *Workflow) listResults(ctx context.Context, path string) ([]any, error) {
	resource, err := w.client.GetResource(ctx, w.client.URL(path), nil)
	if err != nil {
		return nil, err
	}
	results, ok := resource["results"].([]any)
	if !ok {
		return nil, fmt.Errorf("listing %s: missing results sequence", path)
	}
	return results, nil
}

// personAt builds a Person from a listing entry.
func (w *Workflow) personAt(ctx context.Context, people []any, idx int) (*domain.Person, error) {
	data, err := resultAt(people, idx)
	if err != nil {
		return nil, fmt.Errorf("people registry: %w", err)
	}
	return w.builder.Person(ctx, data)
}

// fetchPerson fetches a person record by resource identifier and builds it.
func (w *Workflow) fetchPerson(ctx context.Context, resourceURL string) (*domain.Person, error) {
	data, err := w.client.GetResource(ctx, resourceURL, nil)
	if err != nil {
		return nil, err
	}
	return w.builder.Person(ctx, data)
}

// resultAt extracts a listing entry as an object mapping.
func resultAt(results []any, idx int) (map[string]any, error) {
	if idx < 0 || idx >= len(results) {
		return nil, fmt.Errorf("entry %d out of range (have %d)", idx, len(results))
	}
	data, ok := results[idx].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("entry %d is not an object", idx)
	}
	return data, nil
}

// personnelCount sums the garrison's personnel breakdown.
func personnelCount(baseData map[string]any) (int, error) {
	garrison, _ := baseData["garrison"].(map[string]any)
	personnel, ok := garrison["personnel"].(map[string]any)
	if !ok {
		return 0, fmt.Errorf("base document: missing garrison personnel")
	}

	total := 0
	for role, v := range personnel {
		n, ok := asInt(v)
		if !ok {
			return 0, fmt.Errorf("garrison personnel %q: count %v is not numeric", role, v)
		}
		total += n
	}
	return total, nil
}

// rowMapping widens a CSV row to the mapping shape Merge operates on.
func rowMapping(row map[string]string) map[string]any {
	m := make(map[string]any, len(row))
	for k, v := range row {
		m[k] = v
	}
	return m
}

// asInt accepts the integer shapes that reach the workflow: coerced ints and
// JSON-decoded float64 values with no fractional part.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
