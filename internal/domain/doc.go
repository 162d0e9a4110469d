// Package domain models the entities assembled into evacuation-plan documents.
//
// # Data Source
//
// Records originate from a public SWAPI-compatible archive service (JSON over
// HTTP GET) and from local flat files: JSON documents describing the base,
// its garrison, and transport crews, plus a CSV of transport-craft overrides
// with a header row. Both sources deliver nearly every field as text.
//
// # Archive Data Conventions
//
// Unknown values:
//
//	"unknown" and "n/a" are the archive's sentinels for unknown or
//	inapplicable fields (e.g. a droid's birth year, an uncharted planet's
//	population). Detected by the coerce package; never converted to zero.
//
// Dates:
//
//	Years are suffixed with the galactic era, BBY or ABY (before/after the
//	Battle of Yavin), e.g. "19BBY", "3 ABY". Carried as text.
//
// Numeric fields:
//
//	Heights in centimeters, masses in kilograms, lengths in meters,
//	populations as plain integers — all encoded as strings, with list
//	values comma-joined ("temperate, tropical"). Conversion is best-effort:
//	a field that fails to parse keeps its original text, which is why
//	several entity fields are deliberately typed any.
//
// Gravity notation:
//
//	"1" is one standard G, "2" twice standard, "0.5" half — often suffixed
//	("1 standard"), so the field is carried as-is.
//
// # Serialization
//
// Every entity embeds Entity and exposes RepresentableForm, a freshly
// allocated mapping of exactly its documented field set. The serializer
// package consumes that capability; internal field storage is never handed
// out, so callers cannot mutate an entity through its serialized view.
package domain
