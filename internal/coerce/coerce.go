// Package coerce provides best-effort conversions for stringly-typed source
// fields. Archive records and flat-file rows deliver every value as text;
// downstream entities want numbers and lists but must tolerate malformed or
// already-typed input without aborting the whole assembly. Each conversion is
// therefore total: on failure the input comes back unchanged and the caller
// keeps whatever the source gave it.
package coerce

import (
	"strconv"
	"strings"
)

// unknownMarkers are the archive's sentinels for unknown or unreported values.
var unknownMarkers = []string{"unknown", "n/a"}

// ToNumber parses a string as a decimal floating-point number. Non-string
// input or a parse failure returns the value unchanged.
//
// The accepted grammar is strconv.ParseFloat's: signs, exponent notation,
// "nan", and "inf"/"infinity" all parse as numbers. Source data occasionally
// carries such tokens and the permissive behavior is intentional.
func ToNumber(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return value
	}
	return n
}

// ToInteger parses a string as a base-10 integer. Non-string input or a parse
// failure returns the value unchanged; fractional text such as "4.2" is a
// parse failure, not a truncation.
func ToInteger(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return value
	}
	return n
}

// ToList splits a string on the literal delimiter. Input that is not a string
// (already a sequence, nil, numeric) is returned unchanged.
func ToList(value any, delimiter string) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	return strings.Split(s, delimiter)
}

// IsUnknown reports whether the value is one of the archive's unknown-value
// sentinels ("unknown", "n/a"), ignoring case and surrounding whitespace.
func IsUnknown(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, marker := range unknownMarkers {
		if value == marker {
			return true
		}
	}
	return false
}
