// Package serializer writes heterogeneous object graphs as indented JSON.
//
// Entities advertise their serialized shape through the Representable
// capability rather than struct tags: the serializer never touches internal
// field storage, only the fresh mapping each entity materializes per call.
// Plain values (primitives, maps, slices) encode with their standard JSON
// shape at any nesting depth.
package serializer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"reflect"
)

// Representable is the capability an object must expose to be serialized.
// RepresentableForm must return a freshly allocated mapping of field name to
// value on every call — never a live reference to internal storage.
type Representable interface {
	RepresentableForm() map[string]any
}

// UnsupportedTypeError reports a value that could not be resolved to a
// primitive, mapping, sequence, or representable form.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("serializer: unsupported type %s", e.Type)
}

// Marshal encodes a value as UTF-8 JSON text with 2-space indentation.
// Non-ASCII characters are preserved literally, not escaped.
func Marshal(v any) ([]byte, error) {
	resolved, err := resolve(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resolved); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile serializes a value and writes the document to path, overwriting
// any existing content.
func WriteFile(path string, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// resolve walks a value, replacing every Representable with its mapping form,
// recursing through maps and sequences. The result contains only values
// encoding/json handles natively.
func resolve(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch n := v.(type) {
	case float64:
		return resolveFloat(n), nil
	case float32:
		return resolveFloat(float64(n)), nil
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		return v, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, nil
	}

	if r, ok := v.(Representable); ok {
		return resolveMapping(r.RepresentableForm())
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, &UnsupportedTypeError{Type: rv.Type()}
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			resolved, err := resolve(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			m[iter.Key().String()] = resolved
		}
		return m, nil
	case reflect.Slice, reflect.Array:
		s := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			resolved, err := resolve(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			s[i] = resolved
		}
		return s, nil
	case reflect.Pointer:
		return resolve(rv.Elem().Interface())
	default:
		return nil, &UnsupportedTypeError{Type: rv.Type()}
	}
}

// resolveFloat substitutes text tokens for the non-finite values JSON cannot
// represent. Permissive numeric coercion lets "nan" and "inf" source fields
// through as numbers; the document carries them as "NaN"/"Infinity" strings
// rather than aborting the run.
func resolveFloat(f float64) any {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return f
}

func resolveMapping(form map[string]any) (map[string]any, error) {
	m := make(map[string]any, len(form))
	for k, v := range form {
		resolved, err := resolve(v)
		if err != nil {
			return nil, err
		}
		m[k] = resolved
	}
	return m, nil
}
