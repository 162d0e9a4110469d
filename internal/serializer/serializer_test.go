package serializer

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// specimen is a minimal Representable with internal state beyond its form.
type specimen struct {
	url    string
	name   string
	secret string
}

func (p *specimen) RepresentableForm() map[string]any {
	return map[string]any{"url": p.url, "name": p.name}
}

// holder nests a Representable inside plain collections.
type holder struct {
	inner *specimen
	tags  []string
}

func (h *holder) RepresentableForm() map[string]any {
	return map[string]any{"inner": h.inner, "tags": h.tags}
}

func TestMarshal_RepresentableForm(t *testing.T) {
	p := &specimen{url: "u", name: "n", secret: "hidden"}

	data, err := Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Exactly the documented fields, nothing from internal storage.
	assert.Equal(t, map[string]any{"url": "u", "name": "n"}, decoded)
	assert.NotContains(t, string(data), "hidden")
}

func TestMarshal_NestedGraph(t *testing.T) {
	h := &holder{
		inner: &specimen{url: "u2", name: "n2"},
		tags:  []string{"a", "b"},
	}

	data, err := Marshal(h)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	inner, ok := decoded["inner"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "u2", inner["url"])
	assert.Equal(t, []any{"a", "b"}, decoded["tags"])
}

func TestMarshal_Primitives(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"string", "hoth", `"hoth"`},
		{"number", 12.5, "12.5"},
		{"integer", 42, "42"},
		{"bool", true, "true"},
		{"null", nil, "null"},
		{"sequence", []any{1, "a"}, "[\n  1,\n  \"a\"\n]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, strings.TrimSpace(string(data)))
		})
	}
}

func TestMarshal_NonFiniteNumbers(t *testing.T) {
	data, err := Marshal(map[string]any{
		"mass":   math.NaN(),
		"speed":  math.Inf(1),
		"rating": math.Inf(-1),
		"height": 172.0,
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "NaN", decoded["mass"])
	assert.Equal(t, "Infinity", decoded["speed"])
	assert.Equal(t, "-Infinity", decoded["rating"])
	assert.Equal(t, 172.0, decoded["height"])
}

func TestMarshal_NilTypedPointer(t *testing.T) {
	var p *specimen

	data, err := Marshal(map[string]any{"commander": p})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded["commander"])
}

func TestMarshal_NonASCIIPreserved(t *testing.T) {
	data, err := Marshal(map[string]any{"name": "Bésba <&> Ünknown"})
	require.NoError(t, err)

	assert.Contains(t, string(data), "Bésba <&> Ünknown")
	assert.NotContains(t, string(data), `\u`)
}

func TestMarshal_Indentation(t *testing.T) {
	data, err := Marshal(map[string]any{"a": map[string]any{"b": 1}})
	require.NoError(t, err)

	assert.Contains(t, string(data), "\n  \"a\": {\n    \"b\": 1\n  }")
}

func TestMarshal_UnsupportedType(t *testing.T) {
	_, err := Marshal(struct{ X int }{X: 1})

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestMarshal_UnsupportedTypeNested(t *testing.T) {
	_, err := Marshal(map[string]any{"ok": 1, "bad": make(chan int)})

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
}

func TestMarshal_FreshFormPerCall(t *testing.T) {
	p := &specimen{url: "u", name: "n"}

	first := p.RepresentableForm()
	first["name"] = "tampered"
	first["extra"] = true

	second := p.RepresentableForm()
	assert.Equal(t, map[string]any{"url": "u", "name": "n"}, second)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, WriteFile(path, &specimen{url: "u", name: "n"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"url": "u"`)

	// Overwrites existing content.
	require.NoError(t, WriteFile(path, map[string]any{"replaced": true}))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "url")
	assert.Contains(t, string(data), "replaced")
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.json")

	err := WriteFile(path, map[string]any{"a": 1})
	require.Error(t, err)

	var pathErr *os.PathError
	assert.True(t, errors.As(err, &pathErr))
}
