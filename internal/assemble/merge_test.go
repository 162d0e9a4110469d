package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	t.Run("override replaces top-level keys", func(t *testing.T) {
		base := map[string]any{"a": 1, "b": map[string]any{"x": 1}}
		override := map[string]any{"b": 2}

		merged := Merge(base, override)

		assert.Equal(t, map[string]any{"a": 1, "b": 2}, merged)
	})

	t.Run("override adds new keys", func(t *testing.T) {
		merged := Merge(map[string]any{"a": 1}, map[string]any{"c": 3})

		assert.Equal(t, map[string]any{"a": 1, "c": 3}, merged)
	})

	t.Run("base is not mutated", func(t *testing.T) {
		base := map[string]any{"a": 1, "b": map[string]any{"x": 1}}

		_ = Merge(base, map[string]any{"a": 99, "b": 2})

		assert.Equal(t, map[string]any{"a": 1, "b": map[string]any{"x": 1}}, base)
	})

	t.Run("nested base values are deep copied", func(t *testing.T) {
		base := map[string]any{
			"nested": map[string]any{"x": 1},
			"list":   []any{map[string]any{"y": 2}},
		}

		merged := Merge(base, map[string]any{})
		merged["nested"].(map[string]any)["x"] = 99
		merged["list"].([]any)[0].(map[string]any)["y"] = 99

		assert.Equal(t, 1, base["nested"].(map[string]any)["x"])
		assert.Equal(t, 2, base["list"].([]any)[0].(map[string]any)["y"])
	})

	t.Run("empty base", func(t *testing.T) {
		merged := Merge(map[string]any{}, map[string]any{"a": 1})
		require.Equal(t, map[string]any{"a": 1}, merged)
	})
}
