package assemble

// Merge returns a new mapping equal to a deep copy of base with override's
// top-level keys applied. Override values replace base values wholesale (no
// recursive merging); neither argument is mutated.
func Merge(base, override map[string]any) map[string]any {
	merged := deepCopyMapping(base)
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

func deepCopyMapping(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopyMapping(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return val
	}
}
