package settings

// Merge deep-merges overlay into base and returns a new document.
// When a key holds a mapping in both documents the merge recurses;
// any other overlay value replaces the base value wholesale.
// Neither input is mutated and no values are aliased into the result.
func Merge(base, overlay map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(overlay))
	for key, value := range base {
		result[key] = deepCopy(value)
	}

	for key, value := range overlay {
		baseMap, baseOK := result[key].(map[string]any)
		overlayMap, overlayOK := value.(map[string]any)
		if baseOK && overlayOK {
			result[key] = Merge(baseMap, overlayMap)
			continue
		}
		result[key] = deepCopy(value)
	}

	return result
}

// deepCopy copies a JSON-compatible value. Scalars are returned as-is;
// maps and slices are copied recursively. JSON-derived data is acyclic,
// so no cycle detection is needed.
func deepCopy(value any) any {
	switch v := value.(type) {
	case map[string]any:
		copied := make(map[string]any, len(v))
		for key, val := range v {
			copied[key] = deepCopy(val)
		}
		return copied
	case []any:
		copied := make([]any, len(v))
		for i, val := range v {
			copied[i] = deepCopy(val)
		}
		return copied
	default:
		return v
	}
}
