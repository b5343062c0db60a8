package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeIdentities(t *testing.T) {
	doc := map[string]any{
		"model": "sonnet",
		"hooks": map[string]any{"preToolUse": []any{}},
	}

	assert.Equal(t, doc, Merge(doc, map[string]any{}))
	assert.Equal(t, doc, Merge(map[string]any{}, doc))
}

func TestMergeOverlayScalarWins(t *testing.T) {
	tests := map[string]struct {
		base     map[string]any
		overlay  map[string]any
		expected map[string]any
	}{
		"scalar over scalar": {
			base:     map[string]any{"timeout": float64(30)},
			overlay:  map[string]any{"timeout": float64(60)},
			expected: map[string]any{"timeout": float64(60)},
		},
		"scalar over map": {
			base:     map[string]any{"hooks": map[string]any{"stop": []any{}}},
			overlay:  map[string]any{"hooks": "disabled"},
			expected: map[string]any{"hooks": "disabled"},
		},
		"sequence replaces wholesale": {
			base:     map[string]any{"allow": []any{"a", "b"}},
			overlay:  map[string]any{"allow": []any{"c"}},
			expected: map[string]any{"allow": []any{"c"}},
		},
		"nested maps merge": {
			base: map[string]any{
				"env": map[string]any{"A": "1", "B": "2"},
			},
			overlay: map[string]any{
				"env": map[string]any{"B": "3", "C": "4"},
			},
			expected: map[string]any{
				"env": map[string]any{"A": "1", "B": "3", "C": "4"},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, Merge(test.base, test.overlay))
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := map[string]any{
		"env": map[string]any{"A": "1"},
	}
	overlay := map[string]any{
		"env": map[string]any{"B": "2"},
	}

	merged := Merge(base, overlay)

	assert.Equal(t, map[string]any{"env": map[string]any{"A": "1"}}, base)
	assert.Equal(t, map[string]any{"env": map[string]any{"B": "2"}}, overlay)

	// Result must not alias either input.
	merged["env"].(map[string]any)["A"] = "changed"
	assert.Equal(t, "1", base["env"].(map[string]any)["A"])
}
