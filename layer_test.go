package stylec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayerOrder(t *testing.T) {
	// The cascade order is the correctness invariant of the whole system;
	// pin it exactly.
	assert.Equal(t, []Layer{
		LayerReset,
		LayerTokens,
		LayerUtilities,
		LayerComponents,
		LayerOverrides,
	}, LayerOrder)
}

func TestLayerStatement(t *testing.T) {
	assert.Equal(t, "@layer reset, tokens, utilities, components, overrides;", LayerStatement())
}

func TestLayerValid(t *testing.T) {
	for _, l := range LayerOrder {
		assert.True(t, l.Valid(), "layer %s", l)
	}
	assert.False(t, Layer("theme").Valid())
	assert.False(t, Layer("").Valid())
}

func TestWrapInLayer(t *testing.T) {
	tests := []struct {
		name     string
		css      string
		expected string
	}{
		{"empty", "", ""},
		{"whitespace only", "  ", ""},
		{"newlines only", "\n\t\n", ""},
		{"wraps content", ".x { color: red; }", "@layer components {\n.x { color: red; }\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WrapInLayer(LayerComponents, tt.css))
		})
	}
}
