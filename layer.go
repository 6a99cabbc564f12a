package stylec

import "strings"

// Layer is a named CSS cascade layer. Layers fix precedence independent of
// selector specificity: a rule in "overrides" always beats one in
// "components", whatever their selectors look like.
type Layer string

// The five recognized layers, lowest precedence first. This order is the
// correctness invariant of the whole system — it must match the order in
// LayerStatement or component customization through "overrides" silently
// breaks.
const (
	LayerReset      Layer = "reset"
	LayerTokens     Layer = "tokens"
	LayerUtilities  Layer = "utilities"
	LayerComponents Layer = "components"
	LayerOverrides  Layer = "overrides"
)

// LayerOrder lists all layers in cascade order.
var LayerOrder = []Layer{
	LayerReset,
	LayerTokens,
	LayerUtilities,
	LayerComponents,
	LayerOverrides,
}

// Valid reports whether l is one of the five recognized layers.
func (l Layer) Valid() bool {
	switch l {
	case LayerReset, LayerTokens, LayerUtilities, LayerComponents, LayerOverrides:
		return true
	}
	return false
}

// LayerStatement returns the @layer ordering declaration that must appear
// once, before any layer block, at the top of a full stylesheet.
func LayerStatement() string {
	names := make([]string, len(LayerOrder))
	for i, l := range LayerOrder {
		names[i] = string(l)
	}
	return "@layer " + strings.Join(names, ", ") + ";"
}

// WrapInLayer wraps compiled CSS text in a named cascade layer. Empty or
// whitespace-only text yields an empty string, never an empty @layer block.
func WrapInLayer(layer Layer, css string) string {
	if strings.TrimSpace(css) == "" {
		return ""
	}
	return "@layer " + string(layer) + " {\n" + css + "\n}"
}
