package stylec

import "strings"

// Compile turns a component style configuration into a class map and one
// layer-wrapped block of CSS text.
//
// Compilation is a pure function of its input: no I/O, no locks, no shared
// state. It may run concurrently from unrelated requests without
// coordination. The returned Compiled is never mutated afterwards;
// ownership transfers entirely to the caller.
func Compile(cfg ComponentStyleConfig) (*Compiled, error) {
	layer := cfg.Layer
	if layer == "" {
		layer = LayerComponents
	}
	if !layer.Valid() {
		return nil, configErrorf("layer", "unknown cascade layer %q", string(cfg.Layer))
	}

	var frags []string
	if cfg.Container != nil {
		frags = append(frags, containerRule(cfg.Container))
	}

	classMap := make(map[string]string, len(cfg.Styles))
	for i, entry := range cfg.Styles {
		obj, ok := entry.Value.(StyleObject)
		if !ok {
			return nil, configErrorf(entry.Key, "style entry requires a style object, got %T", entry.Value)
		}
		class := generateClassName(entry.Key, i)
		classMap[entry.Key] = class

		compiled, err := compileObject(obj, class)
		if err != nil {
			return nil, err
		}
		frags = append(frags, compiled...)
	}

	return &Compiled{
		ClassMap: classMap,
		CSS:      WrapInLayer(layer, strings.Join(frags, "\n")),
	}, nil
}

// containerRule emits the auxiliary rule carrying container metadata. The
// rule targets the conventional ".{name}-container" selector
// (".component-container" when unnamed) so markup can opt an ancestor into
// being the query container.
func containerRule(c *ContainerConfig) string {
	name := kebabCase(c.Name)
	selector := "component-container"
	if name != "" {
		selector = name + "-container"
	}

	ctype := c.Type
	if ctype == "" {
		ctype = "inline-size"
	}

	var b strings.Builder
	b.WriteString("." + selector + " {")
	if name != "" {
		b.WriteString(" container-name: " + name + ";")
	}
	b.WriteString(" container-type: " + ctype + "; }")
	return b.String()
}
