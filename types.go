package stylec

import "fmt"

// StyleEntry is a single key/value pair inside a StyleObject.
// The value is one of:
//   - string: a CSS value, passed through verbatim
//   - int / float64: a numeric value, unit-inferred on output
//   - StyleObject: a nested block (selector or at-rule condition group)
type StyleEntry struct {
	Key   string
	Value any
}

// StyleObject is an insertion-ordered mapping from style key to value.
// Go maps do not preserve insertion order, so the mapping is a slice of
// entries; compilation order follows construction order.
//
// Keys are interpreted by shape:
//   - "padding", "backgroundColor": CSS property (camelCase → kebab-case)
//   - "&:hover": nested selector attached to the parent selector
//   - " .icon": descendant selector (leading space preserved)
//   - "@container" / "@media" / "@supports": at-rule condition group
type StyleObject []StyleEntry

// Set appends an entry and returns the extended object, builder style:
//
//	s := stylec.StyleObject{}.Set("padding", "1rem").Set("opacity", 0.8)
func (s StyleObject) Set(key string, value any) StyleObject {
	return append(s, StyleEntry{Key: key, Value: value})
}

// Get returns the first value recorded for key.
func (s StyleObject) Get(key string) (any, bool) {
	for _, e := range s {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// ContainerConfig carries optional CSS container metadata. When present,
// compilation emits an auxiliary rule declaring container-name/container-type
// on the conventional ".{name}-container" selector.
type ContainerConfig struct {
	Name string
	Type string // defaults to "inline-size"
}

// ComponentStyleConfig is the input to Compile. Styles maps semantic style
// keys (e.g. "button") to StyleObject blocks; every key yields exactly one
// generated class name in the resulting ClassMap.
type ComponentStyleConfig struct {
	Layer     Layer
	Container *ContainerConfig
	Styles    StyleObject
}

// Compiled is the output of one Compile call. CSS is a single layer-wrapped
// block of rule text; ClassMap maps each semantic style key to its generated
// class name. Class names are unique only within this call — compiling the
// same config twice may yield different names.
type Compiled struct {
	ClassMap map[string]string
	CSS      string
}

// ConfigError reports a structurally malformed style configuration,
// identifying the offending key. It is the only error class Compile returns;
// all well-formed input compiles without error.
type ConfigError struct {
	Key     string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("style key %q: %s", e.Key, e.Message)
}

func configErrorf(key, format string, args ...any) error {
	return &ConfigError{Key: key, Message: fmt.Sprintf(format, args...)}
}
