package stylec

// Registry decides whether a style identity should be emitted again within
// the current render scope. It is a stack of seen-key sets: one scope per
// logical unit of output (typically one HTTP response), nested scopes for
// renders that trigger renders.
//
// A Registry is not safe for concurrent use. The contract is exactly one
// PushScope/PopScope pair bracketing one complete, non-concurrent render;
// concurrent responses must each use their own Registry (or thread one
// through a request-scoped context) so their scopes never interleave.
type Registry struct {
	scopes []map[string]struct{}
}

// NewRegistry returns an empty registry with no active scope.
func NewRegistry() *Registry {
	return &Registry{}
}

// PushScope opens a new render scope with an empty seen-key set.
func (r *Registry) PushScope() {
	r.scopes = append(r.scopes, make(map[string]struct{}))
}

// PopScope closes the innermost scope, discarding its seen keys. Popping
// with no active scope is a no-op, so defensive callers may pair pops
// freely.
func (r *Registry) PopScope() {
	if n := len(r.scopes); n > 0 {
		r.scopes[n-1] = nil
		r.scopes = r.scopes[:n-1]
	}
}

// Depth returns the number of active scopes.
func (r *Registry) Depth() int {
	return len(r.scopes)
}

// ShouldInject reports whether the style identified by key still needs to
// be emitted in the innermost scope, recording it as seen when it does.
// With no active scope deduplication is disabled and every call returns
// true — an explicit opt-in behavior, not an omission.
func (r *Registry) ShouldInject(key string) bool {
	if len(r.scopes) == 0 {
		return true
	}
	top := r.scopes[len(r.scopes)-1]
	if _, seen := top[key]; seen {
		return false
	}
	top[key] = struct{}{}
	return true
}

// defaultRegistry backs the package-level scope functions. Adequate for a
// single-threaded host; concurrent hosts must use per-request Registry
// instances instead.
var defaultRegistry = NewRegistry()

// PushStyleScope opens a render scope on the default registry.
func PushStyleScope() { defaultRegistry.PushScope() }

// PopStyleScope closes the innermost scope on the default registry.
func PopStyleScope() { defaultRegistry.PopScope() }

// ShouldInjectStyle consults the default registry for key.
func ShouldInjectStyle(key string) bool { return defaultRegistry.ShouldInject(key) }

// InjectionKey derives a stable dedup identity from a component name and
// its compiled CSS. Keys must come from the compiled payload, never from
// the class map: class names are not stable across compile calls.
func InjectionKey(name, css string) string {
	return name + "-" + shortHash(css)
}
