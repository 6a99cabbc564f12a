package stylec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_ScopeIsolation(t *testing.T) {
	r := NewRegistry()

	r.PushScope()
	assert.True(t, r.ShouldInject("k"))
	assert.False(t, r.ShouldInject("k"))
	r.PopScope()

	// Scope reset: the key is injectable again.
	r.PushScope()
	assert.True(t, r.ShouldInject("k"))
	r.PopScope()
}

func TestRegistry_NoScopePassthrough(t *testing.T) {
	r := NewRegistry()

	// With no active scope deduplication is disabled entirely.
	assert.True(t, r.ShouldInject("k"))
	assert.True(t, r.ShouldInject("k"))
}

func TestRegistry_NestedScopes(t *testing.T) {
	r := NewRegistry()

	r.PushScope()
	assert.True(t, r.ShouldInject("outer"))

	// A nested render gets its own set; keys seen outside do not leak in.
	r.PushScope()
	assert.Equal(t, 2, r.Depth())
	assert.True(t, r.ShouldInject("outer"))
	assert.True(t, r.ShouldInject("inner"))
	assert.False(t, r.ShouldInject("inner"))
	r.PopScope()

	// Back in the outer scope, its set is intact.
	assert.False(t, r.ShouldInject("outer"))
	assert.True(t, r.ShouldInject("inner"))
	r.PopScope()
}

func TestRegistry_PopWhenEmpty(t *testing.T) {
	r := NewRegistry()
	r.PopScope() // no-op, not a panic
	assert.Equal(t, 0, r.Depth())
}

func TestDefaultRegistry(t *testing.T) {
	PushStyleScope()
	defer PopStyleScope()

	key := InjectionKey("button", ".button-abc { color: red; }")
	assert.True(t, ShouldInjectStyle(key))
	assert.False(t, ShouldInjectStyle(key))
}

func TestInjectionKey(t *testing.T) {
	a := InjectionKey("button", ".a { color: red; }")
	b := InjectionKey("button", ".a { color: blue; }")

	// Content-addressed: same name, different payload, different identity.
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, InjectionKey("button", ".a { color: red; }"))
	assert.Contains(t, a, "button-")
}
