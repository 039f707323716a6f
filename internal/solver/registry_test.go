package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPlugin is a minimal plugin for registry and dispatch tests.
type stubPlugin struct {
	name    string
	tag     InvariantTag
	outcome *Outcome
	err     error
	calls   *[]string // optional call-order recorder
}

func (p *stubPlugin) Name() string      { return p.name }
func (p *stubPlugin) Tag() InvariantTag { return p.tag }

func (p *stubPlugin) TrySolve(text string) (*Outcome, error) {
	if p.calls != nil {
		*p.calls = append(*p.calls, p.name)
	}
	return p.outcome, p.err
}

func TestRegistry_PreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubPlugin{name: "alpha"})
	r.Register(&stubPlugin{name: "beta"})
	r.Register(&stubPlugin{name: "gamma"})

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, r.Names())
}

func TestRegistry_ReplaceKeepsPosition(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubPlugin{name: "alpha", tag: TagPolynomial})
	r.Register(&stubPlugin{name: "beta"})
	r.Register(&stubPlugin{name: "alpha", tag: TagSequences})

	require.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"alpha", "beta"}, r.Names(), "replaced name keeps its slot")
	assert.Equal(t, TagSequences, r.Get("alpha").Tag(), "latter registration wins")
}

func TestRegistry_NoDuplicateNamesInListing(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubPlugin{name: "alpha"})
	r.Register(&stubPlugin{name: "alpha"})

	names := r.Names()
	seen := map[string]bool{}
	for _, n := range names {
		assert.False(t, seen[n], "duplicate name %q in ordered listing", n)
		seen[n] = true
	}
}

func TestRegistry_GetHasUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubPlugin{name: "alpha"})

	assert.True(t, r.Has("alpha"))
	assert.NotNil(t, r.Get("alpha"))
	assert.Nil(t, r.Get("missing"))

	assert.True(t, r.Unregister("alpha"))
	assert.False(t, r.Unregister("alpha"), "second removal reports false")
	assert.False(t, r.Has("alpha"))
	assert.Empty(t, r.Names())
}

func TestRegistry_UnregisterClosesGap(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubPlugin{name: "alpha"})
	r.Register(&stubPlugin{name: "beta"})
	r.Register(&stubPlugin{name: "gamma"})

	require.True(t, r.Unregister("beta"))
	assert.Equal(t, []string{"alpha", "gamma"}, r.Names())
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubPlugin{name: "alpha"})
	r.Clear()

	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Has("alpha"))
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubPlugin{name: "alpha"})

	all := r.All()
	all[0] = &stubPlugin{name: "mutated"}

	assert.Equal(t, "alpha", r.All()[0].Name())
}
