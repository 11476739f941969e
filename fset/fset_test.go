package fset_test

import (
	"testing"

	"github.com/LucaDeng/fuzzpy/fset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSample builds {a\0.2, b\0.5, c\0.8, d\1.0}.
func newSample() *fset.FuzzySet[string] {
	s := fset.New[string]()
	s.AddObject("a", 0.2)
	s.AddObject("b", 0.5)
	s.AddObject("c", 0.8)
	s.AddObject("d", 1.0)

	return s
}

func TestAdd_FirstWriteWins(t *testing.T) {
	s := fset.New[string]()
	s.AddObject("a", 0.3)
	s.AddObject("a", 0.9) // ignored: object already stored

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0.3, s.Mu("a"))
}

func TestContainsAndHas(t *testing.T) {
	s := fset.New[string]()
	s.AddObject("live", 0.4)
	s.AddObject("ghost", 0.0)

	// Contains requires non-zero membership; Has only presence.
	assert.True(t, s.Contains("live"))
	assert.False(t, s.Contains("ghost"))
	assert.True(t, s.Has("ghost"))
	assert.False(t, s.Has("absent"))

	assert.ElementsMatch(t, []string{"live", "ghost"}, s.Objects())
	assert.Equal(t, []string{"live"}, s.Elements())
}

func TestGet_MutateMuInPlace(t *testing.T) {
	s := fset.New[string]()
	s.AddObject("a", 0.3)

	el, err := s.Get("a")
	require.NoError(t, err)
	el.SetMu(0.7)

	assert.Equal(t, 0.7, s.Mu("a"))

	_, err = s.Get("absent")
	assert.ErrorIs(t, err, fset.ErrNotFound)
}

func TestRemove(t *testing.T) {
	s := newSample()

	require.NoError(t, s.Remove("b"))
	assert.False(t, s.Has("b"))
	assert.ErrorIs(t, s.Remove("b"), fset.ErrNotFound)
}

func TestAlphaCuts(t *testing.T) {
	s := newSample()

	// Alpha is >=, SAlpha is strict >.
	assert.Equal(t, []string{"b", "c", "d"}, s.Alpha(0.5))
	assert.Equal(t, []string{"c", "d"}, s.SAlpha(0.5))
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.Support())
	assert.Equal(t, []string{"d"}, s.Core())
}

func TestHeightAndNormal(t *testing.T) {
	s := fset.New[string]()
	assert.Equal(t, 0.0, s.Height(), "empty set has height 0")
	assert.False(t, s.Normal())

	s.AddObject("a", 0.4)
	s.AddObject("b", 0.8)
	assert.Equal(t, 0.8, s.Height())
	assert.False(t, s.Normal())

	s.Normalize()
	assert.True(t, s.Normal())
}

func TestNormalize(t *testing.T) {
	s := fset.New[string]()
	s.AddObject("a", 0.2)
	s.AddObject("b", 0.4)

	s.Normalize()
	assert.InDelta(t, 0.5, s.Mu("a"), 1e-12)
	assert.InDelta(t, 1.0, s.Mu("b"), 1e-12)

	// Idempotence: a second normalization changes nothing.
	s.Normalize()
	assert.InDelta(t, 0.5, s.Mu("a"), 1e-12)
	assert.InDelta(t, 1.0, s.Mu("b"), 1e-12)
}

func TestNormalize_ZeroHeightNoOp(t *testing.T) {
	s := fset.New[string]()
	s.AddObject("a", 0.0)

	s.Normalize()
	assert.Equal(t, 0.0, s.Mu("a"))
}

func TestUnion(t *testing.T) {
	a := fset.New[string]()
	a.AddObject("x", 0.3)
	a.AddObject("y", 0.9)

	b := fset.New[string]()
	b.AddObject("y", 0.4)
	b.AddObject("z", 0.6)

	u := a.Union(b)
	assert.Equal(t, 0.3, u.Mu("x"))
	assert.Equal(t, 0.9, u.Mu("y"), "union keeps the greater degree")
	assert.Equal(t, 0.6, u.Mu("z"))
	assert.Equal(t, 3, u.Len())
}

func TestIntersection(t *testing.T) {
	a := fset.New[string]()
	a.AddObject("x", 0.3)
	a.AddObject("y", 0.9)

	b := fset.New[string]()
	b.AddObject("y", 0.4)
	b.AddObject("z", 0.6)

	i := a.Intersection(b)
	assert.Equal(t, 1, i.Len())
	assert.Equal(t, 0.4, i.Mu("y"), "intersection keeps the lesser degree")
	assert.False(t, i.Has("x"))
	assert.False(t, i.Has("z"))
}

func TestComplement(t *testing.T) {
	s := fset.New[string]()
	s.AddObject("a", 0.2)
	s.AddObject("b", 1.0)

	c := s.Complement()
	assert.InDelta(t, 0.8, c.Mu("a"), 1e-12)
	assert.Equal(t, 0.0, c.Mu("b"))
	// The receiver is untouched.
	assert.Equal(t, 0.2, s.Mu("a"))
}

func TestEqualAndSubsets(t *testing.T) {
	a := newSample()
	b := newSample()

	assert.True(t, a.Equal(b))
	assert.True(t, a.IsSubset(b))
	assert.True(t, a.IsSuperset(b))
	assert.False(t, a.IsStrictSubset(b))
	assert.False(t, a.IsStrictSuperset(b))

	// Raise one degree in b: a becomes a strict subset.
	el, err := b.Get("a")
	require.NoError(t, err)
	el.SetMu(0.6)

	assert.False(t, a.Equal(b))
	assert.True(t, a.IsSubset(b))
	assert.True(t, a.IsStrictSubset(b))
	assert.False(t, a.IsSuperset(b))
	assert.True(t, b.IsStrictSuperset(a))
}
