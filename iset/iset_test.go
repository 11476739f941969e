package iset_test

import (
	"testing"

	"github.com/LucaDeng/fuzzpy/iset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record is a minimal IndexedSet member: immutable ID, mutable payload.
type record struct {
	id      string
	payload int
}

func (r *record) Index() string  { return r.id }
func (r *record) Clone() *record { c := *r; return &c }

func TestAddAndGet(t *testing.T) {
	s := iset.New[string, *record]()
	s.Add(&record{id: "a", payload: 1})

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.id)
	assert.Equal(t, 1, got.payload)
	assert.Equal(t, 1, s.Len())
}

func TestGet_Missing(t *testing.T) {
	s := iset.New[string, *record]()

	_, err := s.Get("nope")
	assert.ErrorIs(t, err, iset.ErrNotFound)
}

// TestAdd_DefensiveCopy verifies that mutating the caller's object after
// Add does not affect the stored member.
func TestAdd_DefensiveCopy(t *testing.T) {
	s := iset.New[string, *record]()
	r := &record{id: "a", payload: 1}
	s.Add(r)

	// Mutate the caller's copy; the set must be unaffected.
	r.payload = 99

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 1, got.payload, "stored member must be decoupled from caller's object")
}

// TestGet_MutateInPlace verifies the intended update pattern: fetch the
// stored member by key and mutate its payload without re-adding.
func TestGet_MutateInPlace(t *testing.T) {
	s := iset.New[string, *record]()
	s.Add(&record{id: "a", payload: 1})

	got, err := s.Get("a")
	require.NoError(t, err)
	got.payload = 7

	again, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 7, again.payload)
}

// TestAdd_DuplicateIndexReplaces verifies last-write-wins on a
// duplicate index, with the original insertion position retained.
func TestAdd_DuplicateIndexReplaces(t *testing.T) {
	s := iset.New[string, *record]()
	s.Add(&record{id: "a", payload: 1})
	s.Add(&record{id: "b", payload: 2})
	s.Add(&record{id: "a", payload: 3}) // replaces, keeps position

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"a", "b"}, s.Keys())

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 3, got.payload)
}

func TestRemove(t *testing.T) {
	s := iset.New[string, *record](
		&record{id: "a", payload: 1},
		&record{id: "b", payload: 2},
		&record{id: "c", payload: 3},
	)

	require.NoError(t, s.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, s.Keys())
	assert.False(t, s.Contains("b"))

	// Removing an absent index errors.
	assert.ErrorIs(t, s.Remove("b"), iset.ErrNotFound)
}

func TestKeysAndValues_InsertionOrder(t *testing.T) {
	s := iset.New[string, *record]()
	for i, id := range []string{"x", "y", "z"} {
		s.Add(&record{id: id, payload: i})
	}

	assert.Equal(t, []string{"x", "y", "z"}, s.Keys())

	vals := s.Values()
	require.Len(t, vals, 3)
	for i, v := range vals {
		assert.Equal(t, i, v.payload)
	}
}

func TestContains(t *testing.T) {
	s := iset.New[string, *record](&record{id: "a"})

	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("b"))
	// A full member is tested for via its index.
	assert.True(t, s.Contains((&record{id: "a", payload: 42}).Index()))
}
