package iset

import "errors"

// ErrNotFound indicates a lookup or removal referenced an absent index.
var ErrNotFound = errors.New("iset: no member with given index")

// Member is the constraint for records stored in an IndexedSet.
//
// Index returns the immutable identity key of the record; it must never
// change for the lifetime of the record. Clone returns an independent
// copy of the record, which Add uses to decouple stored state from the
// caller's object.
//
// The compiler enforces that only indexable types enter the container;
// there is no runtime "not indexable" failure mode.
type Member[K comparable, T any] interface {
	Index() K
	Clone() T
}

// IndexedSet is an insertion-ordered set of Members keyed by their index.
//
// The zero value is not usable; construct with New.
type IndexedSet[K comparable, T Member[K, T]] struct {
	items map[K]T
	order []K // insertion order of live indices
}

// New returns an IndexedSet populated with the given members.
// Members are added in argument order under the usual Add rules.
func New[K comparable, T Member[K, T]](members ...T) *IndexedSet[K, T] {
	s := &IndexedSet[K, T]{
		items: make(map[K]T, len(members)),
		order: make([]K, 0, len(members)),
	}
	s.Update(members...)

	return s
}

// Add stores a copy of member, keyed by member.Index().
//
// If a member with the same index already exists it is silently
// replaced (last write wins) and keeps its original insertion position.
func (s *IndexedSet[K, T]) Add(member T) {
	key := member.Index()
	if _, exists := s.items[key]; !exists {
		s.order = append(s.order, key)
	}
	// Store a defensive copy so caller-side mutation cannot reach the set.
	s.items[key] = member.Clone()
}

// Update adds every given member to the set, in order.
func (s *IndexedSet[K, T]) Update(members ...T) {
	for _, m := range members {
		s.Add(m)
	}
}

// Get returns the stored member for key.
// Returns ErrNotFound if no member with that index exists.
//
// The returned value is the set's own copy: mutating its non-index
// fields updates the stored member in place.
func (s *IndexedSet[K, T]) Get(key K) (T, error) {
	m, ok := s.items[key]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}

	return m, nil
}

// Contains reports whether a member with the given index exists.
// Callers holding a full member pass member.Index().
func (s *IndexedSet[K, T]) Contains(key K) bool {
	_, ok := s.items[key]

	return ok
}

// Remove deletes the member with the given index.
// Returns ErrNotFound if no member with that index exists.
func (s *IndexedSet[K, T]) Remove(key K) error {
	if _, ok := s.items[key]; !ok {
		return ErrNotFound
	}
	delete(s.items, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// Keys returns all indices currently stored, in insertion order.
// The returned slice is a copy and may be retained by the caller.
func (s *IndexedSet[K, T]) Keys() []K {
	keys := make([]K, len(s.order))
	copy(keys, s.order)

	return keys
}

// Values returns the stored members in insertion order.
// The members are the set's own copies; see Get for mutation semantics.
func (s *IndexedSet[K, T]) Values() []T {
	vals := make([]T, 0, len(s.order))
	for _, k := range s.order {
		vals = append(vals, s.items[k])
	}

	return vals
}

// Len returns the number of members in the set.
func (s *IndexedSet[K, T]) Len() int { return len(s.items) }
