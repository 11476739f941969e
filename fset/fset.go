package fset

import (
	"errors"

	"github.com/LucaDeng/fuzzpy/iset"
)

// ErrNotFound indicates a lookup or removal referenced an object that
// is not in the fuzzy set.
var ErrNotFound = errors.New("fset: object not in fuzzy set")

// FuzzySet is a discrete fuzzy set over comparable objects of type T.
//
// At most one element per object is stored. The zero value is not
// usable; construct with New.
type FuzzySet[T comparable] struct {
	members *iset.IndexedSet[T, *Element[T]]
}

// New returns a FuzzySet populated with the given elements.
// Elements are added in argument order under the usual Add rules.
func New[T comparable](elements ...*Element[T]) *FuzzySet[T] {
	s := &FuzzySet[T]{members: iset.New[T, *Element[T]]()}
	for _, el := range elements {
		s.Add(el)
	}

	return s
}

// Add inserts element into the set. If an element wrapping the same
// object is already present the call is a no-op (the existing degree is
// kept); use Get and SetMu to update a stored degree.
func (s *FuzzySet[T]) Add(element *Element[T]) {
	if s.members.Contains(element.Object()) {
		return
	}
	s.members.Add(element)
}

// AddObject inserts obj with membership degree mu.
// Convenience wrapper for Add.
func (s *FuzzySet[T]) AddObject(obj T, mu float64) {
	s.Add(NewElement(obj, mu))
}

// Remove deletes the element wrapping obj.
// Returns ErrNotFound if no such element exists.
func (s *FuzzySet[T]) Remove(obj T) error {
	if err := s.members.Remove(obj); err != nil {
		return ErrNotFound
	}

	return nil
}

// Get returns the stored element wrapping obj.
// Returns ErrNotFound if no such element exists.
//
// The returned element is the set's own copy: SetMu on it updates the
// stored membership degree in place.
func (s *FuzzySet[T]) Get(obj T) (*Element[T], error) {
	el, err := s.members.Get(obj)
	if err != nil {
		return nil, ErrNotFound
	}

	return el, nil
}

// Contains reports whether obj is a member of the set, i.e. it is
// stored with a non-zero membership degree. Use Has to test presence
// regardless of degree.
func (s *FuzzySet[T]) Contains(obj T) bool {
	el, err := s.members.Get(obj)

	return err == nil && el.Mu() > 0
}

// Has reports whether obj is stored in the set at all, including with
// zero membership.
func (s *FuzzySet[T]) Has(obj T) bool {
	return s.members.Contains(obj)
}

// Mu returns the membership degree of obj, or 0 if obj is not stored.
func (s *FuzzySet[T]) Mu(obj T) float64 {
	el, err := s.members.Get(obj)
	if err != nil {
		return 0
	}

	return el.Mu()
}

// Objects returns every stored object, including those with zero
// membership, in insertion order.
func (s *FuzzySet[T]) Objects() []T {
	return s.members.Keys()
}

// Elements returns the objects with non-zero membership, in insertion
// order.
func (s *FuzzySet[T]) Elements() []T {
	out := make([]T, 0, s.members.Len())
	for _, el := range s.members.Values() {
		if el.Mu() > 0 {
			out = append(out, el.Object())
		}
	}

	return out
}

// All returns the stored elements in insertion order, yielding each
// (object, degree) pair. The elements are the set's own copies; see Get
// for mutation semantics.
func (s *FuzzySet[T]) All() []*Element[T] {
	return s.members.Values()
}

// Len returns the number of stored elements.
func (s *FuzzySet[T]) Len() int { return s.members.Len() }

// Alpha returns the crisp set of objects whose membership degrees meet
// or exceed alpha, in insertion order.
func (s *FuzzySet[T]) Alpha(alpha float64) []T {
	out := make([]T, 0, s.members.Len())
	for _, el := range s.members.Values() {
		if el.Mu() >= alpha {
			out = append(out, el.Object())
		}
	}

	return out
}

// SAlpha returns the crisp set of objects whose membership degrees
// strictly exceed alpha, in insertion order.
func (s *FuzzySet[T]) SAlpha(alpha float64) []T {
	out := make([]T, 0, s.members.Len())
	for _, el := range s.members.Values() {
		if el.Mu() > alpha {
			out = append(out, el.Object())
		}
	}

	return out
}

// Support returns the crisp set of objects with non-zero membership.
func (s *FuzzySet[T]) Support() []T { return s.SAlpha(0) }

// Core returns the crisp set of objects with membership degree exactly 1.
func (s *FuzzySet[T]) Core() []T { return s.Alpha(1) }

// Height returns the maximum membership degree of any element, or 0 for
// an empty set.
func (s *FuzzySet[T]) Height() float64 {
	var h float64
	for _, el := range s.members.Values() {
		if el.Mu() > h {
			h = el.Mu()
		}
	}

	return h
}

// Normal reports whether the set is normal (height exactly 1).
func (s *FuzzySet[T]) Normal() bool { return s.Height() == 1.0 }

// Normalize rescales every membership degree by 1/Height so the
// maximum degree becomes exactly 1. A set of height 0 is left
// untouched. Normalize is idempotent.
func (s *FuzzySet[T]) Normalize() {
	h := s.Height()
	if h <= 0 {
		return
	}
	f := 1.0 / h
	for _, el := range s.members.Values() {
		el.SetMu(el.Mu() * f)
	}
}
