package fset

import "fmt"

// Element pairs an object with its membership degree in [0, 1].
//
// Identity (hashing, equality, set storage) is defined by the wrapped
// object alone; the membership degree is mutable in place via SetMu.
type Element[T comparable] struct {
	obj T
	mu  float64
}

// NewElement returns an Element wrapping obj with membership degree mu.
func NewElement[T comparable](obj T, mu float64) *Element[T] {
	return &Element[T]{obj: obj, mu: mu}
}

// Object returns the wrapped object.
func (e *Element[T]) Object() T { return e.obj }

// Mu returns the membership degree.
func (e *Element[T]) Mu() float64 { return e.mu }

// SetMu updates the membership degree in place.
func (e *Element[T]) SetMu(mu float64) { e.mu = mu }

// Index returns the wrapped object, satisfying iset.Member: the object
// is the immutable identity of the element.
func (e *Element[T]) Index() T { return e.obj }

// Clone returns an independent copy of the element.
func (e *Element[T]) Clone() *Element[T] { c := *e; return &c }

// String renders the element as "object \ mu".
func (e *Element[T]) String() string {
	return fmt.Sprintf("%v \\ %f", e.obj, e.mu)
}
