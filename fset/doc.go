// Package fset implements discrete fuzzy sets: collections whose
// elements carry a membership degree in [0, 1].
//
// An Element pairs an arbitrary comparable object with its membership
// degree mu; a FuzzySet stores at most one Element per object, keyed by
// the wrapped object (storage is an iset.IndexedSet, so iteration order
// is insertion order and membership degrees stay mutable in place).
//
// Crisp projections:
//
//   - Alpha(a)  — objects with mu >= a (alpha-cut)
//   - SAlpha(a) — objects with mu > a  (strong alpha-cut)
//   - Support() — objects with mu > 0
//   - Core()    — objects with mu == 1
//
// Set algebra follows the standard min/max calculus: Union keeps the
// greater membership of each object, Intersection the lesser, and
// Complement maps mu to 1-mu. Normalize rescales all degrees so the
// height (maximum membership) becomes exactly 1; it is idempotent.
//
// Errors (sentinel):
//
//   - ErrNotFound if Get or Remove references an object not in the set.
package fset
