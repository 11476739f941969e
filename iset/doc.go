// Package iset provides IndexedSet, an insertion-ordered collection of
// mutable records that are identified, deduplicated and looked up by a
// single immutable index field.
//
// The container gives "dict-like access, set-like storage" for objects
// whose business identity is one immutable key while their remaining
// fields stay mutable in place: a stored record can be fetched by key
// and modified without removing and re-adding it.
//
// Storage rules:
//
//   - At most one member per index value. Adding a member whose index is
//     already present silently replaces the stored member (last write
//     wins); the original insertion position is retained.
//   - Add stores a copy of the member (via the Clone constraint), so
//     later mutation of the caller's object does not leak into the set.
//   - Keys and Values enumerate members in insertion order, giving a
//     deterministic iteration surface for higher-level code.
//
// Errors (sentinel):
//
//   - ErrNotFound if a lookup or removal references an absent index.
//
// Complexity: Add, Get, Contains are O(1) amortized; Remove is O(n) due
// to order maintenance; Keys and Values are O(n).
package iset
