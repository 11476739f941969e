// Package graph provides the crisp graph engine: generic vertex and
// edge storage with directed or undirected semantics, adjacency and
// connectivity queries, and the weight conventions consumed by the
// algorithm packages (path, mst).
//
// # Model
//
// A Graph[V] stores a vertex set and a set of Edge[V] values, ordered
// pairs of distinct vertices. Storage is always directed; an undirected
// graph is a query-time overlay: Edges, Adjacent, Weight and RemoveEdge
// match both orientations of every stored edge, while AddEdge still
// stores the exact pair it was given. Every mutating and query
// operation applies the overlay consistently.
//
// Invariants, maintained by every operation:
//   - every edge's tail and head are members of the vertex set
//     (RemoveVertex cascades over incident edges first);
//   - no duplicate edges under ordered-pair equality;
//   - the directed flag never changes after construction.
//
// # Weights
//
// Weight(tail, head) returns 0 when tail == head, +Inf when no edge
// connects the pair, and otherwise 1 or the value of the WeightFunc
// installed with WithWeightFunc. The unweighted convention makes Weight
// a one-hop reachability indicator, so the shortest-path algorithms
// count hops on plain graphs and real costs on weighted ones.
//
// # Errors
//
// Violations surface as wrapped sentinel errors: ErrSelfLoop,
// ErrVertexNotFound, ErrDuplicateEdge. Test with errors.Is. The two
// documented quiet cases are AddVertex on a present vertex and
// RemoveEdge when nothing matches; both are no-ops.
//
// Vertex and edge enumeration follow insertion order, so results are
// deterministic. Graphs are not safe for concurrent mutation; guard
// shared instances externally.
package graph
