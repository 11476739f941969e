// Package fgraph provides FuzzyGraph: a graph whose vertices and edges
// carry membership degrees in [0, 1], stored as two fuzzy sets (one of
// vertices, one of graph.Edge values).
//
// Plain AddVertex/AddEdge calls default to membership 1.0; the
// AddFuzzyVertex/AddFuzzyEdge/Connect variants take an explicit degree.
// Edge queries use the same From/To constraints and undirected overlay
// as the crisp engine, and FuzzyGraph satisfies graph.Weighted, so the
// crisp algorithms (path.Dijkstra, path.FloydWarshall, mst.Kruskal, …)
// run directly on fuzzy graphs.
//
// Weights invert membership: Weight(t, h) is 0 when t == h, 1/Mu(t, h)
// otherwise, and +Inf when the membership is 0 — a stronger fuzzy
// connection means a lower traversal cost.
//
// Crisp projections: Alpha(a) and SAlpha(a) build a *graph.Graph
// containing the vertices and edges whose membership meets (>=) or
// strictly exceeds (>) the threshold, additionally dropping any edge
// with a cut endpoint. Normalize rescales the vertex and edge degrees
// independently so each set's maximum becomes 1.
package fgraph
