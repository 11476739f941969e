// Package fuzzpy is a toolkit for crisp and fuzzy graph mathematics:
// discrete fuzzy sets, graphs whose vertices and edges carry membership
// degrees, and the algorithms that connect the two worlds.
//
// 🚀 What is fuzzpy?
//
//	A generic, single-threaded library that brings together:
//		• Fuzzy sets: membership calculus, min/max operations, alpha-cuts
//		• Crisp graphs: directed or undirected, with pluggable edge weights
//		• Fuzzy graphs: membership degrees on vertices and edges
//		• Shortest paths: Dijkstra, Floyd–Warshall, shortest-path subgraphs
//		• Minimum spanning trees: Kruskal over crisp or fuzzy inputs
//
// ✨ Why choose fuzzpy?
//
//   - Type-safe – generic over any comparable vertex type
//   - One interface – path and tree algorithms run on crisp and fuzzy
//     graphs alike
//   - Deterministic – insertion-order enumeration, reproducible results
//   - Pure Go – no cgo, a single well-known test dependency
//
// Everything is organized under six subpackages:
//
//	iset/   — keyed sets with stable iteration order
//	fset/   — discrete fuzzy sets and the membership calculus
//	graph/  — crisp graphs, edges, queries and relations
//	fgraph/ — fuzzy graphs and their crisp alpha-cut projections
//	path/   — Dijkstra, Floyd–Warshall and shortest-path subgraphs
//	mst/    — Kruskal minimum spanning trees and forests
//
// Quick ASCII example:
//
//	    A──0.9──B
//	    │       │
//	   0.3     0.8
//	    │       │
//	    C──0.1──D
//
//	a fuzzy square: every edge carries a membership degree, and an
//	alpha-cut at 0.5 keeps only A—B and B—D.
//
//	go get github.com/LucaDeng/fuzzpy
package fuzzpy
