// Package stats provides read-only projections over a hypergraph,
// computed at the moment of call with no caching across mutations:
// degree and dimension sequences, the node×dimension incidence matrix,
// the projected simple graph, and the triangle/closure quantities the
// projection is typically consumed for.
//
// All functions are pure queries; they hold no reference to the
// hypergraph after returning and reflect whatever state the samplers
// have produced.
//
// The node×dimension matrix is returned as a gonum *mat.Dense and the
// projection as a gonum *simple.UndirectedGraph, so results plug
// directly into gonum's matrix, graph and statistics tooling.
package stats
