// Package testutil provides testing utilities for hypernull.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded, thread-safe RNG wrapper and generators for fixture
// edge sequences.
//
// # Fixture Generation
//
//	rng := testutil.NewRNG(seed)
//	edges := testutil.RandomEdges(rng, 50, 200, 2, 4)
//	h, _ := hypergraph.Build(edges)
//
// RandomEdges draws each edge's nodes without replacement, so the
// fixtures are valid starting states for both labeling modes.
package testutil
