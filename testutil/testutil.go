package testutil

import (
	"fmt"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// SquareEdges returns the 4-cycle fixture: four nodes, four dimension-2
// edges forming a square.
func SquareEdges() [][]int64 {
	return [][]int64{{1, 2}, {2, 3}, {3, 4}, {1, 4}}
}

// RandomEdges generates numEdges random edges over the node set
// [0, numNodes). Each edge's dimension is uniform in [minDim, maxDim]
// and its nodes are drawn without replacement. Panics on impossible
// parameters (maxDim > numNodes or minDim < 2).
func RandomEdges(r *RNG, numNodes, numEdges, minDim, maxDim int) [][]int64 {
	if minDim < 2 || maxDim < minDim || maxDim > numNodes {
		panic(fmt.Sprintf("testutil: impossible edge parameters: nodes=%d dims=[%d,%d]", numNodes, minDim, maxDim))
	}

	edges := make([][]int64, numEdges)
	for i := range edges {
		dim := minDim + r.Intn(maxDim-minDim+1)
		perm := r.Perm(numNodes)

		edge := make([]int64, dim)
		for j := 0; j < dim; j++ {
			edge[j] = int64(perm[j])
		}
		edges[i] = edge
	}
	return edges
}
