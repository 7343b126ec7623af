package sampler

import (
	"math/rand"
	"slices"
	"sort"

	"github.com/hupe1980/hypernull/hypergraph"
)

// groupedPairs draws uniform unordered pairs of distinct members that
// share a group (one group per edge dimension under the detail filter).
// Groups are weighted by their pair count so that every valid pair is
// equally likely. Group membership never changes during a run because
// edge dimensions are invariant.
type groupedPairs struct {
	members [][]int
	cum     []int64 // cumulative pair counts over members
	total   int64
}

func newGroupedPairs(byDim map[int][]int) *groupedPairs {
	// Deterministic group order for reproducible seeded runs.
	dims := make([]int, 0, len(byDim))
	for d := range byDim {
		dims = append(dims, d)
	}
	slices.Sort(dims)

	g := &groupedPairs{}
	for _, d := range dims {
		m := byDim[d]
		n := int64(len(m))
		pairs := n * (n - 1) / 2
		if pairs == 0 {
			continue
		}
		g.members = append(g.members, m)
		g.total += pairs
		g.cum = append(g.cum, g.total)
	}
	return g
}

func (g *groupedPairs) draw(rng *rand.Rand) (int, int) {
	r := rng.Int63n(g.total)
	gi := sort.Search(len(g.cum), func(i int) bool { return g.cum[i] > r })
	m := g.members[gi]

	i := rng.Intn(len(m))
	j := rng.Intn(len(m) - 1)
	if j >= i {
		j++
	}
	return m[i], m[j]
}

// stubPairs produces stub-labeled proposals: two distinct incidences
// drawn uniformly, restricted to equal-dimension edges when detailed.
type stubPairs struct {
	h       *hypergraph.Hypergraph
	grouped *groupedPairs // nil when unrestricted
}

func newStubPairs(h *hypergraph.Hypergraph, detailed bool) *stubPairs {
	if !detailed {
		return &stubPairs{h: h}
	}

	byDim := make(map[int][]int)
	for i := 0; i < h.NumStubs(); i++ {
		d := h.Dimension(h.Stub(i).Edge)
		byDim[d] = append(byDim[d], i)
	}
	return &stubPairs{h: h, grouped: newGroupedPairs(byDim)}
}

// valid reports whether at least one proposal pair exists.
func (s *stubPairs) valid() bool {
	if s.grouped != nil {
		return s.grouped.total > 0
	}
	return s.h.NumStubs() >= 2
}

func (s *stubPairs) draw(rng *rand.Rand) (hypergraph.Incidence, hypergraph.Incidence) {
	if s.grouped != nil {
		i, j := s.grouped.draw(rng)
		return s.h.Stub(i), s.h.Stub(j)
	}

	n := s.h.NumStubs()
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return s.h.Stub(i), s.h.Stub(j)
}

// edgePairs produces vertex-labeled proposals: two distinct edge slots
// drawn uniformly, restricted to equal dimension when detailed.
type edgePairs struct {
	h       *hypergraph.Hypergraph
	grouped *groupedPairs
}

func newEdgePairs(h *hypergraph.Hypergraph, detailed bool) *edgePairs {
	if !detailed {
		return &edgePairs{h: h}
	}

	byDim := make(map[int][]int)
	for e := 0; e < h.NumEdges(); e++ {
		d := h.Dimension(e)
		byDim[d] = append(byDim[d], e)
	}
	return &edgePairs{h: h, grouped: newGroupedPairs(byDim)}
}

func (s *edgePairs) valid() bool {
	if s.grouped != nil {
		return s.grouped.total > 0
	}
	return s.h.NumEdges() >= 2
}

func (s *edgePairs) draw(rng *rand.Rand) (int, int) {
	if s.grouped != nil {
		return s.grouped.draw(rng)
	}

	n := s.h.NumEdges()
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}
