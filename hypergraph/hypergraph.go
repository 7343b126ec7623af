package hypergraph

import (
	"fmt"
	"iter"
	"slices"
)

// Incidence identifies one occurrence of a node inside an edge: the
// edge's index in the edge sequence and the position within that edge.
// Incidences are stable for the lifetime of a hypergraph; only the node
// they hold changes.
type Incidence struct {
	Edge int
	Pos  int
}

// Hypergraph is the canonical in-memory representation: edge slots plus
// a reverse node→incidence index. Construct it with Build; mutate it
// only through ReplaceIncidence and SwapStubs.
type Hypergraph struct {
	edges [][]int64

	// Reverse index: for every node, the incidences currently holding
	// it. slot records each incidence's position inside its node's list
	// so removal is O(1) (swap with last).
	incidences map[int64][]Incidence
	slot       map[Incidence]int

	// Static structures, fixed at construction.
	stubs  []Incidence // every (edge, pos) slot, in edge order
	nodes  []int64     // sorted node set
	maxDim int
}

// Build constructs a hypergraph from an edge sequence. Edges are deep
// copied; the input remains owned by the caller. Any edge of dimension
// < 2 fails construction with *ErrMalformedEdge.
func Build(edges [][]int64) (*Hypergraph, error) {
	h := &Hypergraph{
		edges:      make([][]int64, len(edges)),
		incidences: make(map[int64][]Incidence),
		slot:       make(map[Incidence]int),
	}

	for i, e := range edges {
		if len(e) < 2 {
			return nil, &ErrMalformedEdge{Index: i, Dimension: len(e)}
		}

		h.edges[i] = slices.Clone(e)
		h.maxDim = max(h.maxDim, len(e))

		for p, v := range e {
			inc := Incidence{Edge: i, Pos: p}
			h.stubs = append(h.stubs, inc)
			h.attach(v, inc)
		}
	}

	h.nodes = make([]int64, 0, len(h.incidences))
	for v := range h.incidences {
		h.nodes = append(h.nodes, v)
	}
	slices.Sort(h.nodes)

	return h, nil
}

// attach appends inc to node's incidence list and records its slot.
func (h *Hypergraph) attach(node int64, inc Incidence) {
	list := h.incidences[node]
	h.slot[inc] = len(list)
	h.incidences[node] = append(list, inc)
}

// detach removes inc from node's incidence list via swap-with-last.
func (h *Hypergraph) detach(node int64, inc Incidence) {
	list := h.incidences[node]
	i := h.slot[inc]

	last := len(list) - 1
	if i != last {
		moved := list[last]
		list[i] = moved
		h.slot[moved] = i
	}
	h.incidences[node] = list[:last]
	delete(h.slot, inc)
}

// NumNodes returns the size of the node set. The node set is fixed at
// construction: swaps move incidences between nodes of the set but never
// change any node's degree to zero.
func (h *Hypergraph) NumNodes() int { return len(h.nodes) }

// NumEdges returns the number of edge slots.
func (h *Hypergraph) NumEdges() int { return len(h.edges) }

// NumStubs returns the total number of incidences, i.e. the sum of all
// edge dimensions (equivalently, of all degrees).
func (h *Hypergraph) NumStubs() int { return len(h.stubs) }

// MaxDimension returns the largest edge dimension.
func (h *Hypergraph) MaxDimension() int { return h.maxDim }

// Nodes returns the sorted node set. The returned slice is shared and
// must not be modified.
func (h *Hypergraph) Nodes() []int64 { return h.nodes }

// Degree returns the number of incidences currently holding node.
func (h *Hypergraph) Degree(node int64) int { return len(h.incidences[node]) }

// Dimension returns the length of edge e.
func (h *Hypergraph) Dimension(e int) int { return len(h.edges[e]) }

// Node returns the node currently held by the incidence (e, pos).
func (h *Hypergraph) Node(e, pos int) int64 { return h.edges[e][pos] }

// Edge returns a copy of edge e's node tuple.
func (h *Hypergraph) Edge(e int) []int64 { return slices.Clone(h.edges[e]) }

// Edges iterates over all edges in index order. The yielded slice is a
// view into the hypergraph and must not be modified or retained.
func (h *Hypergraph) Edges() iter.Seq2[int, []int64] {
	return func(yield func(int, []int64) bool) {
		for i, e := range h.edges {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Incidences returns a copy of node's current incidence list.
func (h *Hypergraph) Incidences(node int64) []Incidence {
	return slices.Clone(h.incidences[node])
}

// Stub returns the i-th incidence in the static stub enumeration,
// i ∈ [0, NumStubs). The enumeration is fixed at construction, which
// makes uniform stub draws a single index lookup.
func (h *Hypergraph) Stub(i int) Incidence { return h.stubs[i] }

// ReplaceIncidence sets the node held by incidence (e, pos) to node,
// updating the edge slot and the reverse index as one unit. Replacing a
// slot with the node it already holds is a no-op. Out-of-range
// coordinates or a node outside the node set indicate a programming
// error and panic before any mutation.
func (h *Hypergraph) ReplaceIncidence(e, pos int, node int64) {
	if e < 0 || e >= len(h.edges) || pos < 0 || pos >= len(h.edges[e]) {
		panic(fmt.Sprintf("hypergraph: incidence (%d,%d) out of range", e, pos))
	}
	if _, ok := h.incidences[node]; !ok {
		panic(fmt.Sprintf("hypergraph: node %d not in node set", node))
	}

	old := h.edges[e][pos]
	if old == node {
		return
	}

	inc := Incidence{Edge: e, Pos: pos}
	h.detach(old, inc)
	h.attach(node, inc)
	h.edges[e][pos] = node
}

// SwapStubs exchanges the nodes held by two incidences - the double-stub
// swap both samplers are built on. Edge dimensions and every node's
// degree are unchanged by construction.
func (h *Hypergraph) SwapStubs(a, b Incidence) {
	x := h.edges[a.Edge][a.Pos]
	y := h.edges[b.Edge][b.Pos]
	if x == y {
		return
	}
	h.ReplaceIncidence(a.Edge, a.Pos, y)
	h.ReplaceIncidence(b.Edge, b.Pos, x)
}

// Clone returns a deep copy sharing only the immutable stub enumeration
// and node set. Useful for checkpoints and before/after comparisons.
func (h *Hypergraph) Clone() *Hypergraph {
	c := &Hypergraph{
		edges:      make([][]int64, len(h.edges)),
		incidences: make(map[int64][]Incidence, len(h.incidences)),
		slot:       make(map[Incidence]int, len(h.slot)),
		stubs:      h.stubs,
		nodes:      h.nodes,
		maxDim:     h.maxDim,
	}
	for i, e := range h.edges {
		c.edges[i] = slices.Clone(e)
	}
	for v, list := range h.incidences {
		c.incidences[v] = slices.Clone(list)
	}
	for inc, i := range h.slot {
		c.slot[inc] = i
	}
	return c
}
