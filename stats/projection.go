package stats

import (
	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/hupe1980/hypernull/hypergraph"
)

// adjacency builds per-node co-occurrence neighbor bitmaps over the
// sorted node set: bit j is set in adj[i] iff nodes[i] and nodes[j]
// share at least one edge. Self-loops from repeated nodes within an
// edge are excluded - the projection is a simple graph.
func adjacency(h *hypergraph.Hypergraph) ([]*roaring.Bitmap, []int64) {
	nodes := h.Nodes()

	idx := make(map[int64]uint32, len(nodes))
	for i, v := range nodes {
		idx[v] = uint32(i)
	}

	adj := make([]*roaring.Bitmap, len(nodes))
	for i := range adj {
		adj[i] = roaring.New()
	}

	for _, edge := range h.Edges() {
		for i, a := range edge {
			for _, b := range edge[i+1:] {
				if a == b {
					continue
				}
				ia, ib := idx[a], idx[b]
				adj[ia].Add(ib)
				adj[ib].Add(ia)
			}
		}
	}
	return adj, nodes
}

// ProjectedGraph returns the simple graph in which two nodes are
// adjacent iff they co-occur in at least one edge. Node IDs carry over
// unchanged.
func ProjectedGraph(h *hypergraph.Hypergraph) *simple.UndirectedGraph {
	adj, nodes := adjacency(h)

	g := simple.NewUndirectedGraph()
	for _, v := range nodes {
		g.AddNode(simple.Node(v))
	}
	for i, bm := range adj {
		it := bm.Iterator()
		for it.HasNext() {
			j := it.Next()
			if int(j) <= i {
				continue
			}
			g.SetEdge(simple.Edge{F: simple.Node(nodes[i]), T: simple.Node(nodes[j])})
		}
	}
	return g
}
