package stats

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/hypernull/hypergraph"
)

// Triangles counts the triangles of the projected graph via bitmap
// intersections: for every projected edge (i, j) with i < j, the common
// neighbors above j each close one triangle exactly once.
func Triangles(h *hypergraph.Hypergraph) int {
	adj, _ := adjacency(h)

	var count uint64
	for i, bm := range adj {
		it := bm.Iterator()
		for it.HasNext() {
			j := it.Next()
			if int(j) <= i {
				continue
			}
			common := roaring.And(adj[i], adj[j])
			count += common.GetCardinality() - common.Rank(j)
		}
	}
	return int(count)
}

// Wedges counts the paths of length two (open or closed) in the
// projected graph: sum over nodes of C(degree, 2).
func Wedges(h *hypergraph.Hypergraph) int {
	adj, _ := adjacency(h)

	var count uint64
	for _, bm := range adj {
		d := bm.GetCardinality()
		count += d * (d - 1) / 2
	}
	return int(count)
}

// GlobalClustering returns the global clustering coefficient of the
// projected graph, 3·triangles/wedges - the triadic closure rate the
// null models are typically compared on. Returns 0 when the projection
// has no wedge.
func GlobalClustering(h *hypergraph.Hypergraph) float64 {
	w := Wedges(h)
	if w == 0 {
		return 0
	}
	return 3 * float64(Triangles(h)) / float64(w)
}
