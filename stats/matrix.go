package stats

import (
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/hypernull/hypergraph"
)

// NodeDimensionMatrix returns the node×dimension incidence-count matrix:
// entry (i, j) is the number of edges of dimension dims[j] incident to
// nodes[i], counting multiplicity for repeated nodes within an edge.
// Rows follow the sorted node set; columns are the distinct dimensions
// present, ascending. Detailed-mode sampling leaves this matrix
// invariant.
func NodeDimensionMatrix(h *hypergraph.Hypergraph) (m *mat.Dense, nodes []int64, dims []int) {
	nodes = h.Nodes()

	present := make(map[int]bool)
	for e := 0; e < h.NumEdges(); e++ {
		present[h.Dimension(e)] = true
	}
	dims = make([]int, 0, len(present))
	for d := range present {
		dims = append(dims, d)
	}
	slices.Sort(dims)

	if len(nodes) == 0 || len(dims) == 0 {
		return &mat.Dense{}, nodes, dims
	}

	row := make(map[int64]int, len(nodes))
	for i, v := range nodes {
		row[v] = i
	}
	col := make(map[int]int, len(dims))
	for j, d := range dims {
		col[d] = j
	}

	m = mat.NewDense(len(nodes), len(dims), nil)
	for e, edge := range h.Edges() {
		j := col[h.Dimension(e)]
		for _, v := range edge {
			i := row[v]
			m.Set(i, j, m.At(i, j)+1)
		}
	}
	return m, nodes, dims
}
