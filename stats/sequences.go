package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/hypernull/hypergraph"
)

// DegreeSequence returns every node's degree, ordered by the sorted
// node set (hypergraph.Nodes order).
func DegreeSequence(h *hypergraph.Hypergraph) []int {
	nodes := h.Nodes()
	seq := make([]int, len(nodes))
	for i, v := range nodes {
		seq[i] = h.Degree(v)
	}
	return seq
}

// DimensionSequence returns every edge's dimension in edge order.
func DimensionSequence(h *hypergraph.Hypergraph) []int {
	seq := make([]int, h.NumEdges())
	for e := 0; e < h.NumEdges(); e++ {
		seq[e] = h.Dimension(e)
	}
	return seq
}

// Summary holds moment statistics of an integer sequence.
type Summary struct {
	Mean     float64
	Variance float64
	Min      int
	Max      int
}

// DegreeSummary summarizes the degree sequence. Variance is the
// unbiased sample variance; a hypergraph with a single node reports 0.
func DegreeSummary(h *hypergraph.Hypergraph) Summary {
	return summarize(DegreeSequence(h))
}

// DimensionSummary summarizes the edge-dimension sequence.
func DimensionSummary(h *hypergraph.Hypergraph) Summary {
	return summarize(DimensionSequence(h))
}

func summarize(seq []int) Summary {
	if len(seq) == 0 {
		return Summary{}
	}

	vals := make([]float64, len(seq))
	s := Summary{Min: seq[0], Max: seq[0]}
	for i, v := range seq {
		vals[i] = float64(v)
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}
	s.Mean = stat.Mean(vals, nil)
	if len(vals) > 1 {
		s.Variance = stat.Variance(vals, nil)
	}
	return s
}
