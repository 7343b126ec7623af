package hypernull

import (
	"context"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/hypernull/hypergraph"
	"github.com/hupe1980/hypernull/loader"
	"github.com/hupe1980/hypernull/sampler"
	"github.com/hupe1980/hypernull/stats"
)

// Report summarizes a randomization run. See sampler.Report.
type Report = sampler.Report

// Progress is a snapshot of a running randomization. See sampler.Progress.
type Progress = sampler.Progress

// Hypernull is a hypergraph together with the configuration-model
// machinery to randomize it. The zero value is not usable; construct
// with New or the loader variants.
//
// A Hypernull is not safe for concurrent use: a randomization run owns
// the underlying hypergraph until it returns. Clone the instance to
// randomize independent copies.
type Hypernull struct {
	h    *hypergraph.Hypergraph
	opts options
}

// New builds a Hypernull from an edge set. Each edge is the list of
// node IDs it contains; repeated IDs within an edge are allowed and
// every edge needs at least two entries. The input is copied.
func New(edges [][]int64, optFns ...Option) (*Hypernull, error) {
	opts := applyOptions(optFns)

	h, err := hypergraph.Build(edges)
	if err != nil {
		opts.logger.LogBuild(context.Background(), 0, 0, err)
		return nil, translateError(err)
	}
	opts.logger.LogBuild(context.Background(), h.NumNodes(), h.NumEdges(), nil)

	return &Hypernull{h: h, opts: opts}, nil
}

// FromEdgeListFile builds a Hypernull from a whitespace-separated edge
// list file. See loader.EdgeList for the format.
func FromEdgeListFile(path string, optFns ...Option) (*Hypernull, error) {
	edges, err := loader.EdgeListFile(path)
	if err != nil {
		return nil, translateError(err)
	}
	return New(edges, optFns...)
}

// FromSimplexFiles builds a Hypernull from a paired nverts/simplices
// dataset. See loader.Simplices for the format.
func FromSimplexFiles(nvertsPath, simplicesPath string, optFns ...Option) (*Hypernull, error) {
	edges, err := loader.SimplicesFiles(nvertsPath, simplicesPath)
	if err != nil {
		return nil, translateError(err)
	}
	return New(edges, optFns...)
}

// Clone returns an independent deep copy sharing no mutable state with
// the receiver. Use it to snapshot a chain state or to fan an ensemble
// out from a common start.
func (hn *Hypernull) Clone() *Hypernull {
	return &Hypernull{h: hn.h.Clone(), opts: hn.opts}
}

// NumNodes returns the number of distinct nodes.
func (hn *Hypernull) NumNodes() int { return hn.h.NumNodes() }

// NumEdges returns the number of edges.
func (hn *Hypernull) NumEdges() int { return hn.h.NumEdges() }

// Nodes returns the distinct node IDs in ascending order. The slice is
// shared; treat it as read-only.
func (hn *Hypernull) Nodes() []int64 { return hn.h.Nodes() }

// Edges returns a copy of the current edge set, in edge order.
func (hn *Hypernull) Edges() [][]int64 {
	out := make([][]int64, 0, hn.h.NumEdges())
	for _, edge := range hn.h.Edges() {
		c := make([]int64, len(edge))
		copy(c, edge)
		out = append(out, c)
	}
	return out
}

// Degree returns the number of incidences of node, counting repeats
// within an edge once each.
func (hn *Hypernull) Degree(node int64) int { return hn.h.Degree(node) }

// DegreeSequence returns every node's degree, ordered like Nodes.
// Randomization preserves it exactly.
func (hn *Hypernull) DegreeSequence() []int { return stats.DegreeSequence(hn.h) }

// DimensionSequence returns every edge's dimension in edge order.
// Randomization preserves it exactly.
func (hn *Hypernull) DimensionSequence() []int { return stats.DimensionSequence(hn.h) }

// DegreeSummary returns moment statistics of the degree sequence.
func (hn *Hypernull) DegreeSummary() stats.Summary { return stats.DegreeSummary(hn.h) }

// DimensionSummary returns moment statistics of the dimension sequence.
func (hn *Hypernull) DimensionSummary() stats.Summary { return stats.DimensionSummary(hn.h) }

// NodeDimensionMatrix returns the node×dimension incidence-count
// matrix. Detailed-mode randomization preserves it exactly.
func (hn *Hypernull) NodeDimensionMatrix() (*mat.Dense, []int64, []int) {
	return stats.NodeDimensionMatrix(hn.h)
}

// ProjectedGraph returns the simple co-occurrence graph of the current
// state.
func (hn *Hypernull) ProjectedGraph() *simple.UndirectedGraph {
	return stats.ProjectedGraph(hn.h)
}

// Triangles counts triangles in the projected graph.
func (hn *Hypernull) Triangles() int { return stats.Triangles(hn.h) }

// GlobalClustering returns the projected graph's global clustering
// coefficient, the observable hypergraph nulls are most often compared
// on.
func (hn *Hypernull) GlobalClustering() float64 { return stats.GlobalClustering(hn.h) }
