package hypergraph

import (
	"slices"
	"strconv"
)

// KeyOf canonicalizes an edge content and returns its multiplicity-table
// key: the nodes sorted ascending, rendered as a ':'-joined decimal
// string. Two edges have equal keys iff they hold the same node multiset.
//
// The input slice is sorted in place; pass a scratch copy when the
// original order matters.
func KeyOf(nodes []int64) string {
	slices.Sort(nodes)

	buf := make([]byte, 0, len(nodes)*4)
	for i, v := range nodes {
		if i > 0 {
			buf = append(buf, ':')
		}
		buf = strconv.AppendInt(buf, v, 10)
	}
	return string(buf)
}

// Key returns the canonical content key of edge e.
func (h *Hypergraph) Key(e int) string {
	return KeyOf(slices.Clone(h.edges[e]))
}

// HasRepeatedNode reports whether edge e currently holds any node more
// than once. Such contents are legal under stub-labeled semantics and
// disallowed as swap outcomes under vertex-labeled semantics.
func (h *Hypergraph) HasRepeatedNode(e int) bool {
	return hasRepeat(h.edges[e])
}

func hasRepeat(nodes []int64) bool {
	for i, v := range nodes {
		for _, w := range nodes[i+1:] {
			if v == w {
				return true
			}
		}
	}
	return false
}
