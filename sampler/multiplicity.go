package sampler

import (
	"github.com/hupe1980/hypernull/hypergraph"
)

// multiplicity maps canonical edge-content keys to the number of edge
// slots currently holding that content. Keys with count zero are absent.
type multiplicity map[string]int

func (m multiplicity) inc(k string) { m[k]++ }

func (m multiplicity) dec(k string) {
	c := m[k]
	if c < 1 {
		panic("sampler: multiplicity table inconsistent: removing absent content " + k)
	}
	if c == 1 {
		delete(m, k)
		return
	}
	m[k] = c - 1
}

// recount builds the multiplicity table from the edges - the ground
// truth the epoch bookkeeping is reconciled against.
func recount(h *hypergraph.Hypergraph) multiplicity {
	m := make(multiplicity, h.NumEdges())
	for e := 0; e < h.NumEdges(); e++ {
		m[h.Key(e)]++
	}
	return m
}

func (m multiplicity) equal(o multiplicity) bool {
	if len(m) != len(o) {
		return false
	}
	for k, c := range m {
		if o[k] != c {
			return false
		}
	}
	return true
}

// acceptRatio computes the Metropolis–Hastings ratio ∏ m_after!/∏ m_before!
// for a swap that replaces contents (oldK1, oldK2) with (newK1, newK2),
// evaluated against table m with sequenced counts so that aliased keys
// (identical old contents, exchange swaps, twin new contents) are
// handled uniformly. A proposal whose four contents are all unique
// yields exactly 1.
func acceptRatio(m multiplicity, oldK1, oldK2, newK1, newK2 string) float64 {
	cnt := make(map[string]int, 4)
	for _, k := range [...]string{oldK1, oldK2, newK1, newK2} {
		cnt[k] = m[k]
	}

	num, den := 1.0, 1.0

	den *= float64(cnt[oldK1])
	cnt[oldK1]--
	den *= float64(cnt[oldK2])
	cnt[oldK2]--

	cnt[newK1]++
	num *= float64(cnt[newK1])
	cnt[newK2]++
	num *= float64(cnt[newK2])

	if den <= 0 {
		panic("sampler: multiplicity table inconsistent: swap source content absent")
	}
	return num / den
}
