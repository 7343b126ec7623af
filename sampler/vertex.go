package sampler

import (
	"context"
	"time"

	"github.com/hupe1980/hypernull/hypergraph"
)

// clashEdit is one provisionally applied, clash-implicated swap awaiting
// exact evaluation at reconciliation. The acceptance draw u is fixed at
// proposal time so that deferred evaluation reproduces the decision an
// immediate exact evaluation would have made.
type clashEdit struct {
	a, b                       hypergraph.Incidence
	oldK1, oldK2, newK1, newK2 string
	u                          float64
}

// vertexState is the explicit epoch state of the vertex-labeled sampler:
// the live (speculative) multiplicity table, the ledger of provisional
// clash edits, and the pending key/edge guards that keep deferred
// evaluation exact.
type vertexState struct {
	h    *hypergraph.Hypergraph
	opts *Options

	live         multiplicity
	ledger       []clashEdit
	pendingKeys  map[string]int
	pendingEdges map[int]struct{}

	rep     Report
	scratch []int64
}

// runVertex executes the vertex-labeled Metropolis–Hastings sampler with
// epoch/clash-batched bookkeeping.
func runVertex(ctx context.Context, h *hypergraph.Hypergraph, steps int, opts *Options) (Report, error) {
	pairs := newEdgePairs(h, opts.Detailed)
	if !pairs.valid() {
		opts.Logger.Debug("vertex sampler: no valid proposal pair, returning unchanged")
		return Report{}, nil
	}

	s := &vertexState{
		h:            h,
		opts:         opts,
		live:         recount(h),
		pendingKeys:  make(map[string]int),
		pendingEdges: make(map[int]struct{}),
		scratch:      make([]int64, 0, h.MaxDimension()),
	}

	progress := newProgressReporter(opts, steps)

	for i := 0; i < steps; i++ {
		if i%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				s.reconcile()
				return s.rep, err
			}
			progress.report(s.rep)
		}

		s.step(pairs)
	}

	s.reconcile()
	return s.rep, nil
}

// step processes one proposal: draw an edge pair and one node from each,
// classify the swap, and either commit, record provisionally, or reject.
func (s *vertexState) step(pairs *edgePairs) {
	rng := s.opts.Rand

	e1, e2 := pairs.draw(rng)
	p1 := rng.Intn(s.h.Dimension(e1))
	p2 := rng.Intn(s.h.Dimension(e2))

	// An edge carrying a provisional clash edit must not be touched
	// again before its edit is decided; close the epoch first. This
	// must happen before reading the slots: reconciliation may roll
	// the provisional swap back.
	if s.pending(e1) || s.pending(e2) {
		s.reconcile()
	}

	x := s.h.Node(e1, p1)
	y := s.h.Node(e2, p2)

	if x == y {
		// Exchanging identical nodes is a self-transition with ratio 1.
		s.rep.StepsTaken++
		return
	}

	// Vertex-labeled edges are sets: an outcome repeating a node inside
	// one edge is outside the state space and rejected outright.
	if s.contains(e2, x, p2) || s.contains(e1, y, p1) {
		s.rep.StepsRejected++
		return
	}

	oldK1 := s.contentKey(e1, -1, 0)
	oldK2 := s.contentKey(e2, -1, 0)
	newK1 := s.contentKey(e1, p1, y)
	newK2 := s.contentKey(e2, p2, x)

	// One acceptance draw per applied proposal, clash-implicated or not,
	// keeps the random stream independent of ClashBatch.
	u := rng.Float64()

	clash := s.isClash(oldK1, oldK2, newK1, newK2)

	a := hypergraph.Incidence{Edge: e1, Pos: p1}
	b := hypergraph.Incidence{Edge: e2, Pos: p2}
	s.h.SwapStubs(a, b)
	s.live.dec(oldK1)
	s.live.dec(oldK2)
	s.live.inc(newK1)
	s.live.inc(newK2)
	s.rep.StepsTaken++

	if !clash {
		// All four contents unique and untouched: the ratio is exactly
		// 1 whatever happens to the ledger, so the swap is final.
		return
	}

	s.ledger = append(s.ledger, clashEdit{
		a: a, b: b,
		oldK1: oldK1, oldK2: oldK2, newK1: newK1, newK2: newK2,
		u: u,
	})
	for _, k := range [...]string{oldK1, oldK2, newK1, newK2} {
		s.pendingKeys[k]++
	}
	s.pendingEdges[e1] = struct{}{}
	s.pendingEdges[e2] = struct{}{}

	if len(s.ledger) >= s.opts.ClashBatch {
		s.reconcile()
	}
}

func (s *vertexState) pending(e int) bool {
	_, ok := s.pendingEdges[e]
	return ok
}

// contains reports whether edge e holds node at any position other than
// exceptPos.
func (s *vertexState) contains(e int, node int64, exceptPos int) bool {
	for p := 0; p < s.h.Dimension(e); p++ {
		if p != exceptPos && s.h.Node(e, p) == node {
			return true
		}
	}
	return false
}

// contentKey returns the canonical key of edge e's content, with the
// node at replacePos substituted by repl when replacePos >= 0.
func (s *vertexState) contentKey(e, replacePos int, repl int64) string {
	s.scratch = s.scratch[:0]
	for p := 0; p < s.h.Dimension(e); p++ {
		v := s.h.Node(e, p)
		if p == replacePos {
			v = repl
		}
		s.scratch = append(s.scratch, v)
	}
	return hypergraph.KeyOf(s.scratch)
}

// isClash classifies a valid swap. A swap is clash-implicated unless all
// of its contents are provably unique and disjoint from every pending
// clash edit - in which case its acceptance ratio is exactly 1 and it
// can commit without deferred evaluation.
func (s *vertexState) isClash(oldK1, oldK2, newK1, newK2 string) bool {
	if s.pendingKeys[oldK1] > 0 || s.pendingKeys[oldK2] > 0 ||
		s.pendingKeys[newK1] > 0 || s.pendingKeys[newK2] > 0 {
		return true
	}

	// Sequenced counts against the live table: both sources must be
	// unique, both targets must be absent once the sources are removed.
	d1 := s.live[oldK1]
	d2 := s.live[oldK2]
	if oldK2 == oldK1 {
		d2--
	}
	a1 := s.live[newK1]
	if newK1 == oldK1 || newK1 == oldK2 {
		a1--
	}
	a2 := s.live[newK2]
	if newK2 == oldK1 {
		a2--
	}
	if newK2 == oldK2 {
		a2--
	}
	if newK2 == newK1 {
		a2++
	}
	return d1 != 1 || d2 != 1 || a1 != 0 || a2 != 0
}

// reconcile closes the epoch: rewind the pending deltas to recover the
// exact pre-ledger table, replay the ledger in order deciding every
// clash edit exactly, roll back rejected swaps, and reconcile the table
// against a direct recount of the edges. A mismatch between bookkeeping
// and recount means the atomic-update contract was broken and panics.
func (s *vertexState) reconcile() {
	start := time.Now()
	edits := len(s.ledger)

	for i := edits - 1; i >= 0; i-- {
		ed := &s.ledger[i]
		s.live.inc(ed.oldK1)
		s.live.inc(ed.oldK2)
		s.live.dec(ed.newK1)
		s.live.dec(ed.newK2)
	}

	rollbacks := 0
	for i := range s.ledger {
		ed := &s.ledger[i]
		r := acceptRatio(s.live, ed.oldK1, ed.oldK2, ed.newK1, ed.newK2)
		if ed.u < r {
			s.live.dec(ed.oldK1)
			s.live.dec(ed.oldK2)
			s.live.inc(ed.newK1)
			s.live.inc(ed.newK2)
		} else {
			// The exact computation rejects this provisional swap; the
			// pending-edge guard guarantees no later edit touched its
			// edges, so swapping back restores them exactly.
			s.h.SwapStubs(ed.a, ed.b)
			s.rep.StepsTaken--
			s.rep.StepsRejected++
			rollbacks++
		}
	}

	truth := recount(s.h)
	if !truth.equal(s.live) {
		panic("sampler: multiplicity table disagrees with direct recount after reconciliation")
	}
	s.live = truth

	s.ledger = s.ledger[:0]
	clear(s.pendingKeys)
	clear(s.pendingEdges)

	s.rep.Epochs++
	s.opts.Metrics.RecordEpoch(edits, rollbacks, time.Since(start))
	s.opts.Logger.Debug("epoch reconciled",
		"edits", edits,
		"rollbacks", rollbacks,
		"taken", s.rep.StepsTaken,
		"rejected", s.rep.StepsRejected,
	)
}
