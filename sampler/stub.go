package sampler

import (
	"context"

	"github.com/hupe1980/hypernull/hypergraph"
)

// runStub executes the stub-labeled sampler: every drawn proposal is a
// valid double-stub swap and is applied unconditionally. The swap is a
// self-inverse bijection on the space of stub-matchings with the given
// degree and dimension sequences, so the stationary measure is uniform
// without any rejection step.
func runStub(ctx context.Context, h *hypergraph.Hypergraph, steps int, opts *Options) (Report, error) {
	var rep Report

	pairs := newStubPairs(h, opts.Detailed)
	if !pairs.valid() {
		// No proposal pair exists (e.g. a single dimension class with a
		// single stub under the detail filter). Not an error: the chain
		// has nowhere to move.
		opts.Logger.Debug("stub sampler: no valid proposal pair, returning unchanged")
		return rep, nil
	}

	progress := newProgressReporter(opts, steps)

	for s := 0; s < steps; s++ {
		if s%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			progress.report(rep)
		}

		a, b := pairs.draw(opts.Rand)
		h.SwapStubs(a, b)
		rep.StepsTaken++
	}

	return rep, nil
}
