package sampler

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/hypernull/hypergraph"
)

// checkInterval is the number of steps between context and progress
// checks inside the sampling loops.
const checkInterval = 4096

// Randomize runs a Markov-chain randomization of h in place for the
// given number of steps and returns a Report. All parameters are
// validated before any mutation; validation failures return
// ErrInvalidParameter-wrapped errors.
//
// The run is single-threaded and owns h exclusively until it returns.
// Context cancellation is honored on a coarse interval: the open epoch
// is reconciled first, so h is always left in a consistent state, and
// the partial report is returned together with ctx.Err().
func Randomize(ctx context.Context, h *hypergraph.Hypergraph, steps int, optFns ...func(o *Options)) (Report, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if h == nil {
		return Report{}, fmt.Errorf("%w: nil hypergraph", ErrInvalidParameter)
	}
	if steps < 0 {
		return Report{}, fmt.Errorf("%w: steps must be non-negative, got %d", ErrInvalidParameter, steps)
	}
	if opts.ClashBatch < 1 {
		return Report{}, fmt.Errorf("%w: clash batch must be >= 1, got %d", ErrInvalidParameter, opts.ClashBatch)
	}
	if opts.Labeling != LabelingStub && opts.Labeling != LabelingVertex {
		return Report{}, fmt.Errorf("%w: unrecognized labeling mode %d", ErrInvalidParameter, int(opts.Labeling))
	}

	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint gosec
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Metrics == nil {
		opts.Metrics = NoopMetricsCollector{}
	}
	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = DefaultOptions.ProgressInterval
	}

	if steps == 0 {
		return Report{}, nil
	}

	start := time.Now()

	var (
		rep Report
		err error
	)
	switch opts.Labeling {
	case LabelingStub:
		rep, err = runStub(ctx, h, steps, &opts)
	case LabelingVertex:
		rep, err = runVertex(ctx, h, steps, &opts)
	}

	opts.Metrics.RecordRandomize(steps, rep, time.Since(start), err)
	opts.Logger.Debug("randomization finished",
		"labeling", opts.Labeling.String(),
		"detailed", opts.Detailed,
		"steps", steps,
		"taken", rep.StepsTaken,
		"rejected", rep.StepsRejected,
		"epochs", rep.Epochs,
		"duration", time.Since(start),
	)

	return rep, err
}

// progressReporter throttles OnProgress callbacks with a rate limiter.
type progressReporter struct {
	fn      func(Progress)
	limiter *rate.Limiter
	total   int
}

func newProgressReporter(opts *Options, total int) *progressReporter {
	if opts.OnProgress == nil {
		return nil
	}
	return &progressReporter{
		fn:      opts.OnProgress,
		limiter: rate.NewLimiter(rate.Every(opts.ProgressInterval), 1),
		total:   total,
	}
}

func (p *progressReporter) report(rep Report) {
	if p == nil || !p.limiter.Allow() {
		return
	}
	p.fn(Progress{
		StepsDone:     rep.StepsTaken + rep.StepsRejected,
		StepsTotal:    p.total,
		StepsTaken:    rep.StepsTaken,
		StepsRejected: rep.StepsRejected,
		Epochs:        rep.Epochs,
	})
}
