package sampler

import (
	"log/slog"
	"math/rand"
	"time"
)

// Labeling selects the null distribution the sampler targets. It is a
// closed set: anything other than the two constants below is rejected
// with ErrInvalidParameter.
type Labeling int

const (
	// LabelingStub targets the stub-labeled configuration model.
	LabelingStub Labeling = iota

	// LabelingVertex targets the vertex-labeled configuration model.
	LabelingVertex
)

func (l Labeling) String() string {
	switch l {
	case LabelingStub:
		return "stub"
	case LabelingVertex:
		return "vertex"
	default:
		return "unknown"
	}
}

// Progress is a snapshot of a running randomization, delivered to the
// OnProgress callback at most once per ProgressInterval.
type Progress struct {
	StepsDone     int // proposals processed so far (taken + rejected)
	StepsTotal    int
	StepsTaken    int
	StepsRejected int
	Epochs        int
}

// Options configures a randomization run.
type Options struct {
	// Labeling selects the target null distribution. Default: stub.
	Labeling Labeling

	// Detailed restricts proposals to equal-dimension edge pairs,
	// preserving the node×dimension incidence matrix.
	Detailed bool

	// ClashBatch is the number of distinct clashes accumulated before
	// the vertex-labeled sampler reconciles its multiplicity table.
	// Must be >= 1. Ignored under stub labeling.
	ClashBatch int

	// Rand is the source of proposal and acceptance draws. If nil, a
	// time-seeded source is used; pass a seeded source for
	// reproducibility.
	Rand *rand.Rand

	// Logger receives epoch summaries at debug level. If nil, logging
	// is discarded.
	Logger *slog.Logger

	// Metrics receives run and epoch records. If nil, NoopMetricsCollector.
	Metrics MetricsCollector

	// OnProgress, if set, is invoked from the sampling loop with a
	// Progress snapshot, throttled to ProgressInterval.
	OnProgress func(Progress)

	// ProgressInterval throttles OnProgress. Default: 1s.
	ProgressInterval time.Duration
}

// DefaultOptions are the options used by Randomize before applying the
// caller's overrides.
var DefaultOptions = Options{
	Labeling:         LabelingStub,
	ClashBatch:       1,
	ProgressInterval: time.Second,
}
