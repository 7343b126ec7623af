package hypernull

import "log/slog"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	seed             *int64
}

// Option configures Hypernull constructor behavior.
//
// Instance-level options set defaults for every run started from the
// instance; the Randomize builder can override them per run.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring
// randomization runs and epoch reconciliations.
//
// Example with BasicMetricsCollector:
//
//	metrics := &hypernull.BasicMetricsCollector{}
//	hn, _ := hypernull.New(edges, hypernull.WithMetricsCollector(metrics))
//	// ... run ...
//	stats := metrics.GetStats()
//	fmt.Printf("Steps: %d, Rejected: %d\n", stats.StepsTaken, stats.StepsRejected)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := hypernull.NewJSONLogger(slog.LevelInfo)
//	hn, _ := hypernull.New(edges, hypernull.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithSeed fixes the default random seed for every run started from
// this instance. Runs remain deterministic for a fixed seed; the
// Randomize builder's Seed overrides this per run.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
