package hypernull

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/hypernull/sampler"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    runCounter     prometheus.Counter
//	    epochHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRandomize(steps int, rep hypernull.Report, d time.Duration, err error) {
//	    p.runCounter.Inc()
//	    // ... record rejection rate, duration, etc.
//	}
type MetricsCollector = sampler.MetricsCollector

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector = sampler.NoopMetricsCollector

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RandomizeCount      atomic.Int64
	RandomizeErrors     atomic.Int64
	RandomizeTotalNanos atomic.Int64
	StepsTaken          atomic.Int64
	StepsRejected       atomic.Int64
	EpochCount          atomic.Int64
	EpochEdits          atomic.Int64
	EpochRollbacks      atomic.Int64
	EpochTotalNanos     atomic.Int64
}

// RecordRandomize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRandomize(steps int, rep sampler.Report, d time.Duration, err error) {
	b.RandomizeCount.Add(1)
	b.RandomizeTotalNanos.Add(d.Nanoseconds())
	b.StepsTaken.Add(int64(rep.StepsTaken))
	b.StepsRejected.Add(int64(rep.StepsRejected))
	if err != nil {
		b.RandomizeErrors.Add(1)
	}
}

// RecordEpoch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEpoch(edits, rollbacks int, d time.Duration) {
	b.EpochCount.Add(1)
	b.EpochEdits.Add(int64(edits))
	b.EpochRollbacks.Add(int64(rollbacks))
	b.EpochTotalNanos.Add(d.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RandomizeCount:     b.RandomizeCount.Load(),
		RandomizeErrors:    b.RandomizeErrors.Load(),
		RandomizeAvgNanos:  b.avgRandomizeNanos(),
		StepsTaken:         b.StepsTaken.Load(),
		StepsRejected:      b.StepsRejected.Load(),
		EpochCount:         b.EpochCount.Load(),
		EpochEdits:         b.EpochEdits.Load(),
		EpochRollbacks:     b.EpochRollbacks.Load(),
		EpochAvgNanos:      b.avgEpochNanos(),
	}
}

func (b *BasicMetricsCollector) avgRandomizeNanos() int64 {
	count := b.RandomizeCount.Load()
	if count == 0 {
		return 0
	}
	return b.RandomizeTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) avgEpochNanos() int64 {
	count := b.EpochCount.Load()
	if count == 0 {
		return 0
	}
	return b.EpochTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RandomizeCount     int64
	RandomizeErrors    int64
	RandomizeAvgNanos  int64
	StepsTaken         int64
	StepsRejected      int64
	EpochCount         int64
	EpochEdits         int64
	EpochRollbacks     int64
	EpochAvgNanos     int64
}
