package sampler

import "time"

// MetricsCollector receives operational records from the sampling loop.
// Implement it to integrate with monitoring systems; the root package
// provides no-op and atomic in-memory implementations.
type MetricsCollector interface {
	// RecordRandomize is called once per Randomize call with the
	// requested step count, the final report and the wall time. err is
	// non-nil only when the run was cut short by context cancellation.
	RecordRandomize(steps int, rep Report, d time.Duration, err error)

	// RecordEpoch is called after each epoch reconciliation with the
	// number of ledger entries replayed, how many were rolled back,
	// and the reconciliation wall time.
	RecordEpoch(edits, rollbacks int, d time.Duration)
}

// NoopMetricsCollector discards all records.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRandomize(int, Report, time.Duration, error) {}
func (NoopMetricsCollector) RecordEpoch(int, int, time.Duration)               {}
