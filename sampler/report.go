package sampler

// Report summarizes a randomization run.
//
// StepsTaken + StepsRejected equals the requested step count whenever
// the run completed (no early return). A rolled-back clash counts as
// rejected, not taken.
type Report struct {
	// Epochs is the number of multiplicity-table reconciliations
	// performed. Always 0 under stub labeling; at least 1 for any
	// completed vertex-labeled run with steps > 0 and a valid
	// proposal pair.
	Epochs int

	// StepsTaken counts proposals applied and kept, including accepted
	// self-transitions.
	StepsTaken int

	// StepsRejected counts proposals rejected outright (repeated-node
	// outcomes under vertex labeling) plus clashes rolled back at
	// reconciliation.
	StepsRejected int
}
