package sampler

import "errors"

// ErrInvalidParameter is returned when a randomization request is
// rejected before any mutation occurs: negative step count, ClashBatch
// below 1, an unrecognized labeling mode, or a nil hypergraph. Wrapped
// errors carry the offending value.
var ErrInvalidParameter = errors.New("invalid parameter")
