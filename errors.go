package hypernull

import (
	"github.com/hupe1980/hypernull/hypergraph"
	"github.com/hupe1980/hypernull/loader"
	"github.com/hupe1980/hypernull/sampler"
)

// ErrInvalidParameter is returned when a randomization request is
// rejected before any mutation occurs. Match with errors.Is.
var ErrInvalidParameter = sampler.ErrInvalidParameter

// ErrMalformedEdge indicates an input edge with fewer than two stubs.
// Match with errors.As to recover the offending index and dimension.
type ErrMalformedEdge = hypergraph.ErrMalformedEdge

// ErrParse indicates malformed loader input. Match with errors.As to
// recover the offending line and token.
type ErrParse = loader.ErrParse

// translateError maps subpackage errors onto the facade's documented
// error surface. Sentinels and typed errors are aliased above, so today
// this is a pass-through kept as the single seam for future mappings.
func translateError(err error) error {
	return err
}
