package hypergraph

import "fmt"

// ErrMalformedEdge indicates an input edge whose dimension is below the
// minimum of 2. It is returned by Build before any state is created.
type ErrMalformedEdge struct {
	Index     int // position of the offending edge in the input sequence
	Dimension int // its length
}

func (e *ErrMalformedEdge) Error() string {
	return fmt.Sprintf("malformed edge at index %d: dimension %d, minimum is 2", e.Index, e.Dimension)
}
