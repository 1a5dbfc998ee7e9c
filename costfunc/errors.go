package costfunc

import (
	"errors"
	"fmt"
)

// Sentinel errors for cost-function contract violations and numeric
// anomalies. Do not wrap with fmt.Errorf where a sentinel suffices.
var (
	// ErrNotPrecomputed indicates RangeCost was called before Precompute.
	ErrNotPrecomputed = errors.New("costfunc: range_cost called before precompute")

	// ErrEmptySignal indicates Precompute received a zero-length signal.
	ErrEmptySignal = errors.New("costfunc: signal must be non-empty")

	// ErrInvalidRange indicates i>j or an out-of-bounds range was queried.
	ErrInvalidRange = errors.New("costfunc: invalid range")

	// ErrNonFiniteCost indicates a NaN/Inf cost was produced outside the
	// c(i,i) sentinel case.
	ErrNonFiniteCost = errors.New("costfunc: non-finite cost")
)

// nonFiniteAt wraps ErrNonFiniteCost with the offending range, for callers
// that want the coordinates without string-parsing the error.
func nonFiniteAt(i, j int) error {
	return fmt.Errorf("costfunc: non-finite cost at [%d,%d): %w", i, j, ErrNonFiniteCost)
}
