package solver

import "errors"

// Sentinel errors for solver contract violations and numeric anomalies.
// Do not wrap with fmt.Errorf where a sentinel suffices.
var (
	// ErrEmptySignal indicates a solver was built from a zero-length
	// signal.
	ErrEmptySignal = errors.New("solver: signal must be non-empty")

	// ErrNotPrecomputed indicates the cost function has not had
	// Precompute called on it.
	ErrNotPrecomputed = errors.New("solver: cost function not precomputed")

	// ErrAlreadySolved indicates Solve was called twice on the same
	// solver instance.
	ErrAlreadySolved = errors.New("solver: solve already ran on this instance")

	// ErrInvalidK indicates a segment-count solver was built with K<0 or
	// K>=n.
	ErrInvalidK = errors.New("solver: invalid changepoint count K")

	// ErrNonFiniteCost indicates a solver's recurrence produced a NaN or
	// +/-Inf objective that was not the costfunc.Infinity sentinel.
	ErrNonFiniteCost = errors.New("solver: non-finite cost encountered")
)
