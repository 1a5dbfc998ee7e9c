package penalization

import "errors"

// Sentinel errors for selector contract violations.
var (
	// ErrEmptySignal indicates a selector was asked to run against a
	// zero-length signal.
	ErrEmptySignal = errors.New("penalization: signal must be non-empty")

	// ErrInvalidPercentile indicates a Percentile aggregator was built
	// with p outside (0,100).
	ErrInvalidPercentile = errors.New("penalization: percentile must be in (0,100)")

	// ErrSelectorNonConvergent indicates the elbow scan exhausted every
	// candidate k in [1,K_max] without finding a break point, and K_max
	// itself could not be returned (K_max == 0, i.e. n too small to admit
	// even one changepoint).
	ErrSelectorNonConvergent = errors.New("penalization: selector did not converge on a changepoint count")
)
