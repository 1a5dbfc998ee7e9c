package signal

import "errors"

// Sentinel errors for Signal construction and range queries.
var (
	// ErrEmpty indicates an attempt to build a Signal from zero values.
	ErrEmpty = errors.New("signal: values must be non-empty")

	// ErrNonFinite indicates a NaN or +/-Inf value was found in the input.
	ErrNonFinite = errors.New("signal: non-finite value encountered")

	// ErrRange indicates a [i,j) query outside [0,n] or with i>j.
	ErrRange = errors.New("signal: invalid range")
)
