package model

import "errors"

// Sentinel errors for AlgorithmInput validation and case/changepoint
// parsing.
var (
	// ErrEmptySignal indicates an AlgorithmInput was built with a zero
	// length signal.
	ErrEmptySignal = errors.New("model: signal must be non-empty")

	// ErrNilCostFunction indicates a nil CostFunction was supplied.
	ErrNilCostFunction = errors.New("model: cost function must be non-nil")

	// ErrInvalidPenalization indicates a negative penalization beta.
	ErrInvalidPenalization = errors.New("model: penalization must be >= 0")

	// ErrInvalidK indicates a negative max-changepoints bound.
	ErrInvalidK = errors.New("model: max changepoints must be >= 0")

	// ErrMalformedCase indicates a case's signal/date lines could not be
	// parsed (§6 case format).
	ErrMalformedCase = errors.New("model: malformed case input")

	// ErrMalformedChangepoints indicates a changepoint list string could
	// not be parsed (§6 ground-truth/.out format).
	ErrMalformedChangepoints = errors.New("model: malformed changepoint list")
)
