package model

import (
	"github.com/cpdlab/cpd/costfunc"
	"github.com/cpdlab/cpd/signal"
)

// DefaultWindowThreshold is the evaluator's default match tolerance
// window (§4.4), used when a driver does not override Config.WindowThreshold.
const DefaultWindowThreshold = 10

// Config carries the recognized configuration constants as a threaded,
// read-only value instead of a global mutable Constants object.
type Config struct {
	// Epsilon is the convergence bound for penalization beta binary
	// search and the denominator guard shared with costfunc.Exponential.
	Epsilon float64

	// Infinity is the cost sentinel for empty ranges (kept in sync with
	// costfunc.Infinity; duplicated here so callers reading Config don't
	// need to import costfunc).
	Infinity float64

	// ChangepointsBound is the hard ceiling on K_max used by the
	// penalization selector.
	ChangepointsBound int

	// WindowThreshold is the default sample tolerance for the metric
	// evaluator's changepoint matching.
	WindowThreshold int

	// KernelBandwidth is the default bandwidth handed to kernel
	// constructors when the caller does not override it.
	KernelBandwidth float64
}

// DefaultConfig returns the recognized default constants.
func DefaultConfig() Config {
	return Config{
		Epsilon:           costfunc.DefaultEpsilon,
		Infinity:          costfunc.Infinity,
		ChangepointsBound: 250,
		WindowThreshold:   DefaultWindowThreshold,
		KernelBandwidth:   1e3,
	}
}

// AlgorithmInput bundles everything a solver needs: the signal, the
// (already-constructed, not-yet-precomputed) cost function, the
// penalization, and the changepoint cap.
//
// AlgorithmInput is a plain value. Solvers receive it by value; nothing in
// this module mutates a caller's AlgorithmInput in place. The
// penalization selector's binary search (§4.3.3) realizes "shared
// mutable state during selector binary search" by constructing a new
// AlgorithmInput per probe via WithPenalization, never by rewriting a
// shared instance.
type AlgorithmInput struct {
	Signal          signal.Signal
	CostFunction    costfunc.CostFunction
	Penalization    float64
	MaxChangepoints int
}

// NewAlgorithmInput validates inputs, precomputes cf against s exactly
// once (§3: "precompute must be called exactly once before the first
// range_cost call"), and builds an AlgorithmInput ready to hand to one or
// more solvers. Because precomputation happens here, at construction,
// every solver built from the returned AlgorithmInput can safely share
// the same already-precomputed, read-only CostFunction (§5).
func NewAlgorithmInput(s signal.Signal, cf costfunc.CostFunction, penalization float64, maxChangepoints int) (AlgorithmInput, error) {
	if s.Len() == 0 {
		return AlgorithmInput{}, ErrEmptySignal
	}
	if cf == nil {
		return AlgorithmInput{}, ErrNilCostFunction
	}
	if penalization < 0 {
		return AlgorithmInput{}, ErrInvalidPenalization
	}
	if maxChangepoints < 0 {
		return AlgorithmInput{}, ErrInvalidK
	}
	if err := cf.Precompute(s); err != nil {
		return AlgorithmInput{}, err
	}

	return AlgorithmInput{
		Signal:          s,
		CostFunction:    cf,
		Penalization:    penalization,
		MaxChangepoints: maxChangepoints,
	}, nil
}

// WithPenalization returns a copy of in with Penalization overridden,
// leaving in untouched. Used by the penalization selector's binary
// search so each probe is an independent, immutable value.
func (in AlgorithmInput) WithPenalization(beta float64) AlgorithmInput {
	out := in
	out.Penalization = beta

	return out
}

// Solution is the immutable result of a solver run: the ordered,
// strictly increasing changepoints and the associated Metrics.
type Solution struct {
	Changepoints []int
	Metrics      Metrics
}

// Metrics records a solver's bookkeeping about one run.
type Metrics struct {
	// Cost is the total objective value the solver reports.
	Cost float64

	// SolverID names the solver that produced this Metrics (e.g.
	// "binary_segmentation", "optimal_partition_penalization").
	SolverID string

	// ExecutionTime is wall-clock seconds spent inside Solve.
	ExecutionTime float64

	// BestPrefix is the shared read-only F table of a segment-count DP
	// solver (§4.2.4-4.2.6); nil for solvers that do not keep changepoint
	// count in their state.
	BestPrefix [][]float64

	// CorrectChangepoints, IncorrectChangepoints and NotFoundChangepoints
	// are filled in by a driver after running the metric evaluator
	// against a ground truth; nil when no ground truth was available.
	CorrectChangepoints    *int
	IncorrectChangepoints  *int
	NotFoundChangepoints   *int
}
