package costfunc

import "github.com/cpdlab/cpd/signal"

// Infinity is the cost sentinel returned for degenerate (empty) ranges,
// i.e. c(i,i). It is a large finite value rather than math.Inf so that
// sums of several segment costs never themselves become +Inf/NaN.
const Infinity = 1e12

// CostFunction is the capability every range-cost variant implements:
// precompute its prefix structures once, then answer range queries in
// O(1).
type CostFunction interface {
	// Precompute runs once per signal, in O(n) (Gaussian, Exponential) or
	// O(n^2) (Kernel). Calling RangeCost before Precompute is a contract
	// violation (ErrNotPrecomputed).
	Precompute(s signal.Signal) error

	// RangeCost returns c(i,j), the cost of treating [i,j) as a single
	// regime. c(i,i) == Infinity. Requires 0 <= i <= j <= n.
	RangeCost(i, j int) (float64, error)

	// Name identifies the variant (e.g. "gaussian", "exponential",
	// "kernel_gaussian_kernel") for Metrics bookkeeping and pruning-bound
	// gating.
	Name() string
}

// validateRange checks 0 <= i <= j <= n, returning ErrInvalidRange
// otherwise.
func validateRange(i, j, n int) error {
	if i < 0 || j < i || j > n {
		return ErrInvalidRange
	}

	return nil
}
