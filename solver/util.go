package solver

import (
	"math"
	"time"
)

// isNonFinite reports whether v is NaN or +/-Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// argminTieSmallest scans candidates[lo:hi), evaluating cost(i) for each,
// and returns (bestCost, bestIndex). Ties keep the smallest index: this
// is the tie-breaking rule every solver in this package must follow
// (§4.2's "MUST select the smallest i", for reproducibility and
// earliest-changepoint preference).
//
// Complexity: O(hi-lo) calls to cost.
func argminTieSmallest(lo, hi int, cost func(i int) float64) (bestCost float64, bestIndex int) {
	bestIndex = lo
	bestCost = cost(lo)

	var (
		i int
		c float64
	)
	for i = lo + 1; i < hi; i++ {
		c = cost(i)
		if c < bestCost {
			bestCost = c
			bestIndex = i
		}
	}

	return bestCost, bestIndex
}

// argminTieSmallestSet is argminTieSmallest over an explicit candidate
// set rather than a contiguous range, used by the pruned DP solvers whose
// candidate set C is not contiguous. candidates must be non-empty.
// Iteration order is ascending so the tie-break ("first minimum wins")
// naturally prefers the smallest index.
func argminTieSmallestSet(candidates []int, cost func(i int) float64) (bestCost float64, bestIndex int) {
	bestIndex = candidates[0]
	bestCost = cost(candidates[0])

	var (
		idx int
		c   float64
	)
	for _, idx = range candidates[1:] {
		c = cost(idx)
		if c < bestCost {
			bestCost = c
			bestIndex = idx
		}
	}

	return bestCost, bestIndex
}

// stopwatch returns a function that, when called, yields elapsed seconds
// since stopwatch was invoked.
func stopwatch() func() float64 {
	start := time.Now()

	return func() float64 { return time.Since(start).Seconds() }
}
