// Package costfunc implements the range-cost functions c(i,j) that every
// segmentation solver queries: Gaussian (change in mean), Exponential
// (change in rate), and Kernel (change in distribution, via any
// kernel.Kernel).
//
// Every variant precomputes O(n) or O(n^2) prefix structures once via
// Precompute, then answers RangeCost in O(1) — any variant whose
// RangeCost cost grows with range length would dominate a solver's
// O(n^2)-O(K*n^2) query volume, so the O(1) contract is load-bearing, not
// an optimization.
//
// c(i,i) is the Infinity sentinel (a large finite value, 1e12) for every
// variant (signals an invalid empty segment); callers must never let an
// argmin select it.
package costfunc
