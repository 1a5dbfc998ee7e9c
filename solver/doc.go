// Package solver implements the six segmentation algorithms that turn an
// AlgorithmInput into a model.Solution: greedy binary segmentation,
// penalized DP (plain and PELT-pruned), segment-count DP (plain and
// pruned), and a divide-and-conquer ("SMAWK-lite") optimization of the
// segment-count DP row computation.
//
// All solvers share the Solver interface:
//
//	sol, err := s.Solve(ctx) // s is any Solver
//
// Every solver instance runs its algorithm at most once: a second call
// to Solve returns ErrAlreadySolved. Every solver breaks argmin ties by
// picking the smallest candidate index, which is what makes every
// solver's output reproducible and gives earliest-changepoint preference
// (§4.2's tie-breaking rule).
package solver
