// Package cpd (cpdlab) detects changepoints in one-dimensional numeric
// signals: the indices at which the statistical regime of a sequence
// (mean, rate, or kernel-similarity structure) abruptly shifts.
//
// 🚀 What is cpd?
//
//	A focused, low-dependency library that brings together:
//
//	  • Signal accumulators — prefix-sum tables for O(1) range queries
//	  • Cost functions      — Gaussian, Exponential, Kernel-based range cost
//	  • Solvers             — greedy, penalized DP, segment-count DP,
//	                          divide-and-conquer DP, and pruned variants
//	  • Penalization picker — elbow and silhouette heuristics over β and K
//	  • Metric evaluator    — tolerance-windowed changepoint matching
//
// ✨ Why choose cpd?
//
//   - Deterministic   — fixed tie-breaks, fixed accumulation order
//   - Pluggable       — cost functions and solvers are small interfaces
//   - Single-threaded — every exported function is pure over its inputs
//
// Under the hood, everything is organized under focused subpackages:
//
//	model/        — AlgorithmInput, Solution, Metrics, Case, Config
//	signal/       — the Signal type and its prefix-sum accumulators
//	kernel/       — pairwise similarity kernels (Gaussian, Laplace)
//	costfunc/     — range-cost functions built on signal + kernel
//	solver/       — the six segmentation solvers
//	penalization/ — elbow/silhouette selection of β and K
//	evaluator/    — ground-truth vs. predicted changepoint matching
//
// This package itself carries no executable code — it is a map of the
// module. Import the subpackage you need directly.
//
//	go get github.com/cpdlab/cpd/solver
package cpd
