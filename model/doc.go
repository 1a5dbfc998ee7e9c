// Package model defines the core input/output contracts shared by every
// other cpd package: the AlgorithmInput bundle handed to a solver, the
// Solution/Metrics records a solver returns, and the Case/ValueMetadata
// types describing a loaded problem instance.
//
// Nothing in this package touches a cost function's internals or a
// solver's recurrence — it only carries data between them. Config holds
// the package's recognized constants (§6 of the design) as a threaded,
// read-only value instead of global mutable state.
package model
