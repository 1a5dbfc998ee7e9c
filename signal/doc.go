// Package signal defines the immutable Signal type and the prefix-sum
// accumulators that let a cost function answer range-aggregate queries
// (sum, sum-of-squares) in O(1) after one O(n) precomputation pass.
//
// Accumulation always runs in a fixed left-to-right order so that two
// accumulators built from the same values produce bitwise-identical
// prefix tables — determinism required by §5 of the design.
package signal
