// Package kernel provides pairwise similarity functions K(x,y) in (0,1],
// used by kernel-based cost functions to measure distributional change.
package kernel
