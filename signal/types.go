package signal

import "math"

// Signal is an ordered, immutable sequence of real values x[0..n).
//
// A Signal never aliases the slice it was built from: New copies its
// input, so later mutation of the caller's slice cannot change a
// constructed Signal.
type Signal struct {
	values []float64
}

// New builds a Signal from values. It copies values and rejects empty or
// non-finite input.
//
// Complexity: O(n).
func New(values []float64) (Signal, error) {
	if len(values) == 0 {
		return Signal{}, ErrEmpty
	}

	var (
		i int
		v float64
	)
	cp := make([]float64, len(values))
	for i, v = range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Signal{}, ErrNonFinite
		}
		cp[i] = v
	}

	return Signal{values: cp}, nil
}

// Len returns n, the number of values in the signal.
func (s Signal) Len() int { return len(s.values) }

// At returns x[i]. Callers must ensure 0 <= i < Len(); At does not bounds
// check beyond what the native slice index already enforces.
func (s Signal) At(i int) float64 { return s.values[i] }

// Values returns a defensive copy of the underlying sequence.
func (s Signal) Values() []float64 {
	cp := make([]float64, len(s.values))
	copy(cp, s.values)

	return cp
}

// Range is a half-open interval [I,J) with 0 <= I < J <= n.
type Range struct {
	I, J int
}

// Len returns J-I, the number of samples the range spans.
func (r Range) Len() int { return r.J - r.I }
