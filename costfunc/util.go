package costfunc

import "math"

// isNonFinite reports whether v is NaN or +/-Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
