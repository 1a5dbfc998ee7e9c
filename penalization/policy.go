package penalization

// DefaultPolicy implements §4.3.4: fixed (beta, K) constants used when no
// selector is configured. Synthetic cases use a light penalty; real cases
// use a heavier one, reflecting their higher noise floor.
func DefaultPolicy(synthetic bool) (beta float64, k int) {
	if synthetic {
		return 0.1, 50
	}

	return 7.5, 50
}
