package signal

// Accumulate returns the length-(n+1) prefix sum of f applied to each
// value, with Accumulate(...)[0] == 0 by construction. The fixed
// left-to-right accumulation order is load-bearing: it is what makes two
// Signals built from the same values produce bitwise-identical prefix
// tables (no reordering, no pairwise/tree summation).
//
// Complexity: O(n) time, O(n) extra space.
func (s Signal) Accumulate(f func(float64) float64) []float64 {
	n := len(s.values)
	prefix := make([]float64, n+1)

	var i int
	for i = 0; i < n; i++ {
		prefix[i+1] = prefix[i] + f(s.values[i])
	}

	return prefix
}

// PrefixSums returns the two prefix tables every scalar cost function
// needs: S[k] = sum of x[0..k) and Q[k] = sum of x[0..k)^2.
//
// Complexity: O(n) time, O(n) extra space for each table.
func (s Signal) PrefixSums() (sum, sumSquares []float64) {
	sum = s.Accumulate(func(x float64) float64 { return x })
	sumSquares = s.Accumulate(func(x float64) float64 { return x * x })

	return sum, sumSquares
}

// Accumulate2D builds the (n+1)x(n+1) two-dimensional prefix sum
// G[i][j] = sum_{a<i, b<j} pairwise(x[a], x[b]), used by kernel-based
// cost functions. Row/column 0 are all zero by construction.
//
// This is the O(n^2)-memory, O(n^2)-time structure §5 calls out as the
// dominant resource bound of the kernel cost function; it is built once
// during Precompute and queried in O(1) afterwards via four lookups.
//
// Complexity: O(n^2) time, O(n^2) space.
func (s Signal) Accumulate2D(pairwise func(a, b float64) float64) [][]float64 {
	n := len(s.values)
	g := make([][]float64, n+1)
	for row := range g {
		g[row] = make([]float64, n+1)
	}

	var (
		a, b int
		rowK float64
	)
	for a = 0; a < n; a++ {
		// running sum across this row before folding in the previous row's totals.
		rowK = 0
		for b = 0; b < n; b++ {
			rowK += pairwise(s.values[a], s.values[b])
			g[a+1][b+1] = g[a][b+1] + rowK
		}
	}

	return g
}
