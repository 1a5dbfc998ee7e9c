package costfunc

import (
	"github.com/cpdlab/cpd/kernel"
	"github.com/cpdlab/cpd/signal"
)

// Kernel is the distribution-change cost function for an arbitrary
// kernel.Kernel K:
//
//	c(i,j) = (D[j]-D[i]) - (1/L) * (G[j][j] - G[i][j] - G[j][i] + G[i][i])
//
// where D is the prefix sum of K(x_k,x_k) and G[a][b] is the two
// dimensional prefix sum of K(x_p,x_q) over p<a, q<b.
//
// Precompute is O(n^2): it builds the (n+1)x(n+1) prefix table G, which
// is the dominant memory cost of the whole engine (§5).
type Kernel struct {
	k     kernel.Kernel
	diag  []float64
	grid  [][]float64
	n     int
	ready bool
}

// NewKernelCost constructs an unprecomputed Kernel cost function wrapping
// the given kernel.
func NewKernelCost(k kernel.Kernel) *Kernel {
	return &Kernel{k: k}
}

// Precompute implements CostFunction.
func (kc *Kernel) Precompute(s signal.Signal) error {
	if s.Len() == 0 {
		return ErrEmptySignal
	}

	kc.diag = s.Accumulate(func(x float64) float64 { return kc.k.Similarity(x, x) })
	kc.grid = s.Accumulate2D(kc.k.Similarity)
	kc.n = s.Len()
	kc.ready = true

	return nil
}

// RangeCost implements CostFunction.
func (kc *Kernel) RangeCost(i, j int) (float64, error) {
	if !kc.ready {
		return 0, ErrNotPrecomputed
	}
	if err := validateRange(i, j, kc.n); err != nil {
		return 0, err
	}
	if i == j {
		return Infinity, nil
	}

	l := float64(j - i)
	within := kc.grid[j][j] - kc.grid[i][j] - kc.grid[j][i] + kc.grid[i][i]
	cost := (kc.diag[j] - kc.diag[i]) - within/l

	if isNonFinite(cost) {
		return 0, nonFiniteAt(i, j)
	}

	return cost, nil
}

// Name implements CostFunction.
func (kc *Kernel) Name() string { return "kernel_" + kc.k.Name() }
