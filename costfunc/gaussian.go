package costfunc

import "github.com/cpdlab/cpd/signal"

// Gaussian is the maximum-likelihood cost function for a change in mean
// under fixed variance:
//
//	c(i,j) = (1/L)*(Q[j]-Q[i]) - (1/L^2)*(S[j]-S[i])^2
//
// where S is the prefix sum of x and Q the prefix sum of x^2, L=j-i.
//
// This is the square-sum-over-L minus square-of-linear-sum-over-L-squared
// form, i.e. the variance of the range; the sign-flipped variant that
// appears in some references is a bug, not an alternate convention.
type Gaussian struct {
	sum        []float64
	sumSquares []float64
	n          int
	ready      bool
}

// NewGaussianCost constructs an unprecomputed Gaussian cost function.
func NewGaussianCost() *Gaussian {
	return &Gaussian{}
}

// Precompute implements CostFunction.
func (g *Gaussian) Precompute(s signal.Signal) error {
	if s.Len() == 0 {
		return ErrEmptySignal
	}

	g.sum, g.sumSquares = s.PrefixSums()
	g.n = s.Len()
	g.ready = true

	return nil
}

// RangeCost implements CostFunction.
func (g *Gaussian) RangeCost(i, j int) (float64, error) {
	if !g.ready {
		return 0, ErrNotPrecomputed
	}
	if err := validateRange(i, j, g.n); err != nil {
		return 0, err
	}
	if i == j {
		return Infinity, nil
	}

	l := float64(j - i)
	sRange := g.sum[j] - g.sum[i]
	qRange := g.sumSquares[j] - g.sumSquares[i]
	cost := qRange/l - (sRange*sRange)/(l*l)

	if isNonFinite(cost) {
		return 0, nonFiniteAt(i, j)
	}

	return cost, nil
}

// Name implements CostFunction.
func (g *Gaussian) Name() string { return "gaussian" }
