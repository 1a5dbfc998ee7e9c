package costfunc

import "github.com/cpdlab/cpd/signal"

// DefaultEpsilon guards the Exponential cost function's denominator
// against division by zero on all-zero ranges (§6's recognized
// configuration constant). The penalization selector's beta binary search
// uses the same value through its own constant.
const DefaultEpsilon = 1e-6

// Exponential is the maximum-likelihood cost function for a change in
// rate (lambda) of an exponential distribution:
//
//	c(i,j) = L / max(S[j]-S[i], epsilon)
//
// where S is the prefix sum of x, L=j-i, and epsilon guards zero-sum
// ranges from dividing by zero.
type Exponential struct {
	sum     []float64
	n       int
	epsilon float64
	ready   bool
}

// NewExponentialCost constructs an unprecomputed Exponential cost
// function with the default epsilon guard.
func NewExponentialCost() *Exponential {
	return &Exponential{epsilon: DefaultEpsilon}
}

// NewExponentialCostWithEpsilon is like NewExponentialCost but lets the
// caller override the zero-sum guard. epsilon must be > 0.
func NewExponentialCostWithEpsilon(epsilon float64) (*Exponential, error) {
	if epsilon <= 0 {
		return nil, ErrInvalidRange
	}

	return &Exponential{epsilon: epsilon}, nil
}

// Precompute implements CostFunction.
func (e *Exponential) Precompute(s signal.Signal) error {
	if s.Len() == 0 {
		return ErrEmptySignal
	}

	e.sum = s.Accumulate(func(x float64) float64 { return x })
	e.n = s.Len()
	e.ready = true

	return nil
}

// RangeCost implements CostFunction.
func (e *Exponential) RangeCost(i, j int) (float64, error) {
	if !e.ready {
		return 0, ErrNotPrecomputed
	}
	if err := validateRange(i, j, e.n); err != nil {
		return 0, err
	}
	if i == j {
		return Infinity, nil
	}

	l := float64(j - i)
	sRange := e.sum[j] - e.sum[i]
	denom := sRange
	if denom < e.epsilon {
		denom = e.epsilon
	}
	cost := l / denom

	if isNonFinite(cost) {
		return 0, nonFiniteAt(i, j)
	}

	return cost, nil
}

// Name implements CostFunction.
func (e *Exponential) Name() string { return "exponential" }
