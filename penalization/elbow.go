package penalization

import (
	"context"

	"github.com/cpdlab/cpd/kernel"
	"github.com/cpdlab/cpd/signal"
)

// elbowTau is the slope-ratio threshold of §4.3.1.
const elbowTau = 1.01

// Elbow implements the elbow-method selector of §4.3.1: it scans the
// marginal cost reduction Δ_k = V[k-1]-V[k] of a kernel-cost
// segment-count DP looking for the point where adding more changepoints
// stops paying for itself.
type Elbow struct {
	Kernel kernel.Kernel
}

// NewElbow builds an Elbow selector using k as the distribution-change
// kernel.
func NewElbow(k kernel.Kernel) *Elbow {
	return &Elbow{Kernel: k}
}

// Select implements Selector.
func (e *Elbow) Select(ctx context.Context, s signal.Signal) (float64, int, error) {
	p, err := prepare(ctx, s, e.Kernel)
	if err != nil {
		return 0, 0, err
	}

	kStar := e.scan(p)

	beta, err := SelectBeta(ctx, kStar, p.in)
	if err != nil {
		return 0, 0, err
	}

	return beta, kStar, nil
}

// scan implements §4.3.1's k-from-1-upward walk over V, tracking a "best
// guess so far" and breaking at the first relatively-linear, not
// substantially-decreasing step.
func (e *Elbow) scan(p prepared) int {
	v0 := p.vAt(0)
	bestGuess := 0

	var k int
	for k = 1; k <= p.kMax-1; k++ {
		deltaK := p.vAt(k-1) - p.vAt(k)
		deltaK1 := p.vAt(k) - p.vAt(k+1)

		decreasingSubstantially := deltaK > v0*(elbowTau-1)
		relativelyLinear := deltaK < deltaK1*elbowTau

		if decreasingSubstantially {
			bestGuess = k - 1
		}
		if relativelyLinear && !decreasingSubstantially {
			return bestGuess
		}
	}

	return p.kMax - 1
}
