package penalization

import (
	"context"

	"github.com/cpdlab/cpd/model"
	"github.com/cpdlab/cpd/solver"
)

// betaEpsilon is the binary-search convergence bound of §4.3.3.
const betaEpsilon = 1e-6

// SelectBeta binary-searches (on [0, n*c(0,n)]) for the smallest
// penalization beta whose binary-segmentation result has at most kStar
// changepoints, per §4.3.3. It returns the lower end of the final
// bracket: when that is above 0, it is a probed beta at which binary
// segmentation produced more than kStar changepoints, within betaEpsilon
// below the boundary. It never mutates in in place: each probe
// runs against an independent model.AlgorithmInput built by
// in.WithPenalization.
func SelectBeta(ctx context.Context, kStar int, in model.AlgorithmInput) (float64, error) {
	n := in.Signal.Len()

	wholeCost, err := in.CostFunction.RangeCost(0, n)
	if err != nil {
		return 0, err
	}

	lo, hi := 0.0, float64(n)*wholeCost

	for hi-lo >= betaEpsilon {
		mid := lo + (hi-lo)/2

		probe := in.WithPenalization(mid)
		sol, err := solver.NewBinarySegmentation(probe).Solve(ctx)
		if err != nil {
			return 0, err
		}

		if len(sol.Changepoints) > kStar {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo, nil
}
