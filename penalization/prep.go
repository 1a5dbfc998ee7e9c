package penalization

import (
	"context"
	"math"

	"github.com/cpdlab/cpd/costfunc"
	"github.com/cpdlab/cpd/kernel"
	"github.com/cpdlab/cpd/model"
	"github.com/cpdlab/cpd/signal"
	"github.com/cpdlab/cpd/solver"
)

// kMaxFor returns K_max = min(250, floor(sqrt(n))), the hard ceiling on
// changepoint count used by both selectors (§4.3's "Shared preparation").
func kMaxFor(n int) int {
	sqrtN := int(math.Sqrt(float64(n)))
	if sqrtN > model.DefaultConfig().ChangepointsBound {
		return model.DefaultConfig().ChangepointsBound
	}

	return sqrtN
}

// prepared bundles the one-shot divide-and-conquer pass both selectors
// build on: the full AlgorithmInput (kernel cost, already precomputed),
// K_max, and best_prefix[k][n] for every k in [0,K_max].
type prepared struct {
	in         model.AlgorithmInput
	kMax       int
	bestPrefix [][]float64
}

// prepare solves a kernel-cost, divide-and-conquer segment-count DP once
// up to K_max changepoints, producing best_prefix rows for every
// intermediate k (§4.3, "Shared preparation").
func prepare(ctx context.Context, s signal.Signal, k kernel.Kernel) (prepared, error) {
	if s.Len() == 0 {
		return prepared{}, ErrEmptySignal
	}

	kMax := kMaxFor(s.Len())
	if kMax < 1 {
		kMax = 1
	}

	cf := costfunc.NewKernelCost(k)
	in, err := model.NewAlgorithmInput(s, cf, 0, kMax)
	if err != nil {
		return prepared{}, err
	}

	sol, err := solver.NewDivideConquer(in, kMax).Solve(ctx)
	if err != nil {
		return prepared{}, err
	}

	return prepared{in: in, kMax: kMax, bestPrefix: sol.Metrics.BestPrefix}, nil
}

// vAt returns V[k] = best_prefix[k][n], the objective value at exactly k
// changepoints.
func (p prepared) vAt(k int) float64 {
	n := p.in.Signal.Len()

	return p.bestPrefix[k][n]
}
