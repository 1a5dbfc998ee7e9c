package solver

import (
	"context"
	"math"

	"github.com/cpdlab/cpd/model"
)

const penalizedDPSolverID = "optimal_partition_penalization"

// PenalizedDP implements the penalized-objective DP of §4.2.2:
//
//	F[e] = min over i in [0,e) of F[i] + c(i,e) + beta*[i>0],  F[0]=0
//
// beta is not charged for the first segment (i==0). O(n^2) time, O(n)
// space.
type PenalizedDP struct {
	in     model.AlgorithmInput
	n      int
	f      []float64
	a      []int
	solved bool
}

// NewPenalizedDP builds an unininitialized PenalizedDP solver.
func NewPenalizedDP(in model.AlgorithmInput) *PenalizedDP {
	return &PenalizedDP{in: in}
}

// SolverID implements Solver.
func (p *PenalizedDP) SolverID() string { return penalizedDPSolverID }

// initialize allocates F/A (length n+1) and seeds F[0]=0.
func (p *PenalizedDP) initialize() error {
	n := p.in.Signal.Len()
	if n == 0 {
		return ErrEmptySignal
	}

	p.n = n
	p.f = make([]float64, n+1)
	p.a = make([]int, n+1)
	p.f[0] = 0
	p.a[0] = -1

	return nil
}

// Solve implements Solver.
func (p *PenalizedDP) Solve(ctx context.Context) (model.Solution, error) {
	if p.solved {
		return model.Solution{}, ErrAlreadySolved
	}
	if err := p.initialize(); err != nil {
		return model.Solution{}, err
	}
	elapsed := stopwatch()

	var (
		end int
		err error
	)
	for end = 1; end <= p.n; end++ {
		if err = checkCtx(ctx); err != nil {
			return model.Solution{}, err
		}

		p.f[end], p.a[end], err = p.bestPredecessor(end)
		if err != nil {
			return model.Solution{}, err
		}
	}

	p.solved = true

	return model.Solution{
		Changepoints: retrieveChangepoints(p.a, p.n),
		Metrics: model.Metrics{
			Cost:          p.f[p.n],
			SolverID:      penalizedDPSolverID,
			ExecutionTime: elapsed(),
		},
	}, nil
}

// bestPredecessor returns min_i F[i]+c(i,end)+beta*[i>0] over i in
// [0,end), breaking ties toward the smallest i.
func (p *PenalizedDP) bestPredecessor(end int) (float64, int, error) {
	var evalErr error
	cost, idx := argminTieSmallest(0, end, func(i int) float64 {
		c, err := p.in.CostFunction.RangeCost(i, end)
		if err != nil {
			evalErr = err

			return 0
		}
		if isNonFinite(c) {
			evalErr = ErrNonFiniteCost

			return 0
		}
		beta := 0.0
		if i > 0 {
			beta = p.in.Penalization
		}

		return p.f[i] + c + beta
	})
	if evalErr != nil {
		return 0, 0, evalErr
	}

	return cost, idx, nil
}

// retrieveChangepoints walks backpointer a from n to 0, stopping at the
// first predecessor equal to 0, and returns the interior changepoints in
// ascending order (§3: "Changepoints are strictly increasing on
// return").
func retrieveChangepoints(a []int, n int) []int {
	var changepoints []int
	actual := n
	for a[actual] != 0 {
		changepoints = append(changepoints, a[actual])
		actual = a[actual]
	}

	// a was walked from the end backward, so reverse for ascending order.
	for l, r := 0, len(changepoints)-1; l < r; l, r = l+1, r-1 {
		changepoints[l], changepoints[r] = changepoints[r], changepoints[l]
	}

	return changepoints
}

// kTermPenalizedPruned is the PELT pruning bound for §4.2.3, applied only
// when the underlying cost function is Gaussian (original_source gates
// this bound by `'gaussian' in cost_function.name`).
func kTermPenalizedPruned(n int, costFunctionName string) float64 {
	if costFunctionName != "gaussian" {
		return 0
	}

	return -math.Log(float64(n) + 1)
}

const penalizedDPPrunedSolverID = "optimal_partition_penalization_pruned"

// PenalizedDPPruned is the PELT-style pruned variant of §4.2.3: same
// recurrence as PenalizedDP, but maintains a growing candidate set and
// discards candidates that can no longer beat the running best by more
// than the pruning bound. Produces the same cost and partition as
// PenalizedDP for Gaussian and exponential cost functions (§8, property
// 5).
type PenalizedDPPruned struct {
	in     model.AlgorithmInput
	n      int
	f      []float64
	a      []int
	kTerm  float64
	solved bool
}

// NewPenalizedDPPruned builds an uninitialized PenalizedDPPruned solver.
func NewPenalizedDPPruned(in model.AlgorithmInput) *PenalizedDPPruned {
	return &PenalizedDPPruned{in: in}
}

// SolverID implements Solver.
func (p *PenalizedDPPruned) SolverID() string { return penalizedDPPrunedSolverID }

// Solve implements Solver.
func (p *PenalizedDPPruned) Solve(ctx context.Context) (model.Solution, error) {
	if p.solved {
		return model.Solution{}, ErrAlreadySolved
	}
	n := p.in.Signal.Len()
	if n == 0 {
		return model.Solution{}, ErrEmptySignal
	}
	p.n = n
	p.f = make([]float64, n+1)
	p.a = make([]int, n+1)
	p.kTerm = kTermPenalizedPruned(n, p.in.CostFunction.Name())
	elapsed := stopwatch()

	// candidates stays sorted ascending: 0 is seeded, and every later
	// addition is the current `end`, which is larger than every existing
	// member, so append preserves order.
	candidates := []int{0}

	var (
		end int
		err error
	)
	for end = 1; end <= n; end++ {
		if err = checkCtx(ctx); err != nil {
			return model.Solution{}, err
		}

		p.f[end], p.a[end], err = p.bestAmong(candidates, end)
		if err != nil {
			return model.Solution{}, err
		}

		candidates = p.prune(candidates, end)
		candidates = append(candidates, end)
	}

	p.solved = true

	return model.Solution{
		Changepoints: retrieveChangepoints(p.a, n),
		Metrics: model.Metrics{
			Cost:          p.f[n],
			SolverID:      penalizedDPPrunedSolverID,
			ExecutionTime: elapsed(),
		},
	}, nil
}

func (p *PenalizedDPPruned) bestAmong(candidates []int, end int) (float64, int, error) {
	var evalErr error
	cost, idx := argminTieSmallestSet(candidates, func(i int) float64 {
		c, err := p.in.CostFunction.RangeCost(i, end)
		if err != nil {
			evalErr = err

			return 0
		}
		if isNonFinite(c) {
			evalErr = ErrNonFiniteCost

			return 0
		}
		beta := 0.0
		if i > 0 {
			beta = p.in.Penalization
		}

		return p.f[i] + c + beta
	})
	if evalErr != nil {
		return 0, 0, evalErr
	}

	return cost, idx, nil
}

// prune retains candidates i for which F[i]+c(i,end)+kTerm <= F[end],
// the PELT pruning inequality (§4.2.3).
func (p *PenalizedDPPruned) prune(candidates []int, end int) []int {
	kept := candidates[:0:0]
	var i int
	for _, i = range candidates {
		c, err := p.in.CostFunction.RangeCost(i, end)
		if err != nil {
			continue
		}
		if p.f[i]+c+p.kTerm <= p.f[end] {
			kept = append(kept, i)
		}
	}

	return kept
}
