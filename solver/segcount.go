package solver

import (
	"context"
	"math"

	"github.com/cpdlab/cpd/model"
)

const segmentCountDPSolverID = "optimal_partition_changepoints_in_state"

// SegmentCountDP implements the fixed-changepoint-count DP of §4.2.4:
//
//	F[0][e] = c(0,e)  for e>=1,  F[0][0] = 0
//	F[k][e] = min over i in [0,e) of F[k-1][i] + c(i,e) + beta
//
// The answer is F[K][n]; changepoints are recovered from A by descending
// k from K to 1. O(K*n^2) time, O(K*n) space. F is exposed read-only as
// Metrics.BestPrefix for the penalization selector (§4.3).
type SegmentCountDP struct {
	in     model.AlgorithmInput
	k      int
	n      int
	f      [][]float64
	a      [][]int
	solved bool
}

// NewSegmentCountDP builds an uninitialized SegmentCountDP solver
// targeting exactly k changepoints.
func NewSegmentCountDP(in model.AlgorithmInput, k int) *SegmentCountDP {
	return &SegmentCountDP{in: in, k: k}
}

// SolverID implements Solver.
func (s *SegmentCountDP) SolverID() string { return segmentCountDPSolverID }

// initialize allocates F and A sized (K+1)x(n+1) and seeds row 0.
func (s *SegmentCountDP) initialize() error {
	n := s.in.Signal.Len()
	if n == 0 {
		return ErrEmptySignal
	}
	if s.k < 0 || s.k >= n {
		return ErrInvalidK
	}

	s.n = n
	s.f = make([][]float64, s.k+1)
	s.a = make([][]int, s.k+1)
	for row := range s.f {
		s.f[row] = make([]float64, n+1)
		s.a[row] = make([]int, n+1)
		for col := range s.f[row] {
			s.f[row][col] = math.Inf(1)
		}
	}

	s.f[0][0] = 0
	var e int
	for e = 1; e <= n; e++ {
		c, err := s.in.CostFunction.RangeCost(0, e)
		if err != nil {
			return err
		}
		s.f[0][e] = c
	}

	return nil
}

// Solve implements Solver.
func (s *SegmentCountDP) Solve(ctx context.Context) (model.Solution, error) {
	if s.solved {
		return model.Solution{}, ErrAlreadySolved
	}
	if err := s.initialize(); err != nil {
		return model.Solution{}, err
	}
	elapsed := stopwatch()

	var (
		row, e int
		err    error
	)
	for row = 1; row <= s.k; row++ {
		for e = 1; e <= s.n; e++ {
			if err = checkCtx(ctx); err != nil {
				return model.Solution{}, err
			}

			s.f[row][e], s.a[row][e], err = s.bestPredecessor(row, e)
			if err != nil {
				return model.Solution{}, err
			}
		}
	}

	s.solved = true

	return model.Solution{
		Changepoints: s.retrieveChangepoints(),
		Metrics: model.Metrics{
			Cost:          s.f[s.k][s.n],
			SolverID:      segmentCountDPSolverID,
			ExecutionTime: elapsed(),
			BestPrefix:    s.f,
		},
	}, nil
}

func (s *SegmentCountDP) bestPredecessor(row, e int) (float64, int, error) {
	var evalErr error
	cost, idx := argminTieSmallest(0, e, func(i int) float64 {
		c, err := s.in.CostFunction.RangeCost(i, e)
		if err != nil {
			evalErr = err

			return 0
		}
		if isNonFinite(c) {
			evalErr = ErrNonFiniteCost

			return 0
		}

		return s.f[row-1][i] + c + s.in.Penalization
	})
	if evalErr != nil {
		return 0, 0, evalErr
	}

	return cost, idx, nil
}

// retrieveChangepoints descends k from K to 1 along A, placing the k-th
// discovered changepoint at index k-1 so the result is ascending.
func (s *SegmentCountDP) retrieveChangepoints() []int {
	if s.k == 0 {
		return nil
	}

	changepoints := make([]int, s.k)
	actualE := s.n
	var row int
	for row = s.k; row >= 1; row-- {
		cp := s.a[row][actualE]
		changepoints[row-1] = cp
		actualE = cp
	}

	return changepoints
}

// kTermSegmentCountPruned is the §4.2.5 pruning bound, applied
// unconditionally (original_source does not gate this one by cost
// function name, unlike kTermPenalizedPruned).
func kTermSegmentCountPruned(n int) float64 {
	return -0.01 * math.Log(float64(n)+1)
}

const segmentCountDPPrunedSolverID = "optimal_partition_changepoints_in_state_pruned"

// SegmentCountDPPruned is the pruned variant of §4.2.5: identical
// recurrence to SegmentCountDP, with a per-row candidate set pruned
// against kTermSegmentCountPruned. Produces the same best_prefix[K][n]
// as SegmentCountDP when the pruning bound is sound (§8, property 5).
type SegmentCountDPPruned struct {
	in     model.AlgorithmInput
	k      int
	n      int
	f      [][]float64
	a      [][]int
	kTerm  float64
	solved bool
}

// NewSegmentCountDPPruned builds an uninitialized SegmentCountDPPruned
// solver targeting exactly k changepoints.
func NewSegmentCountDPPruned(in model.AlgorithmInput, k int) *SegmentCountDPPruned {
	return &SegmentCountDPPruned{in: in, k: k}
}

// SolverID implements Solver.
func (s *SegmentCountDPPruned) SolverID() string { return segmentCountDPPrunedSolverID }

// Solve implements Solver.
func (s *SegmentCountDPPruned) Solve(ctx context.Context) (model.Solution, error) {
	if s.solved {
		return model.Solution{}, ErrAlreadySolved
	}
	n := s.in.Signal.Len()
	if n == 0 {
		return model.Solution{}, ErrEmptySignal
	}
	if s.k < 0 || s.k >= n {
		return model.Solution{}, ErrInvalidK
	}

	s.n = n
	s.kTerm = kTermSegmentCountPruned(n)
	s.f = make([][]float64, s.k+1)
	s.a = make([][]int, s.k+1)
	for row := range s.f {
		s.f[row] = make([]float64, n+1)
		s.a[row] = make([]int, n+1)
		for col := range s.f[row] {
			s.f[row][col] = math.Inf(1)
		}
	}
	s.f[0][0] = 0

	elapsed := stopwatch()

	var e int
	for e = 1; e <= n; e++ {
		c, err := s.in.CostFunction.RangeCost(0, e)
		if err != nil {
			return model.Solution{}, err
		}
		s.f[0][e] = c
	}

	var (
		row int
		err error
	)
	for row = 1; row <= s.k; row++ {
		// candidates resets per row; 0 is always a valid predecessor for
		// the first entry in this row.
		candidates := []int{0}

		for e = 1; e <= n; e++ {
			if err = checkCtx(ctx); err != nil {
				return model.Solution{}, err
			}

			s.f[row][e], s.a[row][e], err = s.bestAmong(candidates, row, e)
			if err != nil {
				return model.Solution{}, err
			}

			candidates = s.prune(candidates, row, e)
			candidates = append(candidates, e)
		}
	}

	s.solved = true

	return model.Solution{
		Changepoints: s.retrieveChangepoints(),
		Metrics: model.Metrics{
			Cost:          s.f[s.k][n],
			SolverID:      segmentCountDPPrunedSolverID,
			ExecutionTime: elapsed(),
			BestPrefix:    s.f,
		},
	}, nil
}

func (s *SegmentCountDPPruned) bestAmong(candidates []int, row, e int) (float64, int, error) {
	var evalErr error
	cost, idx := argminTieSmallestSet(candidates, func(i int) float64 {
		c, err := s.in.CostFunction.RangeCost(i, e)
		if err != nil {
			evalErr = err

			return 0
		}
		if isNonFinite(c) {
			evalErr = ErrNonFiniteCost

			return 0
		}

		return s.f[row-1][i] + c + s.in.Penalization
	})
	if evalErr != nil {
		return 0, 0, evalErr
	}

	return cost, idx, nil
}

// prune retains candidates i for which F[row-1][i]+c(i,e)+kTerm <=
// F[row][e].
func (s *SegmentCountDPPruned) prune(candidates []int, row, e int) []int {
	kept := candidates[:0:0]
	var i int
	for _, i = range candidates {
		c, err := s.in.CostFunction.RangeCost(i, e)
		if err != nil {
			continue
		}
		if s.f[row-1][i]+c+s.kTerm <= s.f[row][e] {
			kept = append(kept, i)
		}
	}

	return kept
}

func (s *SegmentCountDPPruned) retrieveChangepoints() []int {
	if s.k == 0 {
		return nil
	}

	changepoints := make([]int, s.k)
	actualE := s.n
	var row int
	for row = s.k; row >= 1; row-- {
		cp := s.a[row][actualE]
		changepoints[row-1] = cp
		actualE = cp
	}

	return changepoints
}
