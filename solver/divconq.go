package solver

import (
	"context"
	"math"

	"github.com/cpdlab/cpd/model"
)

const divideConquerSolverID = "suboptimal_partition_divide_and_conquer"

// DivideConquer implements the "SMAWK-lite" divide-and-conquer
// optimization of §4.2.6. It computes the same F[k][e] recurrence as
// SegmentCountDP, but fills each row by recursively bisecting the column
// range and exploiting the Monge-style monotonicity of the optimal
// predecessor A[k][e] in e: the predecessor of a midpoint bounds the
// predecessor search range of both halves.
//
// Per the resolved bound-passing question, the left subrange is fed
// [sl, A[k][m]+1) and the right subrange is fed [A[k][m], sr) — A[k][m]
// is the lower bound handed to the right half and the upper bound (minus
// one) handed to the left half.
type DivideConquer struct {
	in     model.AlgorithmInput
	k      int
	n      int
	f      [][]float64
	a      [][]int
	solved bool
}

// NewDivideConquer builds an uninitialized DivideConquer solver
// targeting exactly k changepoints.
func NewDivideConquer(in model.AlgorithmInput, k int) *DivideConquer {
	return &DivideConquer{in: in, k: k}
}

// SolverID implements Solver.
func (d *DivideConquer) SolverID() string { return divideConquerSolverID }

// Solve implements Solver.
func (d *DivideConquer) Solve(ctx context.Context) (model.Solution, error) {
	if d.solved {
		return model.Solution{}, ErrAlreadySolved
	}
	n := d.in.Signal.Len()
	if n == 0 {
		return model.Solution{}, ErrEmptySignal
	}
	if d.k < 0 || d.k >= n {
		return model.Solution{}, ErrInvalidK
	}

	d.n = n
	d.f = make([][]float64, d.k+1)
	d.a = make([][]int, d.k+1)
	for row := range d.f {
		d.f[row] = make([]float64, n+1)
		d.a[row] = make([]int, n+1)
		for col := range d.f[row] {
			d.f[row][col] = math.Inf(1)
		}
	}
	d.f[0][0] = 0
	elapsed := stopwatch()

	var e int
	for e = 1; e <= n; e++ {
		c, err := d.in.CostFunction.RangeCost(0, e)
		if err != nil {
			return model.Solution{}, err
		}
		d.f[0][e] = c
	}

	var (
		row int
		err error
	)
	for row = 1; row <= d.k; row++ {
		if err = d.computeRow(ctx, row, 0, d.n+1, 0, d.n+1); err != nil {
			return model.Solution{}, err
		}
	}

	d.solved = true

	return model.Solution{
		Changepoints: d.retrieveChangepoints(),
		Metrics: model.Metrics{
			Cost:          d.f[d.k][d.n],
			SolverID:      divideConquerSolverID,
			ExecutionTime: elapsed(),
			BestPrefix:    d.f,
		},
	}, nil
}

// computeRow fills F[row][e]/A[row][e] for e in [el,er) via the §4.2.6
// bisection recursion.
func (d *DivideConquer) computeRow(ctx context.Context, row, el, er, sl, sr int) error {
	if el >= er {
		return nil
	}
	if err := checkCtx(ctx); err != nil {
		return err
	}

	m := (el + er) / 2

	hi := m + 1
	if sr < hi {
		hi = sr
	}

	cost, idx, err := d.bestPredecessor(row, m, sl, hi)
	if err != nil {
		return err
	}
	d.f[row][m] = cost
	d.a[row][m] = idx

	if m > el {
		if err = d.computeRow(ctx, row, el, m, sl, idx+1); err != nil {
			return err
		}
	}
	if m+1 < er {
		if err = d.computeRow(ctx, row, m+1, er, idx, sr); err != nil {
			return err
		}
	}

	return nil
}

// bestPredecessor scans i in [lo,hi) and returns
// min F[row-1][i]+c(i,m)+beta, breaking ties toward the smallest i.
func (d *DivideConquer) bestPredecessor(row, m, lo, hi int) (float64, int, error) {
	if lo >= hi {
		// No candidate in range: this column is unreachable at this row.
		return math.Inf(1), lo, nil
	}

	var evalErr error
	cost, idx := argminTieSmallest(lo, hi, func(i int) float64 {
		c, err := d.in.CostFunction.RangeCost(i, m)
		if err != nil {
			evalErr = err

			return 0
		}
		if isNonFinite(c) {
			evalErr = ErrNonFiniteCost

			return 0
		}

		return d.f[row-1][i] + c + d.in.Penalization
	})
	if evalErr != nil {
		return 0, 0, evalErr
	}

	return cost, idx, nil
}

func (d *DivideConquer) retrieveChangepoints() []int {
	if d.k == 0 {
		return nil
	}

	changepoints := make([]int, d.k)
	actualE := d.n
	var row int
	for row = d.k; row >= 1; row-- {
		cp := d.a[row][actualE]
		changepoints[row-1] = cp
		actualE = cp
	}

	return changepoints
}
