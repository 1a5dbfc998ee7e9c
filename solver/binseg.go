package solver

import (
	"context"
	"sort"

	"github.com/cpdlab/cpd/model"
)

// binSegSolverID is the string recorded in Metrics.SolverID, kept
// identical to the original system's solver name so .metrics files stay
// format-compatible across implementations.
const binSegSolverID = "binary_segmentation"

// BinarySegmentation is the greedy recursive splitter of §4.2.1.
// Expected O(n log n), worst case O(n^2).
//
// The recursion is implemented with an explicit work-stack rather than
// Go call-stack recursion, per §9's note that environments with limited
// stacks should avoid recursing to depth O(n) in the worst case.
type BinarySegmentation struct {
	in     model.AlgorithmInput
	solved bool
}

// NewBinarySegmentation builds a BinarySegmentation solver over in. in's
// CostFunction must already be precomputed (model.NewAlgorithmInput
// guarantees this).
func NewBinarySegmentation(in model.AlgorithmInput) *BinarySegmentation {
	return &BinarySegmentation{in: in}
}

// SolverID implements Solver.
func (b *BinarySegmentation) SolverID() string { return binSegSolverID }

// rangeKey identifies a [start,end) segment in the cost memo below.
type rangeKey struct{ start, end int }

// Solve implements Solver.
//
// For a segment [s,e), it finds the split position p in (s,e-1]
// minimizing c(s,p)+c(p+1,e)+beta. If that minimum is strictly less than
// c(s,e), the split is accepted and both halves are recursed;
// changepoints are collected in post-order discovery and sorted
// ascending before being placed in the returned Solution, per §4.2.1.
func (b *BinarySegmentation) Solve(ctx context.Context) (model.Solution, error) {
	if b.solved {
		return model.Solution{}, ErrAlreadySolved
	}
	n := b.in.Signal.Len()
	if n == 0 {
		return model.Solution{}, ErrEmptySignal
	}
	elapsed := stopwatch()

	type frame struct {
		start, end int
		candidate  int
		visited    bool
	}

	var changepoints []int
	costOf := make(map[rangeKey]float64, 2*n)
	stack := []frame{{start: 0, end: n}}

	for len(stack) > 0 {
		if err := checkCtx(ctx); err != nil {
			return model.Solution{}, err
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.visited {
			leftCost := costOf[rangeKey{f.start, f.candidate}]
			rightCost := costOf[rangeKey{f.candidate + 1, f.end}]
			costOf[rangeKey{f.start, f.end}] = leftCost + rightCost + b.in.Penalization
			changepoints = append(changepoints, f.candidate)

			continue
		}

		wholeCost, err := b.cost(f.start, f.end)
		if err != nil {
			return model.Solution{}, err
		}

		if f.end-f.start < 2 {
			// A length-1 segment cannot be split further.
			costOf[rangeKey{f.start, f.end}] = wholeCost

			continue
		}

		bestSplitCost, candidate, err := b.bestSplit(f.start, f.end)
		if err != nil {
			return model.Solution{}, err
		}

		if bestSplitCost < wholeCost {
			stack = append(stack, frame{f.start, f.end, candidate, true})
			stack = append(stack, frame{start: f.start, end: candidate})
			stack = append(stack, frame{start: candidate + 1, end: f.end})
		} else {
			costOf[rangeKey{f.start, f.end}] = wholeCost
		}
	}

	sort.Ints(changepoints)
	b.solved = true

	return model.Solution{
		Changepoints: changepoints,
		Metrics: model.Metrics{
			Cost:          costOf[rangeKey{0, n}],
			SolverID:      binSegSolverID,
			ExecutionTime: elapsed(),
		},
	}, nil
}

// bestSplit scans candidate split positions p in (start,end-1] and
// returns the minimum of c(start,p)+c(p+1,end)+beta and its position,
// breaking ties toward the smallest p.
func (b *BinarySegmentation) bestSplit(start, end int) (float64, int, error) {
	var evalErr error
	cost, pos := argminTieSmallest(start+1, end, func(p int) float64 {
		left, err := b.cost(start, p)
		if err != nil {
			evalErr = err

			return 0
		}
		right, err := b.cost(p+1, end)
		if err != nil {
			evalErr = err

			return 0
		}

		return left + right + b.in.Penalization
	})
	if evalErr != nil {
		return 0, 0, evalErr
	}

	return cost, pos, nil
}

// cost queries the cost function and rejects a non-finite result that
// isn't the costfunc.Infinity sentinel for a degenerate range.
func (b *BinarySegmentation) cost(i, j int) (float64, error) {
	c, err := b.in.CostFunction.RangeCost(i, j)
	if err != nil {
		return 0, err
	}
	if isNonFinite(c) {
		return 0, ErrNonFiniteCost
	}

	return c, nil
}
