package solver

import (
	"context"

	"github.com/cpdlab/cpd/model"
)

// Solver is the capability every segmentation algorithm implements.
type Solver interface {
	// Solve runs the algorithm to completion and returns a Solution with
	// strictly increasing changepoints in (0,n). ctx is checked between
	// outer iterations; a cancelled ctx aborts with ctx.Err() (the core
	// algorithm itself models no suspension points — this is a courtesy
	// for long-running batch callers, §5/§9).
	Solve(ctx context.Context) (model.Solution, error)

	// SolverID names the solver for Metrics bookkeeping.
	SolverID() string
}

// checkCtx returns ctx.Err() if ctx has been cancelled, nil otherwise. A
// nil-cost check against context.Background() so passing no real
// deadline/cancellation costs nothing beyond a single interface method
// call per outer loop iteration.
func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
