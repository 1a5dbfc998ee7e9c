package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cpdlab/cpd/costfunc"
	"github.com/cpdlab/cpd/model"
	"github.com/cpdlab/cpd/signal"
	"github.com/cpdlab/cpd/solver"
)

func mustInput(t *testing.T, values []float64, beta float64) model.AlgorithmInput {
	t.Helper()
	s, err := signal.New(values)
	require.NoError(t, err)

	cf := costfunc.NewGaussianCost()
	in, err := model.NewAlgorithmInput(s, cf, beta, 0)
	require.NoError(t, err)

	return in
}

// TestPenalizedDP_TwoLevelShift pins scenario #2 of the design's
// end-to-end table: [0,0,0,10,10,10] with a small penalty yields a single
// changepoint at index 3.
func TestPenalizedDP_TwoLevelShift(t *testing.T) {
	in := mustInput(t, []float64{0, 0, 0, 10, 10, 10}, 1.0)
	sol, err := solver.NewPenalizedDP(in).Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{3}, sol.Changepoints)
	require.Equal(t, "optimal_partition_penalization", sol.Metrics.SolverID)
}

func TestPenalizedDP_ConstantSignalNoChangepoints(t *testing.T) {
	in := mustInput(t, []float64{5, 5, 5, 5, 5}, 1.0)
	sol, err := solver.NewPenalizedDP(in).Solve(context.Background())
	require.NoError(t, err)
	require.Empty(t, sol.Changepoints)
	require.InDelta(t, 0.0, sol.Metrics.Cost, 1e-9)
}

func TestPenalizedDP_AlreadySolved(t *testing.T) {
	in := mustInput(t, []float64{0, 0, 10, 10}, 1.0)
	s := solver.NewPenalizedDP(in)
	_, err := s.Solve(context.Background())
	require.NoError(t, err)

	_, err = s.Solve(context.Background())
	require.ErrorIs(t, err, solver.ErrAlreadySolved)
}

func TestPenalizedDP_CancelledContext(t *testing.T) {
	in := mustInput(t, make([]float64, 50), 1.0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.NewPenalizedDP(in).Solve(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

// TestPenalizedDPPruned_MatchesUnpruned pins §8 property 5: the pruned
// solver agrees with the exhaustive one on a Gaussian-cost input.
func TestPenalizedDPPruned_MatchesUnpruned(t *testing.T) {
	values := []float64{0, 0, 0, 0, 10, 10, 10, 10, 20, 20, 20, 20}

	full := mustInput(t, values, 5.0)
	pruned := mustInput(t, values, 5.0)

	fullSol, err := solver.NewPenalizedDP(full).Solve(context.Background())
	require.NoError(t, err)
	prunedSol, err := solver.NewPenalizedDPPruned(pruned).Solve(context.Background())
	require.NoError(t, err)

	require.Equal(t, fullSol.Changepoints, prunedSol.Changepoints)
	require.InDelta(t, fullSol.Metrics.Cost, prunedSol.Metrics.Cost, 1e-9)
}

func TestPenalizedDPPruned_SolverID(t *testing.T) {
	in := mustInput(t, []float64{0, 0, 10, 10}, 1.0)
	sol, err := solver.NewPenalizedDPPruned(in).Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, "optimal_partition_penalization_pruned", sol.Metrics.SolverID)
}
