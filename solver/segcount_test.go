package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cpdlab/cpd/solver"
)

// TestSegmentCountDP_TwoBumpSignal pins scenario #4 of the design's
// end-to-end table: a 15-element two-bump signal segmented into exactly
// 2 changepoints yields [5,10].
func TestSegmentCountDP_TwoBumpSignal(t *testing.T) {
	values := []float64{
		0, 0, 0, 0, 0,
		10, 10, 10, 10, 10,
		0, 0, 0, 0, 0,
	}
	in := mustInput(t, values, 0)

	sol, err := solver.NewSegmentCountDP(in, 2).Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{5, 10}, sol.Changepoints)
	require.Equal(t, "optimal_partition_changepoints_in_state", sol.Metrics.SolverID)
	require.NotNil(t, sol.Metrics.BestPrefix)
	require.Len(t, sol.Metrics.BestPrefix, 3)
}

func TestSegmentCountDP_ZeroChangepoints(t *testing.T) {
	in := mustInput(t, []float64{1, 2, 3, 4}, 0)
	sol, err := solver.NewSegmentCountDP(in, 0).Solve(context.Background())
	require.NoError(t, err)
	require.Empty(t, sol.Changepoints)
}

func TestSegmentCountDP_InvalidK(t *testing.T) {
	in := mustInput(t, []float64{1, 2, 3, 4}, 0)

	_, err := solver.NewSegmentCountDP(in, -1).Solve(context.Background())
	require.ErrorIs(t, err, solver.ErrInvalidK)

	_, err = solver.NewSegmentCountDP(in, 4).Solve(context.Background())
	require.ErrorIs(t, err, solver.ErrInvalidK)
}

// TestSegmentCountDPPruned_MatchesUnpruned pins §8 property 5 for the
// segment-count family.
func TestSegmentCountDPPruned_MatchesUnpruned(t *testing.T) {
	values := []float64{
		0, 0, 0, 0, 0,
		10, 10, 10, 10, 10,
		0, 0, 0, 0, 0,
	}

	full := mustInput(t, values, 0)
	pruned := mustInput(t, values, 0)

	fullSol, err := solver.NewSegmentCountDP(full, 2).Solve(context.Background())
	require.NoError(t, err)
	prunedSol, err := solver.NewSegmentCountDPPruned(pruned, 2).Solve(context.Background())
	require.NoError(t, err)

	require.Equal(t, fullSol.Changepoints, prunedSol.Changepoints)
	require.InDelta(t, fullSol.Metrics.Cost, prunedSol.Metrics.Cost, 1e-9)
}
