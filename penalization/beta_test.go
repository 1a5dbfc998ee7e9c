package penalization_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cpdlab/cpd/costfunc"
	"github.com/cpdlab/cpd/model"
	"github.com/cpdlab/cpd/penalization"
	"github.com/cpdlab/cpd/signal"
	"github.com/cpdlab/cpd/solver"
)

func TestSelectBeta_BoundsChangepointCount(t *testing.T) {
	values := []float64{0, 0, 0, 0, 0, 10, 10, 10, 10, 10}
	s, err := signal.New(values)
	require.NoError(t, err)

	cf := costfunc.NewGaussianCost()
	in, err := model.NewAlgorithmInput(s, cf, 0, 0)
	require.NoError(t, err)

	beta, err := penalization.SelectBeta(context.Background(), 1, in)
	require.NoError(t, err)
	require.GreaterOrEqual(t, beta, 0.0)

	probe := in.WithPenalization(beta)
	sol, err := solver.NewBinarySegmentation(probe).Solve(context.Background())
	require.NoError(t, err)
	require.LessOrEqual(t, len(sol.Changepoints), 1)
}

func TestSelectBeta_NeverMutatesInput(t *testing.T) {
	s, err := signal.New([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	cf := costfunc.NewGaussianCost()
	in, err := model.NewAlgorithmInput(s, cf, 2.5, 0)
	require.NoError(t, err)

	_, err = penalization.SelectBeta(context.Background(), 0, in)
	require.NoError(t, err)
	require.Equal(t, 2.5, in.Penalization)
}
