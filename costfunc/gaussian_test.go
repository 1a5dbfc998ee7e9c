package costfunc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpdlab/cpd/costfunc"
	"github.com/cpdlab/cpd/signal"
)

func mustSignal(t *testing.T, values []float64) signal.Signal {
	t.Helper()
	s, err := signal.New(values)
	require.NoError(t, err)

	return s
}

func TestGaussian_NotPrecomputed(t *testing.T) {
	g := costfunc.NewGaussianCost()
	_, err := g.RangeCost(0, 1)
	require.ErrorIs(t, err, costfunc.ErrNotPrecomputed)
}

func TestGaussian_DegenerateRangeIsInfinity(t *testing.T) {
	g := costfunc.NewGaussianCost()
	require.NoError(t, g.Precompute(mustSignal(t, []float64{1, 2, 3})))

	cost, err := g.RangeCost(1, 1)
	require.NoError(t, err)
	assert.Equal(t, costfunc.Infinity, cost)
}

func TestGaussian_ConstantSignalIsZeroCost(t *testing.T) {
	g := costfunc.NewGaussianCost()
	require.NoError(t, g.Precompute(mustSignal(t, []float64{0, 0, 0, 0, 0, 0})))

	cost, err := g.RangeCost(0, 6)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, cost, 1e-12)
}

// TestGaussian_ChangeInMean pins scenario #2/#3 of the design's end-to-end
// table: [0,0,0,10,10,10] split exactly at index 3 costs ~0.
func TestGaussian_ChangeInMean(t *testing.T) {
	g := costfunc.NewGaussianCost()
	require.NoError(t, g.Precompute(mustSignal(t, []float64{0, 0, 0, 10, 10, 10})))

	left, err := g.RangeCost(0, 3)
	require.NoError(t, err)
	right, err := g.RangeCost(3, 6)
	require.NoError(t, err)
	whole, err := g.RangeCost(0, 6)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, left, 1e-9)
	assert.InDelta(t, 0.0, right, 1e-9)
	assert.Greater(t, whole, left+right)
}

func TestGaussian_InvalidRange(t *testing.T) {
	g := costfunc.NewGaussianCost()
	require.NoError(t, g.Precompute(mustSignal(t, []float64{1, 2, 3})))

	_, err := g.RangeCost(2, 1)
	require.ErrorIs(t, err, costfunc.ErrInvalidRange)

	_, err = g.RangeCost(0, 4)
	require.ErrorIs(t, err, costfunc.ErrInvalidRange)
}

func TestGaussian_Name(t *testing.T) {
	assert.Equal(t, "gaussian", costfunc.NewGaussianCost().Name())
}
