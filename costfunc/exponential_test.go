package costfunc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpdlab/cpd/costfunc"
)

func TestExponential_NotPrecomputed(t *testing.T) {
	e := costfunc.NewExponentialCost()
	_, err := e.RangeCost(0, 1)
	require.ErrorIs(t, err, costfunc.ErrNotPrecomputed)
}

func TestExponential_ZeroSumGuardedByEpsilon(t *testing.T) {
	e := costfunc.NewExponentialCost()
	require.NoError(t, e.Precompute(mustSignal(t, []float64{0, 0, 0, 0})))

	cost, err := e.RangeCost(0, 4)
	require.NoError(t, err)
	// L / epsilon, not a division-by-zero NaN/Inf.
	assert.InDelta(t, 4.0/costfunc.DefaultEpsilon, cost, 1e-6)
}

func TestExponential_DegenerateRangeIsInfinity(t *testing.T) {
	e := costfunc.NewExponentialCost()
	require.NoError(t, e.Precompute(mustSignal(t, []float64{1, 2, 3})))

	cost, err := e.RangeCost(1, 1)
	require.NoError(t, err)
	assert.Equal(t, costfunc.Infinity, cost)
}

func TestExponential_RejectsNonPositiveEpsilon(t *testing.T) {
	_, err := costfunc.NewExponentialCostWithEpsilon(0)
	require.Error(t, err)
}

func TestExponential_HigherRateLowersCost(t *testing.T) {
	fast := costfunc.NewExponentialCost()
	require.NoError(t, fast.Precompute(mustSignal(t, []float64{10, 10, 10})))
	slow := costfunc.NewExponentialCost()
	require.NoError(t, slow.Precompute(mustSignal(t, []float64{1, 1, 1})))

	fastCost, err := fast.RangeCost(0, 3)
	require.NoError(t, err)
	slowCost, err := slow.RangeCost(0, 3)
	require.NoError(t, err)

	assert.Less(t, fastCost, slowCost)
}
