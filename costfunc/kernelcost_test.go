package costfunc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpdlab/cpd/costfunc"
	"github.com/cpdlab/cpd/kernel"
)

func TestKernelCost_NotPrecomputed(t *testing.T) {
	k, err := kernel.NewGaussian(kernel.DefaultGaussianBandwidth)
	require.NoError(t, err)
	kc := costfunc.NewKernelCost(k)

	_, err = kc.RangeCost(0, 1)
	require.ErrorIs(t, err, costfunc.ErrNotPrecomputed)
}

func TestKernelCost_DegenerateRangeIsInfinity(t *testing.T) {
	k, err := kernel.NewGaussian(kernel.DefaultGaussianBandwidth)
	require.NoError(t, err)
	kc := costfunc.NewKernelCost(k)
	require.NoError(t, kc.Precompute(mustSignal(t, []float64{1, 2, 3})))

	cost, err := kc.RangeCost(1, 1)
	require.NoError(t, err)
	assert.Equal(t, costfunc.Infinity, cost)
}

func TestKernelCost_ConstantSignalIsZeroCost(t *testing.T) {
	k, err := kernel.NewGaussian(kernel.DefaultGaussianBandwidth)
	require.NoError(t, err)
	kc := costfunc.NewKernelCost(k)
	require.NoError(t, kc.Precompute(mustSignal(t, []float64{5, 5, 5, 5, 5})))

	cost, err := kc.RangeCost(0, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, cost, 1e-9)
}

func TestKernelCost_ChangeInDistributionRaisesCost(t *testing.T) {
	k, err := kernel.NewGaussian(1.0)
	require.NoError(t, err)
	kc := costfunc.NewKernelCost(k)
	require.NoError(t, kc.Precompute(mustSignal(t, []float64{0, 0, 0, 50, 50, 50})))

	whole, err := kc.RangeCost(0, 6)
	require.NoError(t, err)
	left, err := kc.RangeCost(0, 3)
	require.NoError(t, err)
	right, err := kc.RangeCost(3, 6)
	require.NoError(t, err)

	assert.Greater(t, whole, left+right)
}

func TestKernelCost_Name(t *testing.T) {
	k, err := kernel.NewLaplace(kernel.DefaultLaplaceBandwidth)
	require.NoError(t, err)
	kc := costfunc.NewKernelCost(k)
	assert.Equal(t, "kernel_laplace_kernel", kc.Name())
}
