// Package costfunc_test verifies that a precomputed CostFunction is safe
// to query concurrently from multiple goroutines (§5: read-only after
// Precompute).
package costfunc_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cpdlab/cpd/costfunc"
)

func TestConcurrentRangeCost_Gaussian(t *testing.T) {
	values := make([]float64, 500)
	for i := range values {
		values[i] = float64(i % 7)
	}
	g := costfunc.NewGaussianCost()
	require.NoError(t, g.Precompute(mustSignal(t, values)))

	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < len(values); i++ {
				j := (i + id + 1) % (len(values) + 1)
				if j <= i {
					continue
				}
				_, err := g.RangeCost(i, j)
				require.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()
}
