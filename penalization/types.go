package penalization

import (
	"context"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cpdlab/cpd/signal"
)

// Selector chooses a penalization beta and a changepoint count k for a
// signal, without human input (§4.3).
type Selector interface {
	Select(ctx context.Context, s signal.Signal) (beta float64, k int, err error)
}

// Aggregator is the Go-native rendering of the lambda-based aggregation
// menu used by the silhouette selector (§4.3.2): a pure reduction over a
// slice of values, implemented atop gonum/stat rather than hand-rolled
// statistics.
type Aggregator int

const (
	Mean Aggregator = iota
	Median
	Min
	Max
	SquaredMean
	Percentile1
	Percentile5
	Percentile10
	Percentile15
	Percentile25
	Percentile35
	Percentile75
	Percentile95
)

// percentileOf returns the percentile point in (0,100) an aggregator
// represents, or (0, false) for a non-percentile aggregator.
func (a Aggregator) percentileOf() (float64, bool) {
	switch a {
	case Percentile1:
		return 1, true
	case Percentile5:
		return 5, true
	case Percentile10:
		return 10, true
	case Percentile15:
		return 15, true
	case Percentile25:
		return 25, true
	case Percentile35:
		return 35, true
	case Percentile75:
		return 75, true
	case Percentile95:
		return 95, true
	default:
		return 0, false
	}
}

// Apply reduces values to a single aggregate. An empty values slice
// returns 0.
func (a Aggregator) Apply(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	if p, ok := a.percentileOf(); ok {
		return quantileOf(values, p/100)
	}

	switch a {
	case Mean:
		return stat.Mean(values, nil)
	case Median:
		return quantileOf(values, 0.5)
	case Min:
		return floats.Min(values)
	case Max:
		return floats.Max(values)
	case SquaredMean:
		squares := make([]float64, len(values))
		var i int
		var v float64
		for i, v = range values {
			squares[i] = v * v
		}

		return stat.Mean(squares, nil)
	default:
		return stat.Mean(values, nil)
	}
}

// quantileOf copies and sorts values, then delegates to
// gonum/stat.Quantile with empirical-CDF interpolation, matching the
// convention the rest of this package uses for percentile aggregators.
func quantileOf(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return stat.Quantile(p, stat.Empirical, sorted, nil)
}
