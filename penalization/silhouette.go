package penalization

import (
	"context"
	"math"

	"github.com/cpdlab/cpd/kernel"
	"github.com/cpdlab/cpd/model"
	"github.com/cpdlab/cpd/signal"
	"github.com/cpdlab/cpd/solver"
)

// Silhouette implements the silhouette-method selector of §4.3.2: for
// every candidate k it scores the partition's cluster cohesion (via
// AggInner/AggSignal kernel aggregation) against its objective value,
// penalizing large k with an exponential decay, then picks the
// maximizing k.
type Silhouette struct {
	Kernel    kernel.Kernel
	AggInner  Aggregator
	AggSignal Aggregator
}

// NewSilhouette builds a Silhouette selector defaulting both aggregators
// to Median, per §4.3.2.
func NewSilhouette(k kernel.Kernel) *Silhouette {
	return &Silhouette{Kernel: k, AggInner: Median, AggSignal: Median}
}

// Select implements Selector.
func (sh *Silhouette) Select(ctx context.Context, s signal.Signal) (float64, int, error) {
	p, err := prepare(ctx, s, sh.Kernel)
	if err != nil {
		return 0, 0, err
	}

	kStar, err := sh.bestK(ctx, p, s)
	if err != nil {
		return 0, 0, err
	}

	beta, err := SelectBeta(ctx, kStar, p.in)
	if err != nil {
		return 0, 0, err
	}

	return beta, kStar, nil
}

// bestK scores every candidate k in [1,K_max] and returns the
// score-maximizing one, per §4.3.2's score(k) formula.
func (sh *Silhouette) bestK(ctx context.Context, p prepared, s signal.Signal) (int, error) {
	sils := make([]float64, p.kMax+1)
	minV := math.Inf(1)
	maxSil := 0.0

	var k int
	for k = 1; k <= p.kMax; k++ {
		partition, err := partitionAt(ctx, p.in, k)
		if err != nil {
			return 0, err
		}

		sils[k] = sh.silhouette(s, partition)
		if sils[k] > maxSil {
			maxSil = sils[k]
		}
		if v := p.vAt(k); v < minV {
			minV = v
		}
	}

	bestK, bestScore := 1, math.Inf(-1)
	for k = 1; k <= p.kMax; k++ {
		score := sh.score(sils[k], maxSil, minV, p.vAt(k), k, p.kMax)
		if score > bestScore {
			bestScore = score
			bestK = k
		}
	}

	return bestK, nil
}

func (sh *Silhouette) score(sil, maxSil, minV, vk float64, k, kMax int) float64 {
	if maxSil == 0 || vk == 0 {
		return math.Inf(-1)
	}

	return (sil / maxSil) * (minV / vk) * math.Exp(-float64(k)/float64(kMax))
}

// partitionAt re-derives the exact k-changepoint partition by running a
// fresh SegmentCountDP against in's already-precomputed cost function
// (§5: safe to share read-only across solver instances).
func partitionAt(ctx context.Context, in model.AlgorithmInput, k int) ([]int, error) {
	sol, err := solver.NewSegmentCountDP(in, k).Solve(ctx)
	if err != nil {
		return nil, err
	}

	return sol.Changepoints, nil
}

// segment is a half-open [start,end) range of signal indices.
type segment struct{ start, end int }

// silhouette computes sil(k) for the given partition: per-point
// silhouette (a-b)/max(a,b) aggregated across the whole signal with
// AggSignal, where a is the AggInner similarity within a point's own
// segment and b is the max of the same aggregation over the immediately
// neighbouring segments (0 at signal boundaries).
func (sh *Silhouette) silhouette(s signal.Signal, changepoints []int) float64 {
	segments := segmentsFrom(changepoints, s.Len())

	var pointSils []float64
	var segIdx int
	for segIdx = range segments {
		seg := segments[segIdx]

		var hasPrev, hasNext bool
		var prev, next segment
		if segIdx > 0 {
			prev, hasPrev = segments[segIdx-1], true
		}
		if segIdx < len(segments)-1 {
			next, hasNext = segments[segIdx+1], true
		}

		var t int
		for t = seg.start; t < seg.end; t++ {
			a := sh.AggInner.Apply(sh.similaritiesTo(s, t, seg))
			var prevAgg, nextAgg float64
			if hasPrev {
				prevAgg = sh.AggInner.Apply(sh.similaritiesTo(s, t, prev))
			}
			if hasNext {
				nextAgg = sh.AggInner.Apply(sh.similaritiesTo(s, t, next))
			}
			b := math.Max(prevAgg, nextAgg)

			denom := math.Max(a, b)
			if denom == 0 {
				pointSils = append(pointSils, 0)

				continue
			}
			pointSils = append(pointSils, (a-b)/denom)
		}
	}

	return sh.AggSignal.Apply(pointSils)
}

// similaritiesTo returns {K(x_t,x_u) : u in seg}.
func (sh *Silhouette) similaritiesTo(s signal.Signal, t int, seg segment) []float64 {
	out := make([]float64, 0, seg.end-seg.start)
	var u int
	for u = seg.start; u < seg.end; u++ {
		out = append(out, sh.Kernel.Similarity(s.At(t), s.At(u)))
	}

	return out
}

// segmentsFrom turns an ordered changepoint list into [start,end) pairs
// covering [0,n).
func segmentsFrom(changepoints []int, n int) []segment {
	bounds := append([]int{0}, changepoints...)
	bounds = append(bounds, n)

	segments := make([]segment, 0, len(bounds)-1)
	var i int
	for i = 0; i < len(bounds)-1; i++ {
		segments = append(segments, segment{bounds[i], bounds[i+1]})
	}

	return segments
}
