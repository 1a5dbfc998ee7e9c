package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cpdlab/cpd/evaluator"
)

// TestMatch_ScenarioSix pins scenario #6 of the design's end-to-end
// table: ground [100,200] vs predicted [95,205,400] within window 10
// yields correct=2, incorrect=1, not_found=0.
func TestMatch_ScenarioSix(t *testing.T) {
	result := evaluator.Match([]int{100, 200}, []int{95, 205, 400}, 10)
	assert.Equal(t, 2, result.Correct)
	assert.Equal(t, 1, result.Incorrect)
	assert.Equal(t, 0, result.NotFound)
}

func TestMatch_ExactMatch(t *testing.T) {
	result := evaluator.Match([]int{10, 20, 30}, []int{10, 20, 30}, 0)
	assert.Equal(t, 3, result.Correct)
	assert.Equal(t, 0, result.Incorrect)
	assert.Equal(t, 0, result.NotFound)
}

func TestMatch_EmptyPrediction(t *testing.T) {
	result := evaluator.Match([]int{10, 20}, nil, 5)
	assert.Equal(t, 0, result.Correct)
	assert.Equal(t, 0, result.Incorrect)
	assert.Equal(t, 2, result.NotFound)
}

func TestMatch_EmptyGround(t *testing.T) {
	result := evaluator.Match(nil, []int{10, 20}, 5)
	assert.Equal(t, 0, result.Correct)
	assert.Equal(t, 2, result.Incorrect)
	assert.Equal(t, 0, result.NotFound)
}

// TestMatch_AsymmetricTieBreak pins §4.4's tie-breaking rule: two
// predicted changepoints both fall within window of the same ground
// changepoint, and a later ground changepoint; greedy first-unclaimed
// scanning in ascending ground order must claim the smallest eligible
// ground index first for each predicted point in input order.
func TestMatch_AsymmetricTieBreak(t *testing.T) {
	// ground: 10 and 12, both reachable from predicted 11 within window 2.
	// predicted[0]=11 claims ground[0]=10 (ascending scan, first eligible).
	// predicted[1]=11 then claims ground[1]=12 (10 already claimed).
	result := evaluator.Match([]int{10, 12}, []int{11, 11}, 2)
	assert.Equal(t, 2, result.Correct)
	assert.Equal(t, 0, result.Incorrect)
	assert.Equal(t, 0, result.NotFound)
}

func TestMatch_PredictedOrderMatters(t *testing.T) {
	// Only one ground changepoint; the first predicted point in input
	// order claims it, the second is incorrect.
	result := evaluator.Match([]int{50}, []int{48, 52}, 5)
	assert.Equal(t, 1, result.Correct)
	assert.Equal(t, 1, result.Incorrect)
	assert.Equal(t, 0, result.NotFound)
}
