// Package evaluator scores predicted changepoints against ground truth
// with a greedy, one-to-one windowed match (§4.4): each predicted
// changepoint claims the first unmatched ground-truth changepoint within
// a tolerance window, in predicted-order, breaking ties toward the
// smallest ground-truth index.
package evaluator
