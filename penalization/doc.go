// Package penalization chooses the two free hyperparameters every
// penalized solver needs without human input: the penalization beta and
// the maximum changepoint count K.
//
// Elbow and Silhouette both implement Selector by first solving a
// divide-and-conquer segment-count DP over a kernel cost up to K_max =
// min(250, floor(sqrt(n))) changepoints, then scanning the resulting
// best_prefix table for a guessed K*. SelectBeta then binary-searches the
// penalization weight that reproduces K* changepoints under binary
// segmentation. DefaultPolicy skips both and returns fixed constants.
package penalization
