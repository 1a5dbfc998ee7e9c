package kernel

import "errors"

// ErrBadBandwidth indicates a non-positive bandwidth was supplied to a
// kernel constructor.
var ErrBadBandwidth = errors.New("kernel: bandwidth must be > 0")
