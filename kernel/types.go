package kernel

// Kernel measures how similar two values are: close to 1 when x and y
// are alike, close to 0 when they are not.
type Kernel interface {
	// Similarity returns a value in (0,1] for inputs x and y.
	Similarity(x, y float64) float64

	// Name identifies the kernel variant (used in solver/Metrics bookkeeping
	// as part of the kernel cost function's name).
	Name() string
}

// Default bandwidths, per the recognized configuration constants: 1e3 for
// Gaussian and 1e-3 for Laplace. With the 1e-3 default, Laplace similarity
// exp(-|x-y|/bandwidth) is close to 0 for any difference much larger than
// 1e-3.
const (
	DefaultGaussianBandwidth = 1e3
	DefaultLaplaceBandwidth  = 1e-3
)
