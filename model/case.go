package model

import (
	"time"

	"github.com/cpdlab/cpd/signal"
)

// ValueMetadata describes a single signal sample's position, and
// optionally its timestamp for real-world cases. It is the typed variant
// called for in place of a duck-typed "field_from_label(string)" helper:
// callers read .Index or .Date directly instead of looking a field up by
// string key.
type ValueMetadata struct {
	Index int
	Date  time.Time // zero Time when the owning Case carries no dates
}

// HasDate reports whether this sample carries a real timestamp (always
// false for synthetic cases, per §6's case format).
func (v ValueMetadata) HasDate() bool { return !v.Date.IsZero() }

// CaseType distinguishes synthetic (generated, ground-truth available)
// cases from real-world ones.
type CaseType int

const (
	// Synthetic cases are generator output with a known ground truth and
	// no per-sample timestamps.
	Synthetic CaseType = iota

	// Real cases carry timestamps but no ground truth.
	Real
)

// Case is a loaded problem instance: a named signal plus optional
// per-sample metadata. Case holds data only — it never parses files or
// writes CSV; that remains the driver's job (§1/§6).
type Case struct {
	Name     string
	Type     CaseType
	Signal   signal.Signal
	Metadata []ValueMetadata
}
