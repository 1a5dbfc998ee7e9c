package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cpdlab/cpd/signal"
)

// dateLayout is the %Y-%m-%d %H:%M timestamp format used by real-world
// case files (§6).
const dateLayout = "2006-01-02 15:04"

// ParseCase parses a case's signal line (comma-separated reals) and
// optional date line (comma-separated timestamps, present only for
// real-world cases) into a Case. An empty dateLine means a synthetic
// case: metadata carries a bare index and a zero Time for every sample.
//
// ParseCase performs no file I/O — the caller already read the lines
// (§6's case format is a driver concern, parsing the strings is not).
func ParseCase(name string, signalLine string, dateLine string) (Case, error) {
	values, err := parseFloats(signalLine)
	if err != nil {
		return Case{}, err
	}

	s, err := signal.New(values)
	if err != nil {
		return Case{}, fmt.Errorf("%w: %v", ErrMalformedCase, err)
	}

	caseType := Synthetic
	metadata := make([]ValueMetadata, len(values))
	if strings.TrimSpace(dateLine) != "" {
		caseType = Real
		fields := strings.Split(dateLine, ",")
		if len(fields) != len(values) {
			return Case{}, ErrMalformedCase
		}

		var (
			i int
			f string
			t time.Time
		)
		for i, f = range fields {
			t, err = time.Parse(dateLayout, strings.TrimSpace(f))
			if err != nil {
				return Case{}, fmt.Errorf("%w: %v", ErrMalformedCase, err)
			}
			metadata[i] = ValueMetadata{Index: i, Date: t}
		}
	} else {
		var i int
		for i = range values {
			metadata[i] = ValueMetadata{Index: i}
		}
	}

	return Case{Name: name, Type: caseType, Signal: s, Metadata: metadata}, nil
}

// parseFloats splits a comma-separated line of reals.
func parseFloats(line string) ([]float64, error) {
	fields := strings.Split(line, ",")
	values := make([]float64, 0, len(fields))

	var (
		f   string
		v   float64
		err error
	)
	for _, f = range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err = strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCase, err)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, ErrMalformedCase
	}

	return values, nil
}

// ParseChangepoints parses a comma-separated list of integer changepoint
// indices (the §6 ground-truth / .out file format).
func ParseChangepoints(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))

	var (
		f   string
		v   int64
		err error
	)
	for _, f = range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err = strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedChangepoints, err)
		}
		out = append(out, int(v))
	}

	return out, nil
}

// FormatChangepoints renders changepoints as the ascending-sorted,
// comma-separated list the §6 .out format expects. Callers must pass
// already-sorted input; FormatChangepoints does not sort (Solution's
// Changepoints are already guaranteed sorted by every solver).
func FormatChangepoints(cp []int) string {
	parts := make([]string, len(cp))
	var i int
	for i = range cp {
		parts[i] = strconv.Itoa(cp[i])
	}

	return strings.Join(parts, ",")
}

// FormatMetricsRow produces the ordered field values of a .metrics CSV
// row: name, size, cost_function, solver, changepoints, cost,
// execution_time, right_changepoints, wrong_changepoints,
// not_found_changepoints (§6). It returns a []string ready for a
// driver's encoding/csv.Writer; this package never imports encoding/csv
// itself.
func FormatMetricsRow(in AlgorithmInput, caseName string, sol Solution) []string {
	row := []string{
		caseName,
		strconv.Itoa(in.Signal.Len()),
		in.CostFunction.Name(),
		sol.Metrics.SolverID,
		strconv.Itoa(len(sol.Changepoints)),
		strconv.FormatFloat(sol.Metrics.Cost, 'g', -1, 64),
		strconv.FormatFloat(sol.Metrics.ExecutionTime, 'g', -1, 64),
		optionalIntField(sol.Metrics.CorrectChangepoints),
		optionalIntField(sol.Metrics.IncorrectChangepoints),
		optionalIntField(sol.Metrics.NotFoundChangepoints),
	}

	return row
}

// optionalIntField renders a *int as its decimal value, or "" when nil.
func optionalIntField(v *int) string {
	if v == nil {
		return ""
	}

	return strconv.Itoa(*v)
}
