package dataset

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/hilldiv"
)

// Summary describes the finite values of one result column.
type Summary struct {
	Name    string
	N       int // finite values used
	Missing int // NaN values skipped
	Mean    float64
	Median  float64
	SD      float64 // population standard deviation
	Min     float64
	Max     float64
}

// Summarize computes a Summary over the non-NaN entries of values.
//
// Errors: hilldiv.ErrDomain when no finite value is left.
func Summarize(name string, values []float64) (Summary, error) {
	s := Summary{Name: name}
	data := make(stats.Float64Data, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) {
			s.Missing++
			continue
		}
		data = append(data, v)
	}
	s.N = len(data)
	if s.N == 0 {
		return s, fmt.Errorf("dataset: Summarize %q: no values: %w", name, hilldiv.ErrDomain)
	}

	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, fmt.Errorf("dataset: Summarize %q: %w", name, err)
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, fmt.Errorf("dataset: Summarize %q: %w", name, err)
	}
	if s.SD, err = stats.StandardDeviation(data); err != nil {
		return s, fmt.Errorf("dataset: Summarize %q: %w", name, err)
	}
	if s.Min, err = stats.Min(data); err != nil {
		return s, fmt.Errorf("dataset: Summarize %q: %w", name, err)
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, fmt.Errorf("dataset: Summarize %q: %w", name, err)
	}

	return s, nil
}

// SummarizeFrame summarizes every numeric column of f that has a value.
func SummarizeFrame(f Frame) []Summary {
	var out []Summary
	for _, name := range f.Header[f.NumKeys():] {
		col, err := f.Column(name)
		if err != nil {
			continue
		}
		if s, err := Summarize(name, col); err == nil {
			out = append(out, s)
		}
	}

	return out
}

// SummaryFrame renders summaries one per row.
func SummaryFrame(ss []Summary) Frame {
	f := Frame{Header: []string{"metric", "n", "missing", "mean", "median", "sd", "min", "max"}}
	for _, s := range ss {
		f.Keys = append(f.Keys, []string{s.Name})
		f.Values = append(f.Values, []float64{float64(s.N), float64(s.Missing), s.Mean, s.Median, s.SD, s.Min, s.Max})
	}

	return f
}
