package pairwise

import (
	"fmt"
	"strings"
)

// Pairs selects which site pairs are evaluated.
type Pairs int

const (
	// Unique evaluates unordered pairs i<j only; no self-pairs.
	Unique Pairs = iota
	// Full evaluates every ordered pair, self-pairs included.
	Full
)

// String returns the configuration name of p.
func (p Pairs) String() string {
	switch p {
	case Unique:
		return "unique"
	case Full:
		return "full"
	}

	return fmt.Sprintf("Pairs(%d)", int(p))
}

// ParsePairs maps "unique" or "full" (case-insensitive) to a Pairs value.
func ParsePairs(s string) (Pairs, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unique":
		return Unique, nil
	case "full":
		return Full, nil
	}

	return Unique, fmt.Errorf("%w: %q", ErrUnknownPairs, s)
}

// Output selects the rendered shape of a Result.
type Output int

const (
	// Table renders one Row per evaluated pair ("data.frame").
	Table Output = iota
	// Matrix renders one n×n matrix per metric.
	Matrix
)

// String returns the configuration name of o.
func (o Output) String() string {
	switch o {
	case Table:
		return "data.frame"
	case Matrix:
		return "matrix"
	}

	return fmt.Sprintf("Output(%d)", int(o))
}

// ParseOutput accepts "data.frame" (or "table") and "matrix".
func ParseOutput(s string) (Output, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "data.frame", "table":
		return Table, nil
	case "matrix":
		return Matrix, nil
	}

	return Table, fmt.Errorf("%w: %q", ErrUnknownOutput, s)
}

// Metric names, in column order.
const (
	MetricGamma            = "gamma"
	MetricAlpha            = "alpha"
	MetricBeta             = "beta"
	MetricLocalSimilarity  = "local_similarity"
	MetricRegionSimilarity = "region_similarity"
)

// Metrics lists every metric projected by Matrices, in column order.
var Metrics = []string{MetricGamma, MetricAlpha, MetricBeta, MetricLocalSimilarity, MetricRegionSimilarity}

// Row is one evaluated pair.
type Row struct {
	Site1            string  `json:"site1"`
	Site2            string  `json:"site2"`
	Q                float64 `json:"q"`
	Gamma            float64 `json:"gamma"`
	Alpha            float64 `json:"alpha"`
	Beta             float64 `json:"beta"`
	LocalSimilarity  float64 `json:"local_similarity"`
	RegionSimilarity float64 `json:"region_similarity"`
}

// Metric returns the value of the named metric; ok is false for an unknown name.
func (r Row) Metric(name string) (v float64, ok bool) {
	switch name {
	case MetricGamma:
		return r.Gamma, true
	case MetricAlpha:
		return r.Alpha, true
	case MetricBeta:
		return r.Beta, true
	case MetricLocalSimilarity:
		return r.LocalSimilarity, true
	case MetricRegionSimilarity:
		return r.RegionSimilarity, true
	}

	return 0, false
}
