package hill

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hilldiv"
)

// ValidateOrder rejects q < 0, NaN and ±Inf.
func ValidateOrder(q float64) error {
	if math.IsNaN(q) || math.IsInf(q, 0) || q < 0 {
		return fmt.Errorf("hill: order q=%v must be finite and >= 0: %w", q, hilldiv.ErrDomain)
	}

	return nil
}

// Normalize returns weights scaled to sum to 1.
//
// Errors: hilldiv.ErrDomain when weights is empty, contains a negative or
// non-finite entry, or sums to zero.
func Normalize(weights []float64) ([]float64, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("hill: empty weight vector: %w", hilldiv.ErrDomain)
	}
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("hill: weight[%d]=%v: %w", i, w, hilldiv.ErrDomain)
		}
	}
	total := floats.Sum(weights)
	if total <= 0 {
		return nil, fmt.Errorf("hill: all weights are zero: %w", hilldiv.ErrDomain)
	}
	p := make([]float64, len(weights))
	floats.ScaleTo(p, 1/total, weights)

	return p, nil
}

// Number returns the Hill number of order q for a vector of non-negative
// weights (abundances or probabilities). Weights are normalized first and
// exact zeros are excluded.
//
// Implementation:
//   - Stage 1: ValidateOrder, then Normalize to relative abundances p.
//   - Stage 2: q = 0 counts p_i > 0, q = 1 is exp(Shannon), otherwise
//     (Σ p_i^q)^(1/(1−q)).
//
// Errors:
//   - hilldiv.ErrDomain: invalid q, empty or negative or non-finite weights,
//     all-zero weights.
//
// Complexity:
//   - Time O(S), Space O(S) for S weights.
//
// Example:
//
//	d, _ := hill.Number([]float64{1, 1, 1, 1}, 2) // 4
func Number(weights []float64, q float64) (float64, error) {
	if err := ValidateOrder(q); err != nil {
		return 0, err
	}
	p, err := Normalize(weights)
	if err != nil {
		return 0, err
	}

	return number(p, q), nil
}

// number evaluates a validated probability vector.
func number(p []float64, q float64) float64 {
	switch q {
	case 0:
		return float64(Richness(p))
	case 1:
		return math.Exp(Shannon(p))
	}
	var s float64
	for _, pi := range p {
		if pi > 0 {
			s += math.Pow(pi, q)
		}
	}

	return math.Pow(s, 1/(1-q))
}

// Richness counts the strictly positive entries.
func Richness(weights []float64) int {
	n := 0
	for _, w := range weights {
		if w > 0 {
			n++
		}
	}

	return n
}

// Shannon returns −Σ p ln p over p > 0 (natural log). p is assumed normalized.
func Shannon(p []float64) float64 {
	var h float64
	for _, pi := range p {
		if pi > 0 {
			h -= pi * math.Log(pi)
		}
	}

	return h
}

// Weighted aggregates attribute values x under weights w:
//
//	q ≠ 1: (Σ w_i x_i^(q−1))^(1/(1−q))
//	q = 1: exp(−Σ w_i ln x_i)
//
// over the entries with w_i > 0. Weights are normalized to sum to 1. Every x_i
// paired with a positive weight must be positive.
//
// Implementation:
//   - Stage 1: ValidateOrder, check len(w) == len(x), Normalize w.
//   - Stage 2: one pass accumulating w_i·x_i^(q−1), or w_i·ln x_i at q = 1.
//
// Errors:
//   - hilldiv.ErrShapeMismatch: len(w) != len(x).
//   - hilldiv.ErrDomain: invalid q or weights, a non-positive or infinite x_i
//     under a positive weight.
//
// Complexity:
//   - Time O(S), Space O(S).
func Weighted(w, x []float64, q float64) (float64, error) {
	if err := ValidateOrder(q); err != nil {
		return 0, err
	}
	if len(w) != len(x) {
		return 0, fmt.Errorf("hill: %d weights for %d values: %w", len(w), len(x), hilldiv.ErrShapeMismatch)
	}
	p, err := Normalize(w)
	if err != nil {
		return 0, err
	}

	var s float64
	for i, pi := range p {
		if pi == 0 {
			continue
		}
		if !(x[i] > 0) || math.IsInf(x[i], 0) {
			return 0, fmt.Errorf("hill: value[%d]=%v under positive weight: %w", i, x[i], hilldiv.ErrDomain)
		}
		if q == 1 {
			s -= pi * math.Log(x[i])
		} else {
			s += pi * math.Pow(x[i], q-1)
		}
	}
	if q == 1 {
		return math.Exp(s), nil
	}

	return math.Pow(s, 1/(1-q)), nil
}

// Entropy returns the Tsallis entropy of order q, (1 − Σ p^q)/(q − 1), with
// Shannon entropy as its q = 1 limit.
func Entropy(weights []float64, q float64) (float64, error) {
	if err := ValidateOrder(q); err != nil {
		return 0, err
	}
	p, err := Normalize(weights)
	if err != nil {
		return 0, err
	}
	if q == 1 {
		return Shannon(p), nil
	}
	var s float64
	for _, pi := range p {
		if pi > 0 {
			s += math.Pow(pi, q)
		}
	}

	return (1 - s) / (q - 1), nil
}

// NumberFromEntropy converts a Tsallis entropy of order q back into its Hill
// number: (1 − (q − 1)·h)^(1/(1−q)), exp(h) at q = 1.
func NumberFromEntropy(h, q float64) (float64, error) {
	if err := ValidateOrder(q); err != nil {
		return 0, err
	}
	if q == 1 {
		return math.Exp(h), nil
	}

	return math.Pow(1-(q-1)*h, 1/(1-q)), nil
}
