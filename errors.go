// SPDX-License-Identifier: MIT

package hilldiv

import (
	"errors"
	"fmt"
)

// Shared error taxonomy. Every package wraps these sentinels with its own
// operation context ("taxa: Diversity: site \"A\": ..."); callers match them
// with errors.Is.
var (
	// ErrDomain marks invalid mathematical input: empty or all-zero weight
	// vectors, negative abundances, q < 0 or non-finite q.
	ErrDomain = errors.New("hilldiv: domain error")

	// ErrShapeMismatch marks inconsistent labels or shapes between inputs:
	// duplicate or unresolved site/species labels, ragged rows, non-square or
	// asymmetric distance matrices.
	ErrShapeMismatch = errors.New("hilldiv: shape mismatch")

	// ErrDegenerateResult is the kind of every non-fatal Warning: a similarity
	// index fell outside [0,1] and was reported as NaN.
	ErrDegenerateResult = errors.New("hilldiv: degenerate result")
)

// Warning is a non-fatal anomaly raised during a computation. Warnings are
// accumulated on results and never abort the call.
type Warning struct {
	Kind   error   // always ErrDegenerateResult for now
	Field  string  // result field the warning refers to, e.g. "LocalSimilarity"
	Value  float64 // raw value before it was replaced by NaN
	Detail string  // free-form context (q, number of sites, site pair)
}

// Error implements error so a Warning can be logged or matched like one.
func (w Warning) Error() string {
	if w.Detail == "" {
		return fmt.Sprintf("%v: %s=%g outside [0,1]", w.Kind, w.Field, w.Value)
	}

	return fmt.Sprintf("%v: %s=%g outside [0,1] (%s)", w.Kind, w.Field, w.Value, w.Detail)
}

// Unwrap exposes Kind for errors.Is.
func (w Warning) Unwrap() error { return w.Kind }
