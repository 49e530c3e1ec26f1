// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All routines return these sentinels and tests check them via
// errors.Is. No routine panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hilldiv"
)

// NOTE ON NAMING & WRAPPING
// -------------------------
// Every message is prefixed with "matrix: ...". Structural sentinels also wrap
// the shared hilldiv taxonomy, so errors.Is(err, hilldiv.ErrShapeMismatch)
// holds for a non-square distance matrix without callers knowing about this
// package's finer-grained names.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = fmt.Errorf("matrix: dimensions must be > 0: %w", hilldiv.ErrShapeMismatch)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. ragged input rows or label lists of the wrong length.
	ErrDimensionMismatch = fmt.Errorf("matrix: dimension mismatch: %w", hilldiv.ErrShapeMismatch)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", hilldiv.ErrShapeMismatch)

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured epsilon.
	ErrAsymmetry = fmt.Errorf("matrix: matrix is not symmetric within eps: %w", hilldiv.ErrShapeMismatch)

	// ErrNonZeroDiagonal signals that a diagonal is required to be ~0 (within eps)
	// but a non-zero entry was observed (distance matrices).
	ErrNonZeroDiagonal = fmt.Errorf("matrix: diagonal not zero within eps: %w", hilldiv.ErrShapeMismatch)

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = fmt.Errorf("matrix: NaN or Inf encountered: %w", hilldiv.ErrDomain)

	// ErrNegative signals a negative entry where only non-negative values are legal
	// (abundances, distances).
	ErrNegative = fmt.Errorf("matrix: negative entry: %w", hilldiv.ErrDomain)

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrDuplicateLabel indicates a row or column label occurs more than once.
	ErrDuplicateLabel = fmt.Errorf("matrix: duplicate label: %w", hilldiv.ErrShapeMismatch)

	// ErrEmptyLabel indicates a row or column label is the empty string.
	ErrEmptyLabel = fmt.Errorf("matrix: empty label: %w", hilldiv.ErrShapeMismatch)

	// ErrUnknownLabel indicates a label could not be resolved against the
	// matrix's label index.
	ErrUnknownLabel = fmt.Errorf("matrix: unknown label: %w", hilldiv.ErrShapeMismatch)
)

// matrixErrorf wraps an error with an operation tag ("RowSums: ...").
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
