// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the row/column reductions the diversity engines are built on:
//     row totals (site abundance), column totals (pooled species abundance),
//     L1 row normalization (relative abundance) and column means (pooling after
//     normalization).
//
// Exposed API:
//   - RowSums(X)         -> []float64            // Σ_j X[i,j]
//   - ColSums(X)         -> []float64            // Σ_i X[i,j]
//   - ColMeans(X)        -> []float64            // Σ_i X[i,j] / r
//   - NormalizeRowsL1(X) -> (*Dense, norms)      // L1 row normalization (degenerate rows unchanged)
//
// Determinism & Performance:
//   - Fixed i→j traversal; rows are contiguous so gonum/floats kernels run on
//     sub-slices of the flat buffer without copies.

package matrix

import "gonum.org/v1/gonum/floats"

// Operation name constants for unified error wrapping.
const (
	opRowSums         = "RowSums"
	opColSums         = "ColSums"
	opNormalizeRowsL1 = "NormalizeRowsL1"
)

// RowSums returns Σ_j X[i,j] for each row i.
// Complexity: O(r*c).
func RowSums(X *Dense) ([]float64, error) {
	if X == nil {
		return nil, matrixErrorf(opRowSums, ErrNilMatrix)
	}
	sums := make([]float64, X.r)
	for i := 0; i < X.r; i++ {
		sums[i] = floats.Sum(X.data[i*X.c : (i+1)*X.c])
	}

	return sums, nil
}

// ColSums returns Σ_i X[i,j] for each column j.
// Complexity: O(r*c).
func ColSums(X *Dense) ([]float64, error) {
	if X == nil {
		return nil, matrixErrorf(opColSums, ErrNilMatrix)
	}
	sums := make([]float64, X.c)
	for i := 0; i < X.r; i++ {
		floats.Add(sums, X.data[i*X.c:(i+1)*X.c]) // accumulate row i into sums
	}

	return sums, nil
}

// ColMeans returns the per-column mean Σ_i X[i,j] / r.
func ColMeans(X *Dense) ([]float64, error) {
	sums, err := ColSums(X)
	if err != nil {
		return nil, err
	}
	floats.Scale(1/float64(X.r), sums)

	return sums, nil
}

// NormalizeRowsL1 scales each row to sum to 1 when possible.
// Implementation:
//   - Stage 1: validate X and compute per-row L1 norms (entries are assumed ≥ 0).
//   - Stage 2: copy and scale rows with norm > 0; degenerate rows stay unchanged.
//
// Returns:
//   - *Dense: normalized copy.
//   - []float64: original row norms (callers use them to detect empty sites).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeRowsL1(X *Dense) (*Dense, []float64, error) {
	norms, err := RowSums(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}
	Y := X.Clone().(*Dense)
	for i := 0; i < Y.r; i++ {
		if norms[i] > 0 {
			floats.Scale(1/norms[i], Y.data[i*Y.c:(i+1)*Y.c])
		}
	}

	return Y, norms, nil
}
