// Package matrix offers the dense, labeled matrices the diversity engines
// compute on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set, row views and
//     copy-based submatrices (Induced), bridged to gonum via Gonum/FromGonum.
//   - Labeled, a Dense with unique row and column labels, aligned by label
//     (AlignRows, AlignCols, SelectSymmetric) so that site × species tables
//     and species × species distances never meet by position.
//   - Validators (ValidateNonNegative, ValidateDistance, ...) and row/column
//     statistics (RowSums, ColSums, NormalizeRowsL1).
//
// Structural errors wrap hilldiv.ErrShapeMismatch and value errors wrap
// hilldiv.ErrDomain, so callers can test either the fine or the coarse kind.
//
// See the examples in this package for usage patterns.
package matrix
