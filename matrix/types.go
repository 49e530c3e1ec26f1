// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types.
// This file holds the public Matrix interface implemented by *Dense and the
// label type shared by Labeled matrices. Errors and options live in dedicated
// files (errors.go, options.go).
package matrix

// Label identifies a row or a column of a Labeled matrix (a site or a species).
// Alignment between inputs always goes through labels, never positions.
type Label = string

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
