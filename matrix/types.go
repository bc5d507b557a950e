// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Kernels accept Matrix and return *Dense; a *Dense operand unlocks the
// flat-slice fast paths.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values
// whose shape is fixed at construction.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (row, col).
	// Returns ErrOutOfRange if either index is outside the shape.
	At(row, col int) (float64, error)

	// Set assigns v at position (row, col).
	// Returns ErrOutOfRange if either index is outside the shape.
	Set(row, col int, v float64) error

	// Clone returns a deep copy independent of the original.
	Clone() Matrix
}
