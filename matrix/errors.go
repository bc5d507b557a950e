// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation tag)
// and tests check them via errors.Is. No kernel panics on caller input.

package matrix

import "errors"

// NOTE ON NAMING
// --------------
// Every message is prefixed with "matrix: ..." so it greps cleanly in logs.
// Kernels wrap once at the detection site with fmt.Errorf("<Op>: %w", ErrX).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrUnsupportedSize marks an operation that is only defined for one size,
	// e.g. Determinant on anything but 2×2, MulTuple on anything but 4×4.
	ErrUnsupportedSize = errors.New("matrix: operation not defined for this size")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonRectangular indicates literal rows of differing lengths.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")
)
