// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels over any Matrix:
// transpose, submatrix extraction, 2×2 determinant, matrix product,
// 4×4·tuple transform and approximate equality. All kernels perform strict
// fail-fast validation and return sentinel errors on shape problems.
//
// Notes:
//   - Loop bounds always come from the operands' stored dimensions.
//   - *Dense operands take a flat-slice fast path; anything else goes through At/Set.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/rayray/tuple"
)

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opTranspose   = "Transpose"
	opSubmatrix   = "Submatrix"
	opDeterminant = "Determinant"
	opMul         = "Mul"
	opMulTuple    = "MulTuple"
	opEqual       = "Equal"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Only call with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Works for every shape: an r×c input yields a c×r result. The input is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res := newDenseUnchecked(cols, rows) // dims flipped

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Submatrix returns a copy of m with exactly one row and one column removed.
// The result is (r-1)×(c-1); remaining cells keep their relative order.
//
// Implementation:
//   - Stage 1: validate non-nil, both dimensions ≥ 2, row/col in range.
//   - Stage 2: copy every cell except those on the removed row or column.
//
// Errors:
//   - ErrNilMatrix, ErrUnsupportedSize (a 1×N or N×1 input has no submatrix),
//     ErrOutOfRange (row or col outside the shape).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func Submatrix(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows < 2 || cols < 2 {
		return nil, matrixErrorf(opSubmatrix, fmt.Errorf("%dx%d: %w", rows, cols, ErrUnsupportedSize))
	}
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return nil, matrixErrorf(opSubmatrix, fmt.Errorf("drop (%d,%d) from %dx%d: %w", row, col, rows, cols, ErrOutOfRange))
	}

	res := newDenseUnchecked(rows-1, cols-1)
	var (
		i, j, dst int
		v         float64
		err       error
	)
	for i = 0; i < rows; i++ {
		if i == row {
			continue
		}
		for j = 0; j < cols; j++ {
			if j == col {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opSubmatrix, err)
			}
			res.data[dst] = v
			dst++
		}
	}

	return res, nil
}

// Determinant returns ad - bc for a 2×2 matrix [[a, b], [c, d]].
// Any other size is a precondition violation reported as an error;
// no expansion is attempted.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (r != c), ErrUnsupportedSize (square but not 2×2).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSize(m, 2, 2); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	var a, b, c, d float64
	if dm, ok := m.(*Dense); ok {
		a, b, c, d = dm.data[0], dm.data[1], dm.data[2], dm.data[3]
	} else {
		var err error
		if a, err = m.At(0, 0); err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}
		if b, err = m.At(0, 1); err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}
		if c, err = m.At(1, 0); err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}
		if d, err = m.At(1, 1); err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}
	}

	return a*d - b*c, nil
}

// Mul returns the standard matrix product a×b.
// Shapes are validated before any arithmetic: a.Cols() must equal b.Rows();
// the result is a.Rows()×b.Cols().
//
// Determinism:
//   - Fixed loop orders (i→k→j fast path, i→j→k fallback).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDenseUnchecked(aRows, bCols)

	var (
		i, j, k int
		av, bv  float64
		acc     float64
		err     error
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}
			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// MulTuple transforms t by a 4×4 matrix: result[i] = row_i(m) · (x, y, z, w).
//
// Errors:
//   - ErrNilMatrix, ErrUnsupportedSize (m is not 4×4).
//
// Complexity: O(16).
func MulTuple(m Matrix, t tuple.Tuple) (tuple.Tuple, error) {
	if err := ValidateSize(m, 4, 4); err != nil {
		return tuple.Tuple{}, matrixErrorf(opMulTuple, err)
	}
	in := t.Array()
	var out [4]float64

	if dm, ok := m.(*Dense); ok {
		var base int
		for i := 0; i < 4; i++ {
			base = i * 4
			out[i] = dm.data[base]*in[0] + dm.data[base+1]*in[1] + dm.data[base+2]*in[2] + dm.data[base+3]*in[3]
		}
		return tuple.FromArray(out), nil
	}

	var v float64
	var err error
	for i := 0; i < 4; i++ {
		out[i] = ZeroSum
		for j := 0; j < 4; j++ {
			if v, err = m.At(i, j); err != nil {
				return tuple.Tuple{}, matrixErrorf(opMulTuple, err)
			}
			out[i] += v * in[j]
		}
	}

	return tuple.FromArray(out), nil
}

// Equal reports whether a and b have the same shape and every pair of cells
// differs by less than tuple.Epsilon. A shape mismatch is not an error: it
// simply yields false.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if !tuple.ApproxEqual(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
