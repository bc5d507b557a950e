// SPDX-License-Identifier: MIT
// Package matrix: public constructors.
//
// Purpose:
//   - Provide intention-revealing entry points: zero, identity, literal data.
//   - Every constructor validates shape before allocating; dimensions are final.

package matrix

import "fmt"

// ---------- Constructors (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (ones on the main diagonal, zeros elsewhere).
// Identity is only meaningful for square shapes, hence a single size argument.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewIdentity: %w", err)
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// NewFromRows builds a Dense from literal row data, indexed rows[row][col].
// The input is deep-copied; later edits to rows do not leak into the matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrNonRectangular when any row length differs from the first.
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewFromRows: %w", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := newDenseUnchecked(r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d columns, want %d: %w", i, len(row), c, ErrNonRectangular)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// MustFromRows is NewFromRows for literals known to be well-formed.
// It panics on malformed input (programmer error).
func MustFromRows(rows [][]float64) *Dense {
	m, err := NewFromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}
