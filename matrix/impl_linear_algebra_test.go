// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rayray/matrix"
	"github.com/katalvlaran/rayray/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMul_Reference4x4 checks the literal 4×4 product, on both the Dense fast path
// and the interface fallback.
func TestMul_Reference4x4(t *testing.T) {
	a, b := MustRows(t, mulA), MustRows(t, mulB)

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, mulAB, p)

	p2, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareExact(t, mulAB, p2)
}

// TestMul_Identity verifies M × I == M and I × M == M for square shapes.
func TestMul_Identity(t *testing.T) {
	cases := map[string][][]float64{
		"2x2": {{1, 5}, {-3, 2}},
		"3x3": {{1, 5, 0}, {-3, 2, 7}, {0, 6, -3}},
		"4x4": mulA,
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			m := MustRows(t, rows)
			id, err := matrix.NewIdentity(m.Rows())
			require.NoError(t, err)

			right, err := matrix.Mul(m, id)
			require.NoError(t, err)
			CompareClose(t, m, right)

			left, err := matrix.Mul(id, m)
			require.NoError(t, err)
			CompareClose(t, m, left)
		})
	}
}

// TestMul_Rectangular checks that loop bounds follow the stored dimensions.
func TestMul_Rectangular(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, p)
}

// TestMul_Errors ensures mismatched and nil operands fail before any arithmetic.
func TestMul_Errors(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 3)

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilDense *matrix.Dense
	_, err = matrix.Mul(a, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose checks a literal transpose, the round-trip property and
// rectangular shapes.
func TestTranspose(t *testing.T) {
	m := MustRows(t, [][]float64{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{
		{0, 9, 1, 0},
		{9, 8, 8, 0},
		{3, 0, 5, 5},
		{0, 8, 3, 8},
	}, tr)

	back, err := matrix.Transpose(tr)
	require.NoError(t, err)
	CompareExact(t, [][]float64{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	}, back)

	rect := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	rt, err := matrix.Transpose(hide{rect})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, rt)

	rtt, err := matrix.Transpose(rt)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, rtt)
}

// TestTranspose_Identity verifies Iᵀ == I.
func TestTranspose_Identity(t *testing.T) {
	id, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	tr, err := matrix.Transpose(id)
	require.NoError(t, err)
	CompareClose(t, id, tr)
}

// TestSubmatrix removes an arbitrary row and column.
func TestSubmatrix(t *testing.T) {
	m3 := MustRows(t, [][]float64{{1, 5, 0}, {-3, 2, 7}, {0, 6, -3}})
	s, err := matrix.Submatrix(m3, 0, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-3, 2}, {0, 6}}, s)

	m4 := MustRows(t, [][]float64{
		{-6, 1, 1, 6},
		{-8, 5, 8, 6},
		{-1, 0, 8, 2},
		{-7, 1, -1, 1},
	})
	s4, err := matrix.Submatrix(hide{m4}, 2, 1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-6, 1, 6}, {-8, 8, 6}, {-7, -1, 1}}, s4)
}

// TestSubmatrix_NotTruncation guards against the "drop the last row/column" reading.
func TestSubmatrix_NotTruncation(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	s, err := matrix.Submatrix(m, 0, 0)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{5, 6}, {8, 9}}, s)
}

// TestSubmatrix_Errors covers out-of-range indices and shapes too small to reduce.
func TestSubmatrix_Errors(t *testing.T) {
	m := MustDense(t, 3, 3)
	_, err := matrix.Submatrix(m, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Submatrix(m, 0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Submatrix(MustDense(t, 1, 4), 0, 0)
	require.ErrorIs(t, err, matrix.ErrUnsupportedSize)

	_, err = matrix.Submatrix(nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDeterminant2x2 checks the closed form on both code paths.
func TestDeterminant2x2(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 5}, {-3, 2}})
	d, err := matrix.Determinant(m)
	require.NoError(t, err)
	assert.Equal(t, 17.0, d)

	d, err = matrix.Determinant(hide{m})
	require.NoError(t, err)
	assert.Equal(t, 17.0, d)
}

// TestDeterminant_Precondition ensures non-2×2 shapes are rejected, not computed.
func TestDeterminant_Precondition(t *testing.T) {
	_, err := matrix.Determinant(MustDense(t, 3, 3))
	require.ErrorIs(t, err, matrix.ErrUnsupportedSize)

	_, err = matrix.Determinant(MustDense(t, 4, 4))
	require.ErrorIs(t, err, matrix.ErrUnsupportedSize)

	_, err = matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulTuple checks the 4×4·tuple transform on both code paths.
func TestMulTuple(t *testing.T) {
	m := MustRows(t, [][]float64{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	})
	in := tuple.Point(1, 2, 3)
	want := tuple.Point(18, 24, 33)

	got, err := matrix.MulTuple(m, in)
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "got %v", got)

	got, err = matrix.MulTuple(hide{m}, in)
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "got %v", got)
}

// TestMulTuple_Identity verifies I × t == t.
func TestMulTuple_Identity(t *testing.T) {
	id, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	in := tuple.New(1, 2, 3, 4)
	got, err := matrix.MulTuple(id, in)
	require.NoError(t, err)
	assert.True(t, got.Equal(in))
}

// TestMulTuple_Precondition ensures only 4×4 matrices transform tuples.
func TestMulTuple_Precondition(t *testing.T) {
	_, err := matrix.MulTuple(MustDense(t, 3, 3), tuple.Point(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrUnsupportedSize)

	_, err = matrix.MulTuple(nil, tuple.Point(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestEqual covers identical, different and differently-shaped matrices.
func TestEqual(t *testing.T) {
	a := MustRows(t, mulA)
	b := MustRows(t, mulA)
	ok, err := matrix.Equal(a, b)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, b.Set(2, 1, 4))
	ok, err = matrix.Equal(a, b)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Set(2, 1, 8+tuple.Epsilon/10))
	ok, err = matrix.Equal(a, hide{b})
	require.NoError(t, err)
	assert.True(t, ok, "differences under epsilon compare equal")

	ok, err = matrix.Equal(a, MustDense(t, 4, 3))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.Equal(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
