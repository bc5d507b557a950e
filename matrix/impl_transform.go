// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const opChain = "Chain"

// transform4 builds a 4×4 Dense from 16 row-major values.
func transform4(v [16]float64) *Dense {
	m := newDenseUnchecked(4, 4)
	copy(m.data, v[:])

	return m
}

// Translation moves points by (x, y, z). Vectors (w = 0) are unaffected.
func Translation(x, y, z float64) *Dense {
	return transform4([16]float64{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	})
}

// Scaling scales points and vectors per axis.
func Scaling(x, y, z float64) *Dense {
	return transform4([16]float64{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	})
}

// Reflection mirrors across the YZ plane (x → -x).
func Reflection() *Dense { return Scaling(-1, 1, 1) }

// RotationX rotates by r radians around the X axis.
func RotationX(r float64) *Dense {
	s, c := math.Sincos(r)
	return transform4([16]float64{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	})
}

// RotationY rotates by r radians around the Y axis.
func RotationY(r float64) *Dense {
	s, c := math.Sincos(r)
	return transform4([16]float64{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	})
}

// RotationZ rotates by r radians around the Z axis.
func RotationZ(r float64) *Dense {
	s, c := math.Sincos(r)
	return transform4([16]float64{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Shearing moves each component in proportion to the other two;
// xy is "x in proportion to y" and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) *Dense {
	return transform4([16]float64{
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	})
}

// Chain composes transforms so the first argument is applied first:
// Chain(A, B, C) = C × B × A. With no arguments it returns the 4×4 identity.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch from the underlying products.
func Chain(ms ...Matrix) (*Dense, error) {
	acc, err := NewIdentity(4)
	if err != nil {
		return nil, matrixErrorf(opChain, err)
	}
	for i, m := range ms {
		if acc, err = Mul(m, acc); err != nil {
			return nil, matrixErrorf(opChain, fmt.Errorf("step %d: %w", i, err))
		}
	}

	return acc, nil
}
