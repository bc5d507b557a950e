// SPDX-License-Identifier: MIT

// Package matrix provides the dense, dimension-checked matrix algebra used by
// the rayray kernel for geometric transforms.
//
// 🚀 What is in the box?
//
//	• Dense: row-major float64 storage behind the small Matrix interface
//	• Constructors: NewZeros, NewIdentity, NewFromRows
//	• Kernels: Transpose, Submatrix, Determinant (2×2), Mul, MulTuple
//	• Transforms: Translation, Scaling, Reflection, RotationX/Y/Z, Shearing, Chain
//	• Interop: ToMat4 / FromMat4 with golang.org/x/image/math/f64
//
// ✨ Contract:
//
//   - Dimensions are fixed at construction and never change.
//   - Every kernel validates shapes BEFORE touching data; a mismatch is a
//     returned error, never a silently wrong result and never a panic.
//   - Errors are package sentinels (ErrDimensionMismatch, ErrUnsupportedSize, …)
//     wrapped with an operation tag; match them with errors.Is.
//   - Determinant is closed-form and defined for 2×2 only. Cofactor expansion
//     and inversion are out of scope.
//
// ⚙️ Usage:
//
//	a := matrix.MustFromRows([][]float64{
//		{1, 2, 3, 4},
//		{5, 6, 7, 8},
//		{9, 8, 7, 6},
//		{5, 4, 3, 2},
//	})
//	id, _ := matrix.NewIdentity(4)
//	p, err := matrix.Mul(a, id) // p equals a
//
//	t := matrix.Translation(5, -3, 2)
//	q, err := matrix.MulTuple(t, tuple.Point(-3, 4, 5)) // Point(2, 1, 7)
//
// Complexity: Mul is O(r·n·c); Transpose and Submatrix are O(r·c).
package matrix
