// SPDX-License-Identifier: MIT

package tuple

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Epsilon is the per-component tolerance used by Equal and ApproxEqual.
const Epsilon = 1e-5

// W markers for the two tuple kinds produced by the constructors.
const (
	WPoint  = 1.0
	WVector = 0.0
)

// Tuple is a homogeneous 4-vector. W == 1 marks a point, W == 0 a vector.
type Tuple struct {
	X, Y, Z, W float64
}

// New builds a tuple from raw components.
func New(x, y, z, w float64) Tuple { return Tuple{X: x, Y: y, Z: z, W: w} }

// Point builds a point (W = 1).
func Point(x, y, z float64) Tuple { return Tuple{X: x, Y: y, Z: z, W: WPoint} }

// Vector builds a vector (W = 0).
func Vector(x, y, z float64) Tuple { return Tuple{X: x, Y: y, Z: z, W: WVector} }

// FromArray builds a tuple from {x, y, z, w}.
func FromArray(a [4]float64) Tuple { return Tuple{X: a[0], Y: a[1], Z: a[2], W: a[3]} }

// FromVec4 converts an x/image f64.Vec4 (x, y, z, w order).
func FromVec4(v f64.Vec4) Tuple { return Tuple{X: v[0], Y: v[1], Z: v[2], W: v[3]} }

// Array returns the components as {x, y, z, w}.
func (t Tuple) Array() [4]float64 { return [4]float64{t.X, t.Y, t.Z, t.W} }

// Vec4 returns the components as an x/image f64.Vec4.
func (t Tuple) Vec4() f64.Vec4 { return f64.Vec4{t.X, t.Y, t.Z, t.W} }

// IsPoint reports whether W == 1.
func (t Tuple) IsPoint() bool { return t.W == WPoint }

// IsVector reports whether W == 0.
func (t Tuple) IsVector() bool { return t.W == WVector }

// Add returns t + b, component-wise.
func (t Tuple) Add(b Tuple) Tuple {
	return Tuple{t.X + b.X, t.Y + b.Y, t.Z + b.Z, t.W + b.W}
}

// Sub returns t - b, component-wise. Point - point yields a vector.
func (t Tuple) Sub(b Tuple) Tuple {
	return Tuple{t.X - b.X, t.Y - b.Y, t.Z - b.Z, t.W - b.W}
}

// Negate flips the sign of all four components.
func (t Tuple) Negate() Tuple { return Tuple{-t.X, -t.Y, -t.Z, -t.W} }

// Scale multiplies all four components by s.
func (t Tuple) Scale(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

// Div divides all four components by s. Division by zero follows IEEE-754.
func (t Tuple) Div(s float64) Tuple {
	return Tuple{t.X / s, t.Y / s, t.Z / s, t.W / s}
}

// Magnitude is the Euclidean norm over X, Y, Z and W.
func (t Tuple) Magnitude() float64 { return math.Sqrt(t.Dot(t)) }

// Normalize divides every component by the magnitude.
//
// The zero tuple is not guarded: 0/0 leaves NaN in every component.
// Callers must not normalize a zero-length tuple.
func (t Tuple) Normalize() Tuple { return t.Div(t.Magnitude()) }

// NormalizeInPlace rewrites t as its normalized form. Same zero-tuple
// caveat as Normalize.
func (t *Tuple) NormalizeInPlace() { *t = t.Normalize() }

// Dot is the sum of the element-wise products of all four components.
func (t Tuple) Dot(b Tuple) float64 {
	return t.X*b.X + t.Y*b.Y + t.Z*b.Z + t.W*b.W
}

// Cross is the 3-component cross product; W is ignored and the result is a vector.
func (t Tuple) Cross(b Tuple) Tuple {
	return Vector(
		t.Y*b.Z-t.Z*b.Y,
		t.Z*b.X-t.X*b.Z,
		t.X*b.Y-t.Y*b.X,
	)
}

// Equal reports whether every component of t and b differs by less than Epsilon.
func (t Tuple) Equal(b Tuple) bool {
	return ApproxEqual(t.X, b.X) &&
		ApproxEqual(t.Y, b.Y) &&
		ApproxEqual(t.Z, b.Z) &&
		ApproxEqual(t.W, b.W)
}

// String implements fmt.Stringer.
func (t Tuple) String() string {
	return fmt.Sprintf("Tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}

// ApproxEqual reports |a-b| < Epsilon.
func ApproxEqual(a, b float64) bool { return math.Abs(a-b) < Epsilon }
