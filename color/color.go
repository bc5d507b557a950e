// SPDX-License-Identifier: MIT

// Package color defines the floating-point RGB color used by canvases.
//
// Channels nominally live in [0, 1] but the type never clamps: lighting math
// may overshoot and the excess is only cut off when a color is quantized
// for output (see Bytes).
package color

import (
	"fmt"
	stdcolor "image/color"
	"math"
)

// Epsilon is the per-channel tolerance used by Equal. It is looser than
// tuple.Epsilon because colors sit downstream of more floating-point work.
const Epsilon = 1e-3

// MaxChannel is the largest quantized channel value (8-bit output).
const MaxChannel = 255

// Color is an RGB triple of float64 channels.
type Color struct {
	R, G, B float64
}

// Named colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// New creates a color from its channels.
func New(r, g, b float64) Color { return Color{R: r, G: g, B: b} }

// FromArray creates a color from {r, g, b}.
func FromArray(a [3]float64) Color { return Color{R: a[0], G: a[1], B: a[2]} }

// Add returns c + o per channel.
func (c Color) Add(o Color) Color { return Color{c.R + o.R, c.G + o.G, c.B + o.B} }

// Sub returns c - o per channel.
func (c Color) Sub(o Color) Color { return Color{c.R - o.R, c.G - o.G, c.B - o.B} }

// Scale multiplies every channel by s.
func (c Color) Scale(s float64) Color { return Color{c.R * s, c.G * s, c.B * s} }

// Mul is the Hadamard (channel-wise) product, used to tint one color by another.
func (c Color) Mul(o Color) Color { return Color{c.R * o.R, c.G * o.G, c.B * o.B} }

// Equal reports whether every channel differs by less than Epsilon.
func (c Color) Equal(o Color) bool {
	return math.Abs(c.R-o.R) < Epsilon &&
		math.Abs(c.G-o.G) < Epsilon &&
		math.Abs(c.B-o.B) < Epsilon
}

// Clamp limits every channel to [0, 1].
func (c Color) Clamp() Color { return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)} }

// Bytes quantizes the color to 8-bit channels: round(clamp(ch, 0, 1) * 255).
func (c Color) Bytes() (r, g, b uint8) {
	return quantize(c.R), quantize(c.G), quantize(c.B)
}

// NRGBA converts to an opaque image/color.NRGBA using the same quantization as Bytes.
func (c Color) NRGBA() stdcolor.NRGBA {
	r, g, b := c.Bytes()
	return stdcolor.NRGBA{R: r, G: g, B: b, A: MaxChannel}
}

// String implements fmt.Stringer.
func (c Color) String() string { return fmt.Sprintf("Color(%g, %g, %g)", c.R, c.G, c.B) }

// clamp01 maps NaN to 0 so quantization never sees a non-finite value.
func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func quantize(v float64) uint8 { return uint8(math.Round(clamp01(v) * MaxChannel)) }
