// SPDX-License-Identifier: MIT

// Package rayray is the math and raster kernel of a ray tracer: homogeneous
// tuples, dense matrices, RGB colors, a pixel canvas and a plain-text PPM
// writer.
//
// 🚀 What is in the box?
//
//	tuple/   4-component points and vectors, dot and cross products
//	matrix/  dense matrices, 4×4 transforms, 2×2 determinant, f64.Mat4 interop
//	color/   float RGB with channel arithmetic and 8-bit quantization
//	canvas/  fixed-size pixel grid with bounds-checked access
//	ppm/     P3 serialization with line wrapping and file output
//
// ✨ Guarantees:
//
//   - No global mutable state; every value is owned by its caller.
//   - Dimension and range problems come back as errors, matched with errors.Is.
//   - Diagnostics are opt-in through a caller-provided *slog.Logger.
//
// Quick example:
//
//	c, _ := canvas.New(5, 3)
//	c.WritePixel(0, 0, color.New(1.5, 0, 0))
//	_ = ppm.Save(c, "out.ppm")
//
// See examples/clock_face.go for transforms, canvas and PPM used together.
package rayray
