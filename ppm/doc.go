// SPDX-License-Identifier: MIT

// Package ppm serializes a canvas to the plain-text PPM (P3) image format.
//
// Layout of an encoded document:
//
//	P3
//	<width> <height>
//	255
//	<pixel rows>
//
// Each canvas pixel contributes three channel tokens in 0..255. A canvas row
// always starts a new line, and lines are wrapped before they reach
// MaxLineLength characters (70 by default, the limit many PPM readers
// assume). The document text ends with a newline.
//
// Encoding is pure: it reads the canvas and returns an in-memory Document.
// File I/O happens only in Save.
//
//	c, _ := canvas.New(5, 3)
//	c.WritePixel(0, 0, color.New(1.5, 0, 0))
//	doc, err := ppm.Encode(c)
//	if err != nil { ... }
//	err = doc.Save("out.ppm")
package ppm
