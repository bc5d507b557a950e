// SPDX-License-Identifier: MIT

// Package canvas provides a fixed-size rectangular grid of colors, the
// render target of the rayray kernel.
//
// Coordinates are (x, y) with x in [0, Width) and y in [0, Height); y grows
// downwards. Pixels are stored row-major.
//
// A Canvas is not safe for concurrent writers. Callers that render in
// parallel must partition rows themselves or serialize WritePixel.
package canvas

import (
	"fmt"
	"image"

	"github.com/katalvlaran/rayray/color"
)

// Canvas is a width×height grid of colors.
type Canvas struct {
	width, height int
	pixels        []color.Color
}

// New allocates a width×height canvas with every pixel black.
// Returns ErrInvalidDimensions if either side is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d, %d): %w", width, height, ErrInvalidDimensions)
	}

	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]color.Color, width*height),
	}, nil
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// InBounds reports whether (x,y) lies within the canvas.
// Each axis is checked on its own.
// Complexity: O(1).
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// index maps (x,y) to the flat pixel offset. Callers check InBounds first.
func (c *Canvas) index(x, y int) int { return y*c.width + x }

// WritePixel sets (x,y) to col. Writes outside the canvas are ignored, so
// projectiles and samples that leave the frame need no clipping upstream.
func (c *Canvas) WritePixel(x, y int, col color.Color) {
	if !c.InBounds(x, y) {
		return
	}
	c.pixels[c.index(x, y)] = col
}

// PixelAt returns the color at (x,y), or ErrOutOfRange.
func (c *Canvas) PixelAt(x, y int) (color.Color, error) {
	if !c.InBounds(x, y) {
		return color.Color{}, fmt.Errorf("PixelAt(%d, %d) on %dx%d: %w", x, y, c.width, c.height, ErrOutOfRange)
	}

	return c.pixels[c.index(x, y)], nil
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col color.Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// Row returns a copy of row y, left to right.
func (c *Canvas) Row(y int) ([]color.Color, error) {
	if y < 0 || y >= c.height {
		return nil, fmt.Errorf("Row(%d) on %dx%d: %w", y, c.width, c.height, ErrOutOfRange)
	}
	out := make([]color.Color, c.width)
	copy(out, c.pixels[c.index(0, y):c.index(0, y+1)])

	return out, nil
}

// Image returns an opaque 8-bit snapshot of the canvas for viewers and
// image encoders. Later writes to the canvas do not affect it.
// Complexity: O(W×H).
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			img.SetNRGBA(x, y, c.pixels[c.index(x, y)].NRGBA())
		}
	}

	return img
}
