// SPDX-License-Identifier: MIT

package canvas

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("canvas: width and height must be positive")
	// ErrOutOfRange indicates a pixel or row coordinate outside the canvas.
	ErrOutOfRange = errors.New("canvas: coordinate out of range")
)
