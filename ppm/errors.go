// SPDX-License-Identifier: MIT

package ppm

import (
	"errors"
	"fmt"
)

var (
	// ErrNilCanvas indicates Encode was given a nil canvas.
	ErrNilCanvas = errors.New("ppm: nil canvas")
	// ErrWrite indicates the document could not be written to its destination.
	ErrWrite = errors.New("ppm: write failed")
)

// Operation tags used when wrapping errors.
const (
	opEncode  = "Encode"
	opWriteTo = "WriteTo"
	opSave    = "Save"
)

// ppmErrorf wraps err with an operation tag.
func ppmErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
