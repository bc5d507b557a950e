// SPDX-License-Identifier: MIT

// Package tuple implements homogeneous 4-component tuples, the arithmetic
// primitive of the rayray kernel.
//
// A Tuple with W == 1 is a point, a Tuple with W == 0 is a vector:
//
//	p := tuple.Point(4, -4, 3)   // W = 1
//	v := tuple.Vector(4, -4, 3)  // W = 0
//	q := p.Add(v)                // point + vector = point
//
// Tuples are plain values. Every operation returns a fresh Tuple, except
// NormalizeInPlace which rewrites its receiver.
//
// Equality is approximate (Epsilon per component) because tuples are the
// output of floating-point transforms.
//
// Arithmetic does not police W: point + point yields W == 2, which is neither
// a point nor a vector. Avoiding that is the caller's job.
package tuple
