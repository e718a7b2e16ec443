// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every failure is returned (never panicked) and wrapped with the
// operation tag via %w; callers match with errors.Is.
//
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// with matrixErrorf(op, err); accessors wrap with denseErrorf(method, r, c, err).

var (
	// ErrShape is returned when operand shapes are incompatible with the
	// requested operation: non-rectangular FromRows input, mismatched shapes for
	// element-wise ops, or l.Cols != r.Rows for Dot.
	ErrShape = errors.New("matrix: incompatible shape")

	// ErrOutOfRange indicates that a row or column index is outside [0,H)×[0,W).
	// At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrInvalidSeed is returned by NewRandom for seed == 0; use NewZeros for a
	// zero-initialized matrix.
	ErrInvalidSeed = errors.New("matrix: random seed must be non-zero")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEngine wraps a failure reported by a compute Engine.
	ErrEngine = errors.New("matrix: engine failure")
)

// Aliases kept for callers that use the linear-algebra naming.

// ErrDimensionMismatch names the same condition as ErrShape.
var ErrDimensionMismatch = ErrShape

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange
