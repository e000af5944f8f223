// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. All kernels return these sentinels
// (possibly wrapped with fmt.Errorf("ctx: %w", ...)); tests match them via
// errors.Is. No kernel panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadModulus indicates a non-positive modulus passed to ScaleMod.
	ErrBadModulus = errors.New("matrix: modulus must be positive")

	// ErrDataLength indicates backing data whose length does not match the
	// requested rows*cols shape.
	ErrDataLength = errors.New("matrix: data length does not match shape")
)
