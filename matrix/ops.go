// SPDX-License-Identifier: MIT
// Package matrix: multiplication, transpose and modular scaling kernels.
// Loop orders are fixed for determinism; inputs are never mutated and each
// kernel allocates exactly one result matrix.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/hillcipher/modarith"
)

// Operation tags for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScaleMod  = "ScaleMod"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel
// for errors.Is. Callers must pass a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
// Uses the i→k→j loop order over the flat row-major storage, skipping zero
// A[i,k] entries.
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner dimensions).
// Complexity: O(r*n*c) time, O(r*c) space.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	// res.data[i*b.c + j] += a.data[i*a.c + k] * b.data[k*b.c + j]
	var rowA, rowB, rowR int
	for i := 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k := 0; k < a.c; k++ {
			av := a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * b.c
			for j := 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and space.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// data[i*c + j] → res.data[j*r + i]
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res, nil
}

// ScaleMod returns a new matrix whose every entry is (factor*v) mod n,
// with the Euclidean (non-negative) modulus, so all results lie in [0, n).
// Errors: ErrNilMatrix, ErrBadModulus when n <= 0.
// Complexity: O(r*c).
func ScaleMod(m *Dense, factor, n int64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleMod, err)
	}
	if n <= 0 {
		return nil, matrixErrorf(opScaleMod, ErrBadModulus)
	}

	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScaleMod, err)
	}
	for i, v := range m.data {
		res.data[i] = modarith.EuclidMod(factor*v, n)
	}

	return res, nil
}
