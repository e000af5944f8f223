// SPDX-License-Identifier: MIT
// Package matrix: exact determinant via Bareiss fraction-free elimination.
// Every division in the Bareiss recurrence is exact over the integers, so
// no rounding can occur. Row swaps flip the sign; a fully zero pivot
// column means the determinant is zero.

package matrix

import "fmt"

const opDet = "Det"

// Det returns the exact determinant of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³) time, O(n²) space for the working copy.
func Det(m *Dense) (int64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	n := m.r
	if n == 1 {
		return m.data[0], nil
	}

	// Work on a copy; Det must not mutate its input.
	a := m.Clone().data
	at := func(i, j int) int64 { return a[i*n+j] }
	set := func(i, j int, v int64) { a[i*n+j] = v }

	sign := int64(1)
	prev := int64(1) // previous pivot, divisor of the Bareiss recurrence
	for k := 0; k < n-1; k++ {
		// Pivot: swap up a row with a non-zero entry in column k.
		if at(k, k) == 0 {
			swap := -1
			for i := k + 1; i < n; i++ {
				if at(i, k) != 0 {
					swap = i
					break
				}
			}
			if swap < 0 {
				return 0, nil // zero column below the diagonal: singular
			}
			for j := 0; j < n; j++ {
				a[k*n+j], a[swap*n+j] = a[swap*n+j], a[k*n+j]
			}
			sign = -sign
		}

		pivot := at(k, k)
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				// Exact integer division: prev divides the product by the
				// Bareiss identity.
				set(i, j, (at(i, j)*pivot-at(i, k)*at(k, j))/prev)
			}
			set(i, k, 0)
		}
		prev = pivot
	}

	return sign * at(n-1, n-1), nil
}

// Adjugate returns the classical adjoint adj(m): the transpose of the
// cofactor matrix, satisfying m × adj(m) == det(m) × I exactly.
// For a 1×1 matrix the adjugate is [[1]] by convention.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n⁵) time via minor determinants; n here is a key block
// dimension, so this stays tiny in practice.
func Adjugate(m *Dense) (*Dense, error) {
	const opAdjugate = "Adjugate"
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	n := m.r
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	if n == 1 {
		res.data[0] = 1

		return res, nil
	}

	minor, err := NewDense(n-1, n-1)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// adj[i][j] is the (j,i) cofactor: delete row j and column i.
			idx := 0
			for r := 0; r < n; r++ {
				if r == j {
					continue
				}
				for c := 0; c < n; c++ {
					if c == i {
						continue
					}
					minor.data[idx] = m.data[r*n+c]
					idx++
				}
			}
			d, detErr := Det(minor)
			if detErr != nil {
				return nil, matrixErrorf(opAdjugate, fmt.Errorf("minor(%d,%d): %w", j, i, detErr))
			}
			if (i+j)%2 != 0 {
				d = -d
			}
			res.data[i*n+j] = d
		}
	}

	return res, nil
}
