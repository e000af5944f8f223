// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hillcipher/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDet_KnownValues checks exact determinants, including the key matrix
// of the classic "FJCRXLUDN" cipher block.
func TestDet_KnownValues(t *testing.T) {
	for _, tc := range []struct {
		name string
		n    int
		data []int64
		det  int64
	}{
		{"1x1", 1, []int64{7}, 7},
		{"2x2", 2, []int64{3, 7, 1, 5}, 8},
		{"2x2 negative", 2, []int64{1, 2, 3, 4}, -2},
		{"hill key block", 3, []int64{5, 17, 20, 9, 23, 3, 2, 11, 13}, 503},
		{"singular arithmetic progression", 3, []int64{0, 3, 6, 1, 4, 7, 2, 5, 8}, 0},
		{"identity 4x4", 4, []int64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := mustDense(t, tc.n, tc.n, tc.data)
			d, err := matrix.Det(m)
			require.NoError(t, err)
			assert.Equal(t, tc.det, d)
			assert.Equal(t, tc.data, rowMajor(t, m), "Det must not mutate its input")
		})
	}
}

// TestDet_ZeroPivotSwap exercises the row-swap path: a zero leading pivot
// with a usable row below must flip the sign, not abort.
func TestDet_ZeroPivotSwap(t *testing.T) {
	m := mustDense(t, 2, 2, []int64{0, 1, 1, 0})
	d, err := matrix.Det(m)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), d)

	// Zero column below the diagonal: singular, determinant 0.
	m = mustDense(t, 2, 2, []int64{0, 1, 0, 2})
	d, err = matrix.Det(m)
	require.NoError(t, err)
	assert.Equal(t, int64(0), d)
}

// TestDet_NonSquare rejects rectangular input.
func TestDet_NonSquare(t *testing.T) {
	m := mustDense(t, 2, 3, make([]int64, 6))
	_, err := matrix.Det(m)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Det(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAdjugate_Identity verifies the defining property
// m × adj(m) == det(m) × I, exactly.
func TestAdjugate_Identity(t *testing.T) {
	m := mustDense(t, 3, 3, []int64{5, 17, 20, 9, 23, 3, 2, 11, 13})

	adj, err := matrix.Adjugate(m)
	require.NoError(t, err)
	det, err := matrix.Det(m)
	require.NoError(t, err)

	prod, err := matrix.Mul(m, adj)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, atErr := prod.At(i, j)
			require.NoError(t, atErr)
			if i == j {
				assert.Equal(t, det, v, "diagonal entry (%d,%d)", i, j)
			} else {
				assert.Equal(t, int64(0), v, "off-diagonal entry (%d,%d)", i, j)
			}
		}
	}
}

// TestAdjugate_TwoByTwo matches the closed form [[d,-b],[-c,a]].
func TestAdjugate_TwoByTwo(t *testing.T) {
	m := mustDense(t, 2, 2, []int64{1, 2, 3, 4})

	adj, err := matrix.Adjugate(m)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, -2, -3, 1}, rowMajor(t, adj))
}

// TestAdjugate_OneByOne is [[1]] by convention.
func TestAdjugate_OneByOne(t *testing.T) {
	m := mustDense(t, 1, 1, []int64{9})

	adj, err := matrix.Adjugate(m)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, rowMajor(t, adj))
}

// TestAdjugate_NonSquare rejects rectangular input.
func TestAdjugate_NonSquare(t *testing.T) {
	m := mustDense(t, 2, 3, make([]int64, 6))
	_, err := matrix.Adjugate(m)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// benchmarkDet measures Bareiss elimination on an n×n matrix with
// predictable non-singular content.
func benchmarkDet(b *testing.B, n int) {
	data := make([]int64, n*n)
	for i := range data {
		data[i] = int64((i*7+3)%11 + 1)
	}
	for i := 0; i < n; i++ {
		data[i*n+i] += int64(n * 13) // diagonal dominance keeps it non-singular
	}
	m, err := matrix.NewDenseFromSlice(n, n, data)
	if err != nil {
		b.Fatalf("NewDenseFromSlice failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = matrix.Det(m); err != nil {
			b.Fatalf("Det failed: %v", err)
		}
	}
}

// Dimensions stay small: Bareiss intermediates are minor determinants, and
// int64 headroom runs out quickly past 8×8 for non-trivial entries.
func BenchmarkDet4(b *testing.B) { benchmarkDet(b, 4) }
func BenchmarkDet8(b *testing.B) { benchmarkDet(b, 8) }
