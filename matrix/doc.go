// SPDX-License-Identifier: MIT

// Package matrix provides the exact integer linear-algebra kernels the
// Hill cipher needs: a row-major Dense matrix over int64 with
// multiplication, transposition, determinant (Bareiss fraction-free
// elimination), adjugate and entrywise modular scaling.
//
// Everything is exact: no floating point is involved anywhere, so the
// cipher's modular arithmetic can never be corrupted by rounding.
// All user-triggered failures are reported through the package sentinels
// via errors.Is; public entry points never panic.
//
// The package deliberately exposes a small general-purpose surface:
// Transpose and NewDenseFromSlice are part of the public kernel set even
// though the cipher codec lays out its columns directly, so callers can
// build and reshape matrices without going through text.
package matrix
