// Package hillcipher is a small, exact-arithmetic toolkit for the Hill
// cipher: polygraphic substitution over an arbitrary square-length
// alphabet, with an invertible key matrix mod N.
//
// 🚀 What is hillcipher?
//
//	A pure-Go library plus a tiny CLI that brings together:
//		• alphabet/ — ordered symbol tables ("namespaces"), default A–Z or custom
//		• modarith/ — Euclidean modulus, gcd, modular inverses, integer square roots
//		• matrix/   — exact int64 dense kernels: Mul, Transpose, Det (Bareiss), Adjugate
//		• hill/     — the Cipher/Decipher processor producing immutable Reports
//		• cmd/hillcipher — cipher/decipher subcommands with colorized reports
//
// ✨ Why choose hillcipher?
//
//   - Exact by construction – integer adjugates instead of float inverse + round,
//     so round-tripping never corrupts a single symbol
//   - Hard errors, no surprises – every out-of-alphabet symbol, non-square key
//     or non-invertible matrix is a sentinel error, never a panic
//   - Pure functions – no global state; safe to call concurrently
//
// Quick taste:
//
//	report, err := hill.Cipher("FJCRXLUDN", "CODIGO", hill.WithFillLetter('H'))
//	// report.ResultText == "WLPGSE"
//
// See the hill package documentation for the full pipeline.
package hillcipher
