// Package modarith provides the small number-theoretic kernel the cipher
// packages share: Euclidean (always non-negative) modulus, greatest common
// divisor, the extended Euclidean algorithm, modular multiplicative
// inverses, and integer square-root / perfect-square tests.
//
// All functions are pure, allocation-free and deterministic. Operands are
// int64; the moduli involved are alphabet sizes, so overflow is not a
// practical concern.
package modarith
