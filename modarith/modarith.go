package modarith

import "errors"

// ErrNoInverse is returned when a has no multiplicative inverse modulo n,
// i.e. gcd(a, n) != 1.
var ErrNoInverse = errors.New("modarith: no modular multiplicative inverse")

// EuclidMod returns a mod n following the Euclidean definition: the result
// always lies in [0, n), regardless of the sign of a.
// Panics if n <= 0; a non-positive modulus is a programmer error here,
// never a user input.
// Complexity: O(1).
func EuclidMod(a, n int64) int64 {
	if n <= 0 {
		panic("modarith: EuclidMod requires a positive modulus")
	}
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}

// GCD returns the greatest common divisor of a and b, always non-negative.
// GCD(0, 0) == 0 by convention.
// Complexity: O(log min(|a|,|b|)).
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// ExtendedGCD returns (g, x, y) such that a*x + b*y == g == gcd(a, b).
// The returned g carries the sign convention of the iterative algorithm:
// it is non-negative for non-negative inputs.
// Complexity: O(log min(|a|,|b|)).
func ExtendedGCD(a, b int64) (g, x, y int64) {
	// Iterative extended Euclid: maintain coefficients alongside remainders.
	oldR, r := a, b
	oldX, curX := int64(1), int64(0)
	oldY, curY := int64(0), int64(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldX, curX = curX, oldX-q*curX
		oldY, curY = curY, oldY-q*curY
	}

	return oldR, oldX, oldY
}

// ModInverse returns the unique m in [0, n) with a*m ≡ 1 (mod n).
// Returns ErrNoInverse when gcd(a, n) != 1 (no such m exists).
// Panics if n <= 0 (programmer error, as in EuclidMod).
// Complexity: O(log n).
func ModInverse(a, n int64) (int64, error) {
	// Reduce first so negative a cannot skew the Bézout coefficient sign.
	g, x, _ := ExtendedGCD(EuclidMod(a, n), n)
	if g != 1 {
		return 0, ErrNoInverse
	}

	return EuclidMod(x, n), nil
}

// SquareRoot returns the integer square root of n and whether n is a
// perfect square. By convention 0 and 1 are perfect squares (roots 0, 1).
// Negative n is never square.
// Complexity: O(log n) via Newton iteration.
func SquareRoot(n int) (root int, perfect bool) {
	if n < 0 {
		return 0, false
	}
	if n < 2 {
		return n, true
	}
	// Newton's method on integers converges from any upper estimate.
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}

	return x, x*x == n
}

// IsPerfectSquare reports whether n is a perfect square (0 and 1 included).
func IsPerfectSquare(n int) bool {
	_, ok := SquareRoot(n)

	return ok
}
