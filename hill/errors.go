package hill

import "errors"

var (
	// ErrKeyNotSquare indicates a key whose length is not a perfect square
	// (0 and 1 count as square).
	ErrKeyNotSquare = errors.New("hill: the key must be square in length")

	// ErrFillLetterRequired indicates the source text needs padding but no
	// fill letter was supplied.
	ErrFillLetterRequired = errors.New("hill: padding required but no fill letter supplied")

	// ErrKeyUnusable indicates the key's determinant is zero or shares a
	// factor with the alphabet size, so no modular inverse exists.
	ErrKeyUnusable = errors.New("hill: key determinant is 0 or has common factors with the alphabet size")

	// ErrKeyNotInvertible indicates the decipher key matrix has no inverse
	// (zero determinant).
	ErrKeyNotInvertible = errors.New("hill: key has no square-compatible inverse")

	// ErrMalformedCiphertext indicates a ciphertext whose length is not a
	// multiple of the key's block dimension.
	ErrMalformedCiphertext = errors.New("hill: ciphertext length is not a multiple of the key dimension")

	// ErrShapeMismatch indicates text whose length disagrees with the
	// requested matrix shape; reaching it means a bug in the processor,
	// since padding and the ciphertext check run first.
	ErrShapeMismatch = errors.New("hill: text length does not fit the matrix shape")
)
