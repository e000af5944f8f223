package hill

import (
	"fmt"

	"github.com/katalvlaran/hillcipher/alphabet"
	"github.com/katalvlaran/hillcipher/matrix"
	"github.com/katalvlaran/hillcipher/modarith"
)

// Cipher encrypts source with the given key.
//
// The alphabet is resolved from the options (default A–Z), all inputs are
// validated eagerly, the source is padded with the fill letter when its
// length is not a multiple of the key dimension, and each block column is
// multiplied by the key matrix mod N.
//
// Errors: alphabet resolution sentinels, ErrKeyNotSquare,
// alphabet.ErrSymbolNotFound (wrapped with the offending input),
// ErrKeyUnusable, ErrFillLetterRequired.
func Cipher(key, source string, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ab, err := alphabet.Resolve(o.Alphabet)
	if err != nil {
		return nil, err
	}
	dim, err := validateInputs(key, source, o.FillLetter, ab)
	if err != nil {
		return nil, err
	}

	keyMtx, det, err := keyMatrix(key, dim, ab)
	if err != nil {
		return nil, err
	}
	if err = validateKeyUsable(det, ab.Len()); err != nil {
		return nil, err
	}

	padded, filled, err := padText(source, o.FillLetter, dim)
	if err != nil {
		return nil, err
	}

	result, err := transform(keyMtx, padded, dim, ab)
	if err != nil {
		return nil, err
	}

	return buildReport(key, source, result, filled, o), nil
}

// Decipher decrypts source with the given key.
//
// The fill letter, when supplied, is only membership-checked; decryption
// never pads. The ciphertext length must already be a multiple of the key
// dimension. Decryption multiplies each ciphertext column by
// m·adj(K) mod N, the modular inverse of the key matrix.
//
// Errors: the structural set of Cipher, plus ErrKeyNotInvertible (zero
// determinant), ErrKeyUnusable (determinant without modular inverse) and
// ErrMalformedCiphertext.
func Decipher(key, source string, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ab, err := alphabet.Resolve(o.Alphabet)
	if err != nil {
		return nil, err
	}
	dim, err := validateInputs(key, source, o.FillLetter, ab)
	if err != nil {
		return nil, err
	}

	keyMtx, det, err := keyMatrix(key, dim, ab)
	if err != nil {
		return nil, err
	}
	if det == 0 {
		return nil, ErrKeyNotInvertible
	}
	inv, err := inverseKeyMatrix(keyMtx, det, ab.Len())
	if err != nil {
		return nil, err
	}

	if len([]rune(source))%dim != 0 {
		return nil, fmt.Errorf("%w: %d symbols against dimension %d",
			ErrMalformedCiphertext, len([]rune(source)), dim)
	}

	result, err := transform(inv, source, dim, ab)
	if err != nil {
		return nil, err
	}

	return buildReport(key, source, result, false, o), nil
}

// keyMatrix builds the d×d key matrix and its exact determinant.
func keyMatrix(key string, dim int, ab *alphabet.Alphabet) (*matrix.Dense, int64, error) {
	m, err := textToMatrix(key, dim, dim, ab)
	if err != nil {
		return nil, 0, err
	}
	det, err := matrix.Det(m)
	if err != nil {
		return nil, 0, err
	}

	return m, det, nil
}

// inverseKeyMatrix derives the decryption matrix m·adj(K) mod N, where m
// is the modular multiplicative inverse of det. Exact integer adjugate
// replaces the float inverse-then-round of naive implementations, so the
// result is correct for any block dimension.
func inverseKeyMatrix(keyMtx *matrix.Dense, det int64, alphaLen int) (*matrix.Dense, error) {
	m, err := modarith.ModInverse(det, int64(alphaLen))
	if err != nil {
		return nil, fmt.Errorf("%w: determinant %d mod %d", ErrKeyUnusable, det, alphaLen)
	}
	adj, err := matrix.Adjugate(keyMtx)
	if err != nil {
		return nil, err
	}

	return matrix.ScaleMod(adj, m, int64(alphaLen))
}

// transform multiplies text blocks by mtx and renders the product back to
// text. An empty text short-circuits to an empty result.
func transform(mtx *matrix.Dense, text string, dim int, ab *alphabet.Alphabet) (string, error) {
	blocks := len([]rune(text)) / dim
	if blocks == 0 {
		return "", nil
	}
	srcMtx, err := textToMatrix(text, dim, blocks, ab)
	if err != nil {
		return "", err
	}
	prod, err := matrix.Mul(mtx, srcMtx)
	if err != nil {
		return "", err
	}

	return matrixToText(prod, ab)
}

// buildReport assembles the immutable result record.
func buildReport(key, source, result string, filled bool, o Options) *Report {
	return &Report{
		UsedKey:    key,
		SourceText: source,
		FillLetter: o.FillLetter,
		ResultText: result,
		Filled:     filled,
		Alphabet:   o.Alphabet,
	}
}
