package hill

import (
	"fmt"

	"github.com/katalvlaran/hillcipher/alphabet"
	"github.com/katalvlaran/hillcipher/modarith"
)

// keyDimension returns the block dimension d = √len(key), or
// ErrKeyNotSquare when the key length is not a perfect square.
// 0 and 1 count as square; a 0-length key is rejected later by the matrix
// shape validation, not here.
func keyDimension(key string) (int, error) {
	n := len([]rune(key))
	d, perfect := modarith.SquareRoot(n)
	if !perfect {
		return 0, fmt.Errorf("%w: got length %d", ErrKeyNotSquare, n)
	}

	return d, nil
}

// validateInputs runs the structural checks, eagerly and in a fixed order:
// key length square, fill letter (when supplied) inside the alphabet, then
// every key symbol and every source symbol inside the alphabet. Each
// failure surfaces the violated rule's sentinel before any matrix work.
func validateInputs(key, source string, fill rune, ab *alphabet.Alphabet) (int, error) {
	dim, err := keyDimension(key)
	if err != nil {
		return 0, err
	}
	if fill != 0 {
		if _, err = ab.IndexOf(fill); err != nil {
			return 0, fmt.Errorf("fill letter: %w", err)
		}
	}
	for _, r := range key {
		if _, err = ab.IndexOf(r); err != nil {
			return 0, fmt.Errorf("key: %w", err)
		}
	}
	for _, r := range source {
		if _, err = ab.IndexOf(r); err != nil {
			return 0, fmt.Errorf("source text: %w", err)
		}
	}

	return dim, nil
}

// validateKeyUsable enforces the number-theoretic half of key validity:
// det != 0 and gcd(det, N) == 1, i.e. det has a modular multiplicative
// inverse mod the alphabet size. Both cipher and decipher reject keys
// failing either condition.
func validateKeyUsable(det int64, alphaLen int) error {
	if det == 0 {
		return fmt.Errorf("%w: determinant is 0", ErrKeyUnusable)
	}
	if _, err := modarith.ModInverse(det, int64(alphaLen)); err != nil {
		return fmt.Errorf("%w: determinant %d mod %d", ErrKeyUnusable, det, alphaLen)
	}

	return nil
}
