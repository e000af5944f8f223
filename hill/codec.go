package hill

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hillcipher/alphabet"
	"github.com/katalvlaran/hillcipher/matrix"
)

// textToMatrix maps text onto a dim×blocks index matrix, where
// blocks = len(text)/dim. Consecutive symbols fill successive columns, so
// every column is one block of dim symbols — symbol i lands at
// (i mod dim, i div dim). Returns ErrShapeMismatch when the text length is
// not exactly dim*blocks.
func textToMatrix(text string, dim, blocks int, ab *alphabet.Alphabet) (*matrix.Dense, error) {
	runes := []rune(text)
	if len(runes) != dim*blocks {
		return nil, fmt.Errorf("%w: %d symbols into %dx%d", ErrShapeMismatch, len(runes), dim, blocks)
	}

	m, err := matrix.NewDense(dim, blocks)
	if err != nil {
		return nil, err
	}
	for i, r := range runes {
		idx, err := ab.IndexOf(r)
		if err != nil {
			return nil, err
		}
		if err = m.Set(i%dim, i/dim, int64(idx)); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// matrixToText renders a dim×blocks result matrix back into text, reading
// column by column (block order) and reducing every cell into [0, N) via
// the alphabet's Euclidean-mod lookup.
func matrixToText(m *matrix.Dense, ab *alphabet.Alphabet) (string, error) {
	var sb strings.Builder
	sb.Grow(m.Rows() * m.Cols())
	for b := 0; b < m.Cols(); b++ {
		for p := 0; p < m.Rows(); p++ {
			v, err := m.At(p, b)
			if err != nil {
				return "", err
			}
			sb.WriteRune(ab.SymbolAt(v))
		}
	}

	return sb.String(), nil
}
