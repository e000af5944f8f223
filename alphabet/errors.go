package alphabet

import "errors"

var (
	// ErrDuplicateSymbol indicates a custom alphabet repeats a symbol,
	// adjacent or not.
	ErrDuplicateSymbol = errors.New("alphabet: duplicated symbol in custom alphabet")

	// ErrNotSquareLength indicates a custom alphabet whose length is not a
	// perfect square.
	ErrNotSquareLength = errors.New("alphabet: custom alphabet must be square in length")

	// ErrTooShort indicates an alphabet with fewer than MinSize symbols.
	ErrTooShort = errors.New("alphabet: alphabet must hold at least two symbols")

	// ErrSymbolNotFound indicates a symbol outside the alphabet was used in
	// a key, source text or fill letter.
	ErrSymbolNotFound = errors.New("alphabet: symbol is not present in the alphabet")
)
