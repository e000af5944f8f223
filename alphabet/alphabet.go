package alphabet

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/hillcipher/modarith"
)

// DefaultSymbols is the built-in 26-letter alphabet used when no custom
// alphabet is supplied.
const DefaultSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MinSize is the smallest meaningful alphabet: a single-symbol alphabet
// cannot carry information.
const MinSize = 2

// Alphabet is an ordered, duplicate-free, immutable symbol table.
// The zero value is unusable; construct via Default or Resolve.
type Alphabet struct {
	symbols []rune       // ordered symbol table, uppercase-normalized
	index   map[rune]int // symbol → position, built once at construction
	custom  bool         // true when user-supplied rather than the default
}

// Default returns the built-in A–Z alphabet.
func Default() *Alphabet {
	a, _ := build(DefaultSymbols, false) // the constant is known duplicate-free

	return a
}

// Resolve returns the alphabet to use for one cipher or decipher run.
// An empty custom string selects the default alphabet. A non-empty one is
// uppercase-normalized and validated: it must hold at least MinSize
// symbols, contain no duplicate symbol at any position, and be a perfect
// square in length.
func Resolve(custom string) (*Alphabet, error) {
	if custom == "" {
		return Default(), nil
	}

	return build(strings.ToUpper(custom), true)
}

// build constructs the table and index, enforcing the Resolve invariants.
func build(symbols string, custom bool) (*Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) < MinSize {
		return nil, fmt.Errorf("%w: got %d symbols", ErrTooShort, len(runes))
	}
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, seen := index[r]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		index[r] = i
	}
	if custom && !modarith.IsPerfectSquare(len(runes)) {
		return nil, fmt.Errorf("%w: got length %d", ErrNotSquareLength, len(runes))
	}

	return &Alphabet{symbols: runes, index: index, custom: custom}, nil
}

// Len returns the number of symbols N.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Custom reports whether the alphabet was user-supplied.
func (a *Alphabet) Custom() bool {
	return a.custom
}

// IndexOf returns the position of r in the alphabet. The lookup is
// case-insensitive. Returns ErrSymbolNotFound (wrapped with the offending
// symbol) when r is absent.
func (a *Alphabet) IndexOf(r rune) (int, error) {
	i, ok := a.index[unicode.ToUpper(r)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrSymbolNotFound, r)
	}

	return i, nil
}

// Contains reports whether r belongs to the alphabet (case-insensitive).
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[unicode.ToUpper(r)]

	return ok
}

// SymbolAt maps an arbitrary integer to a symbol by Euclidean-mod
// reduction into [0, N). Negative values are valid inputs and still land
// inside the table, so SymbolAt is total.
func (a *Alphabet) SymbolAt(v int64) rune {
	return a.symbols[modarith.EuclidMod(v, int64(len(a.symbols)))]
}

// String returns the alphabet's symbols in order.
func (a *Alphabet) String() string {
	return string(a.symbols)
}
