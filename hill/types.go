// Package hill: options and result types for the cipher processor.
package hill

// Option configures a cipher or decipher run via functional arguments.
type Option func(*Options)

// Options holds the optional inputs of a run.
//
// Fields:
//   - FillLetter — symbol used to pad the source text when its length is
//     not a multiple of the key dimension. Required by Cipher when padding
//     is needed; informational for Decipher (membership-checked only).
//     Zero means "none supplied".
//   - Alphabet   — custom alphabet string; empty selects the default A–Z.
type Options struct {
	FillLetter rune
	Alphabet   string
}

// DefaultOptions returns Options with no fill letter and the default
// alphabet.
func DefaultOptions() Options {
	return Options{}
}

// WithFillLetter sets the padding symbol.
func WithFillLetter(r rune) Option {
	return func(o *Options) { o.FillLetter = r }
}

// WithAlphabet sets a custom alphabet; the empty string keeps the default.
func WithAlphabet(symbols string) Option {
	return func(o *Options) { o.Alphabet = symbols }
}

// Report is the immutable result of one cipher or decipher run.
// It echoes the inputs alongside the produced text so the presentation
// layer can render the whole operation without extra state.
type Report struct {
	// UsedKey is the key exactly as supplied.
	UsedKey string
	// SourceText is the source exactly as supplied (before padding).
	SourceText string
	// FillLetter is the supplied padding symbol, 0 when none.
	FillLetter rune
	// ResultText is the rendered cipher- or plaintext.
	ResultText string
	// Filled reports whether the source was padded before encryption;
	// always false for decipher runs.
	Filled bool
	// Alphabet is the custom alphabet as supplied, empty for the default.
	Alphabet string
}
