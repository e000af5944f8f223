package hill

import "strings"

// padText conditions the source text for encryption: if its length is
// already a multiple of dim it is returned uppercased and unpadded;
// otherwise the fill letter is appended up to the next multiple of dim.
// Returns ErrFillLetterRequired when padding is needed but fill is unset.
// Decipher never calls this.
func padText(text string, fill rune, dim int) (string, bool, error) {
	runes := []rune(text)
	rem := len(runes) % dim
	if rem == 0 {
		return strings.ToUpper(text), false, nil
	}
	if fill == 0 {
		return "", false, ErrFillLetterRequired
	}

	padded := text + strings.Repeat(string(fill), dim-rem)

	return strings.ToUpper(padded), true, nil
}
