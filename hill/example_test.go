package hill_test

import (
	"fmt"

	"github.com/katalvlaran/hillcipher/hill"
)

// ExampleCipher encrypts a six-letter source with a 3×3 key over the
// default alphabet. The source length is already a multiple of the block
// dimension, so the fill letter stays unused.
func ExampleCipher() {
	report, err := hill.Cipher("FJCRXLUDN", "CODIGO", hill.WithFillLetter('H'))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("result=%s filled=%v\n", report.ResultText, report.Filled)
	// Output:
	// result=WLPGSE filled=false
}

// ExampleDecipher recovers the plaintext from the ciphertext produced by
// ExampleCipher, using the same key.
func ExampleDecipher() {
	report, err := hill.Decipher("FJCRXLUDN", "WLPGSE")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(report.ResultText)
	// Output:
	// CODIGO
}

// ExampleCipher_customAlphabet uses a 36-symbol alphabet with spaces and
// punctuation; the 11-symbol source is padded with 'H' to fill the last
// 4-symbol block.
func ExampleCipher_customAlphabet() {
	const symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ @$^&*/?.-"
	report, err := hill.Cipher("AFJCRXLUDNLZ@$^?", "TEST CODIGO",
		hill.WithFillLetter('H'), hill.WithAlphabet(symbols))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("result=%s filled=%v\n", report.ResultText, report.Filled)
	// Output:
	// result=XR$HNK^BJQ@? filled=true
}
