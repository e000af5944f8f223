// Package hill implements the Hill cipher: a polygraphic substitution
// cipher that encrypts text by multiplying blocks of alphabet indices by
// an invertible square key matrix modulo the alphabet size.
//
// Hill — polygraphic matrix cipher
//
// Description:
//
//	A key of length d² defines a d×d matrix K of alphabet indices. The
//	source text is cut into blocks of d symbols; each block becomes a
//	column vector v and encrypts to K·v mod N, where N is the alphabet
//	size. Decryption multiplies by the modular inverse matrix
//	K⁻¹ ≡ m·adj(K) (mod N), with m the modular multiplicative inverse of
//	det(K) mod N. The key is usable only when gcd(det(K), N) = 1.
//
// Pipeline (both directions):
//  1. Resolve the alphabet (default A–Z or a custom square-length one).
//  2. Validate eagerly: key length square, fill letter and every key and
//     source symbol inside the alphabet.
//  3. Cipher only: pad the source with the fill letter up to a multiple
//     of d, recording whether padding happened.
//  4. Build the key matrix (d×d) and the text matrix (d×m) — consecutive
//     symbols fill successive columns.
//  5. Multiply, reduce every cell with the Euclidean modulus into [0, N),
//     and map cells back to symbols.
//  6. Return an immutable Report.
//
// All arithmetic is exact over int64 (matrix package); no floating point
// is involved, so round-tripping Cipher then Decipher with one key and
// alphabet always recovers the (padded) plaintext.
//
// Errors:
//   - ErrKeyNotSquare, ErrFillLetterRequired, ErrKeyUnusable,
//     ErrKeyNotInvertible, ErrMalformedCiphertext, ErrShapeMismatch —
//     see errors.go; alphabet violations surface the alphabet package
//     sentinels. Match with errors.Is.
//
// Complexity: O(d³) for the matrix work plus O(len(source)) for the
// codec, with d = √len(key).
package hill
