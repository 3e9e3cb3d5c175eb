package cryptoquote

// StandardAlphabet is the plaintext alphabet. A Key is a permutation of it.
const StandardAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// AlphabetSize is the number of letters in StandardAlphabet.
const AlphabetSize = len(StandardAlphabet)

// IsCipherLetter reports whether r is substituted by a Key.
// Only the uppercase ASCII letters A-Z qualify; everything else passes through.
func IsCipherLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// LetterIndex returns the position of r in StandardAlphabet, or -1 if r is
// not a cipher letter.
func LetterIndex(r rune) int {
	if !IsCipherLetter(r) {
		return -1
	}
	return int(r - 'A')
}
