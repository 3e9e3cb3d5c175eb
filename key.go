package cryptoquote

import (
	"fmt"
	"strings"

	"github.com/vdparikh/cryptoquote/subtle"
)

// Key is a permutation of StandardAlphabet. Letter i of StandardAlphabet is
// replaced by letter i of the key. The mapping is built once and never changes.
type Key struct {
	value   string
	mapping [AlphabetSize]rune
}

// defaultSource backs NewKey when no key is supplied.
var defaultSource subtle.Source = subtle.CryptoSource{}

// NewKey creates a Key from value.
//
// An empty value generates a uniformly random key. Otherwise value is
// uppercased and must then be 26 distinct letters A-Z; anything else returns
// an *ImproperKeyError.
//
// Example:
//
//	key, err := cryptoquote.NewKey("zyxwvutsrqponmlkjihgfedcba")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(key) // ZYXWVUTSRQPONMLKJIHGFEDCBA
func NewKey(value string) (*Key, error) {
	return NewKeyWithSource(value, defaultSource)
}

// NewKeyWithSource is NewKey with an explicit random source for generated
// keys. Pass a seeded *math/rand.Rand to make generation reproducible.
func NewKeyWithSource(value string, src subtle.Source) (*Key, error) {
	if value == "" {
		if src == nil {
			return nil, fmt.Errorf("random source cannot be nil")
		}
		value = subtle.Permute(StandardAlphabet, src)
	} else {
		value = strings.ToUpper(value)
	}

	if err := validateKey(value); err != nil {
		return nil, err
	}

	k := &Key{value: value}
	for i, r := range value {
		k.mapping[i] = r
	}
	return k, nil
}

// String returns the key as 26 uppercase letters.
func (k *Key) String() string {
	return k.value
}

// Substitute returns the cipher letter for r. The second result is false,
// and r is returned unchanged, when r is not a letter A-Z.
func (k *Key) Substitute(r rune) (rune, bool) {
	i := LetterIndex(r)
	if i < 0 {
		return r, false
	}
	return k.mapping[i], true
}

// Mapping returns the plaintext-to-cipher letter table. The map is a copy;
// changing it does not affect the key.
func (k *Key) Mapping() map[rune]rune {
	m := make(map[rune]rune, AlphabetSize)
	for i, r := range StandardAlphabet {
		m[r] = k.mapping[i]
	}
	return m
}
