package cryptoquote

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Quote is the plaintext of a puzzle, normalized to uppercase.
// It is immutable once created.
type Quote struct {
	value string
}

// NewQuote creates a Quote from raw text. Any input is accepted.
func NewQuote(raw string) *Quote {
	return &Quote{value: strings.ToUpper(raw)}
}

// String returns the normalized text.
func (q *Quote) String() string {
	return q.value
}

// Len returns the number of characters in the normalized text.
func (q *Quote) Len() int {
	return utf8.RuneCountInString(q.value)
}

// Chars returns the characters of the normalized text in order.
// The sequence can be ranged over any number of times and always yields
// the same characters.
func (q *Quote) Chars() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range q.value {
			if !yield(r) {
				return
			}
		}
	}
}
