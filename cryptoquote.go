// Package cryptoquote builds cryptoquote puzzles with a simple substitution cipher.
//
// A Key is a permutation of the 26 letters A-Z. Encrypting a Quote replaces
// each letter with its counterpart in the key and leaves every other
// character (spaces, punctuation, digits) where it was, so the puzzle keeps
// the shape of the original phrase.
//
// Keys can be supplied by the caller, generated at random, or derived
// deterministically from a Tink keyset (see the tinkquote package).
//
// Example usage:
//
//	key, err := cryptoquote.NewKey("") // random key
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cq, err := cryptoquote.New(cryptoquote.NewQuote("This is a quote."), key)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(cq) // e.g. "GSRH RH Z JFLGV."
package cryptoquote

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Cryptoquote binds a Quote to a Key and holds the ciphertext.
//
// Encryption happens at most once per instance. After it completes the
// instance is read-only and safe to share between goroutines.
type Cryptoquote struct {
	quote *Quote
	key   *Key

	started    atomic.Bool
	ciphertext atomic.Pointer[string]
}

// New binds quote and key and encrypts immediately.
func New(quote *Quote, key *Key) (*Cryptoquote, error) {
	if quote == nil || key == nil {
		return nil, fmt.Errorf("quote and key cannot be nil")
	}
	c := newUnencrypted(quote, key)
	if err := c.Encrypt(); err != nil {
		return nil, err
	}
	return c, nil
}

func newUnencrypted(quote *Quote, key *Key) *Cryptoquote {
	return &Cryptoquote{quote: quote, key: key}
}

// Encrypt substitutes every letter of the quote through the key.
//
// Only the first call does any work. Every later call, including one racing
// the first from another goroutine, returns ErrAlreadyEncrypted and leaves
// the ciphertext untouched.
func (c *Cryptoquote) Encrypt() error {
	if !c.started.CompareAndSwap(false, true) {
		return ErrAlreadyEncrypted
	}

	var b strings.Builder
	b.Grow(len(c.quote.String()))
	for r := range c.quote.Chars() {
		sub, _ := c.key.Substitute(r)
		b.WriteRune(sub)
	}

	text := b.String()
	c.ciphertext.Store(&text)
	return nil
}

// Encrypted reports whether the ciphertext has been produced.
func (c *Cryptoquote) Encrypted() bool {
	return c.ciphertext.Load() != nil
}

// String returns the ciphertext, or "" before encryption.
func (c *Cryptoquote) String() string {
	if p := c.ciphertext.Load(); p != nil {
		return *p
	}
	return ""
}

// Quote returns the plaintext the puzzle was built from.
func (c *Cryptoquote) Quote() *Quote {
	return c.quote
}

// Key returns the key used for substitution.
func (c *Cryptoquote) Key() *Key {
	return c.key
}
