package cryptoquote

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reverseAlphabet = "ZYXWVUTSRQPONMLKJIHGFEDCBA"

func TestCryptoquote_KnownVectors(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
		key       string
		want      string
	}{
		{
			name:      "ReverseAlphabet",
			plaintext: "This is a quote.",
			key:       reverseAlphabet,
			want:      "GSRH RH Z JFLGV.",
		},
		{
			name:      "SwapAB",
			plaintext: "AB",
			key:       "BACDEFGHIJKLMNOPQRSTUVWXYZ",
			want:      "BA",
		},
		{
			name:      "IdentityKey",
			plaintext: "Hello, World!",
			key:       StandardAlphabet,
			want:      "HELLO, WORLD!",
		},
		{
			name:      "LowercaseKey",
			plaintext: "abc xyz",
			key:       "zyxwvutsrqponmlkjihgfedcba",
			want:      "ZYX CBA",
		},
		{
			name:      "EmptyQuote",
			plaintext: "",
			key:       reverseAlphabet,
			want:      "",
		},
		{
			name:      "NoLetters",
			plaintext: "123-45 (6789)!",
			key:       reverseAlphabet,
			want:      "123-45 (6789)!",
		},
		{
			name:      "NonASCIIPassesThrough",
			plaintext: "café ñ",
			key:       reverseAlphabet,
			want:      "XZUÉ Ñ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NewKey(tt.key)
			require.NoError(t, err)

			cq, err := New(NewQuote(tt.plaintext), key)
			require.NoError(t, err)

			assert.True(t, cq.Encrypted())
			assert.Equal(t, tt.want, cq.String())
		})
	}
}

func TestCryptoquote_EncryptOnce(t *testing.T) {
	key, err := NewKey(reverseAlphabet)
	require.NoError(t, err)

	cq, err := New(NewQuote("This is a quote."), key)
	require.NoError(t, err)
	first := cq.String()

	err = cq.Encrypt()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyEncrypted))
	assert.Equal(t, first, cq.String(), "second Encrypt must not touch the ciphertext")
}

func TestCryptoquote_UnencryptedState(t *testing.T) {
	key, err := NewKey(reverseAlphabet)
	require.NoError(t, err)

	cq := newUnencrypted(NewQuote("abc"), key)
	assert.False(t, cq.Encrypted())
	assert.Equal(t, "", cq.String())

	require.NoError(t, cq.Encrypt())
	assert.True(t, cq.Encrypted())
	assert.Equal(t, "ZYX", cq.String())
}

func TestCryptoquote_ConcurrentEncrypt(t *testing.T) {
	key, err := NewKey(reverseAlphabet)
	require.NoError(t, err)
	cq := newUnencrypted(NewQuote("Concurrency is not parallelism."), key)

	const workers = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := cq.Encrypt()
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrAlreadyEncrypted):
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, rejected)
	assert.Equal(t, "XLMXFIIVMXB RH MLG KZIZOOVORHN.", cq.String())
}

func TestCryptoquote_NilArguments(t *testing.T) {
	key, err := NewKey(reverseAlphabet)
	require.NoError(t, err)

	_, err = New(nil, key)
	assert.Error(t, err)
	_, err = New(NewQuote("x"), nil)
	assert.Error(t, err)
}

func TestCryptoquote_Accessors(t *testing.T) {
	key, err := NewKey(reverseAlphabet)
	require.NoError(t, err)
	quote := NewQuote("x")

	cq, err := New(quote, key)
	require.NoError(t, err)
	assert.Same(t, quote, cq.Quote())
	assert.Same(t, key, cq.Key())
}

// TestCryptoquote_Properties checks the format-preserving guarantees over
// many random keys and phrases.
func TestCryptoquote_Properties(t *testing.T) {
	src := rand.New(rand.NewSource(20240601))
	phrases := []string{
		"This is a quote.",
		"The quick brown fox jumps over the lazy dog!",
		"To be, or not to be: that is the question.",
		"  leading and trailing spaces  ",
		"Digits 0123456789 and symbols @#$%^&*()",
		"Tabs\tand\nnewlines",
		"Ünïcödé stays put",
	}

	for i := 0; i < 100; i++ {
		key, err := NewKeyWithSource("", src)
		require.NoError(t, err)
		mapping := key.Mapping()

		for _, phrase := range phrases {
			quote := NewQuote(phrase)
			cq, err := New(quote, key)
			require.NoError(t, err)

			plain := []rune(quote.String())
			cipher := []rune(cq.String())

			// Length preserved.
			require.Len(t, cipher, quote.Len())

			for j, r := range plain {
				if IsCipherLetter(r) {
					require.Equal(t, mapping[r], cipher[j], "letter %q at %d", r, j)
					require.True(t, IsCipherLetter(cipher[j]))
				} else {
					// Non-letters keep value and position.
					require.Equal(t, r, cipher[j], "pass-through %q at %d", r, j)
				}
			}
		}
	}
}

func BenchmarkNew(b *testing.B) {
	key, err := NewKey(reverseAlphabet)
	if err != nil {
		b.Fatalf("Failed to create key: %v", err)
	}
	quote := NewQuote("The greatest glory in living lies not in never falling, but in rising every time we fall.")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := New(quote, key); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}
