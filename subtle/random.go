// Package subtle provides low-level primitives for building substitution alphabets.
// This package contains the shuffle and randomness plumbing used by the key constructors.
// It should not be used directly by most users; instead use the high-level APIs in the parent package.
package subtle

import (
	"encoding/binary"
	"fmt"

	"github.com/google/tink/go/subtle/random"
)

// Source produces uniformly distributed integers in [0, n).
// *math/rand.Rand satisfies it, which makes seeded, reproducible shuffles easy in tests.
type Source interface {
	Intn(n int) int
}

// CryptoSource draws from the operating system CSPRNG through Tink.
// The zero value is ready to use and safe for concurrent use.
type CryptoSource struct{}

// Intn returns a uniform integer in [0, n). It panics if n <= 0.
func (CryptoSource) Intn(n int) int {
	return uniform(n, random.GetRandomUint32)
}

// ByteStreamSource adapts a byte generator, such as a PRF run in counter mode,
// into a Source. The generator is called with an increasing block counter
// whenever the buffered bytes run out.
//
// Intn cannot report errors, so the first generator failure is recorded and
// every later call returns 0. Callers must check Err after use.
type ByteStreamSource struct {
	next    func(counter uint32) ([]byte, error)
	buf     []byte
	counter uint32
	err     error
}

// NewByteStreamSource creates a ByteStreamSource over next.
func NewByteStreamSource(next func(counter uint32) ([]byte, error)) *ByteStreamSource {
	return &ByteStreamSource{next: next}
}

// Intn returns a uniform integer in [0, n). It panics if n <= 0.
func (s *ByteStreamSource) Intn(n int) int {
	return uniform(n, s.draw)
}

// Err returns the first error reported by the generator, if any.
func (s *ByteStreamSource) Err() error {
	return s.err
}

func (s *ByteStreamSource) draw() uint32 {
	if s.err != nil {
		return 0
	}
	for len(s.buf) < 4 {
		block, err := s.next(s.counter)
		if err != nil {
			s.err = fmt.Errorf("failed to generate block %d: %w", s.counter, err)
			return 0
		}
		if len(block) == 0 {
			s.err = fmt.Errorf("generator returned an empty block at %d", s.counter)
			return 0
		}
		s.counter++
		s.buf = append(s.buf, block...)
	}
	v := binary.BigEndian.Uint32(s.buf[:4])
	s.buf = s.buf[4:]
	return v
}

// uniform maps 32-bit draws onto [0, n) with rejection sampling so that no
// residue is favoured.
func uniform(n int, draw func() uint32) int {
	if n <= 0 {
		panic(fmt.Sprintf("subtle: invalid argument to Intn: %d", n))
	}
	bound := uint32(n)
	// Largest multiple of bound that fits in 32 bits.
	limit := ^uint32(0) - (^uint32(0)%bound+1)%bound
	for {
		v := draw()
		if v <= limit {
			return int(v % bound)
		}
	}
}
