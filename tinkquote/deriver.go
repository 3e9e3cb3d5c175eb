// Package tinkquote provides Tink integration for cryptoquote keys.
// This file contains the factory that turns a PRF keyset handle into a KeyDeriver.
package tinkquote

import (
	"encoding/binary"
	"fmt"

	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/prf"
	"github.com/vdparikh/cryptoquote"
	"github.com/vdparikh/cryptoquote/subtle"
)

// domainSeparator prefixes every PRF input so these outputs never collide
// with other uses of the same keyset.
const domainSeparator = "cryptoquote/substitution-key/v1"

// blockSize is the PRF output length per counter block. HMAC-SHA256 PRFs
// produce at most 32 bytes.
const blockSize = 32

// New creates a KeyDeriver from a Tink PRF keyset handle.
// The tweak is a public value that separates key spaces, for example a
// puzzle collection name. It may be empty.
//
// Example:
//
//	handle, err := keyset.NewHandle(tinkquote.KeyTemplate())
//	if err != nil {
//	    return err
//	}
//	deriver, err := tinkquote.New(handle, []byte("daily-puzzles"))
//	if err != nil {
//	    return err
//	}
//	key, err := deriver.DeriveKey([]byte("2026-10-18"))
func New(handle *keyset.Handle, tweak []byte) (cryptoquote.KeyDeriver, error) {
	if handle == nil {
		return nil, fmt.Errorf("keyset handle cannot be nil")
	}

	prfs, err := prf.NewPRFSet(handle)
	if err != nil {
		return nil, fmt.Errorf("failed to get PRF set from handle: %w", err)
	}

	return &prfDeriver{
		prfs:  prfs,
		tweak: append([]byte(nil), tweak...),
	}, nil
}

// prfDeriver implements cryptoquote.KeyDeriver by shuffling the alphabet
// with a keystream read from the primary PRF in counter mode.
type prfDeriver struct {
	prfs  *prf.Set
	tweak []byte
}

// DeriveKey returns the Key for label. It is deterministic for a given
// keyset, tweak and label.
func (d *prfDeriver) DeriveKey(label []byte) (*cryptoquote.Key, error) {
	src := subtle.NewByteStreamSource(func(counter uint32) ([]byte, error) {
		return d.prfs.ComputePrimaryPRF(d.input(label, counter), blockSize)
	})

	value := subtle.Permute(cryptoquote.StandardAlphabet, src)
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return cryptoquote.NewKey(value)
}

// input encodes separator | len(tweak) | tweak | len(label) | label | counter.
// Length prefixes keep (tweak, label) pairs unambiguous.
func (d *prfDeriver) input(label []byte, counter uint32) []byte {
	buf := make([]byte, 0, len(domainSeparator)+len(d.tweak)+len(label)+12)
	buf = append(buf, domainSeparator...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(d.tweak)))
	buf = append(buf, d.tweak...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(label)))
	buf = append(buf, label...)
	buf = binary.BigEndian.AppendUint32(buf, counter)
	return buf
}

// Verify that prfDeriver implements cryptoquote.KeyDeriver
var _ cryptoquote.KeyDeriver = (*prfDeriver)(nil)
