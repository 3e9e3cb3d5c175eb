// Package tinkquote provides Tink integration for cryptoquote keys.
// This file contains key templates and keyset persistence helpers.
package tinkquote

import (
	"fmt"
	"os"

	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/prf"
	"github.com/google/tink/go/proto/tink_go_proto"
)

// KeyTemplate returns the key template for keysets used with New.
// It is Tink's HMAC-SHA256 PRF template, so keysets can be created with
// a single line:
//
//	handle, err := keyset.NewHandle(tinkquote.KeyTemplate())
func KeyTemplate() *tink_go_proto.KeyTemplate {
	return prf.HMACSHA256PRFKeyTemplate()
}

// NewKeysetHandle creates a fresh keyset handle from KeyTemplate.
func NewKeysetHandle() (*keyset.Handle, error) {
	handle, err := keyset.NewHandle(KeyTemplate())
	if err != nil {
		return nil, fmt.Errorf("failed to create keyset handle: %w", err)
	}
	return handle, nil
}

// StoreKeyset writes handle to path as cleartext JSON.
//
// WARNING: the keyset is not encrypted. Anyone who can read the file can
// derive every key. Protect it like any other secret.
func StoreKeyset(handle *keyset.Handle, path string) error {
	if handle == nil {
		return fmt.Errorf("keyset handle cannot be nil")
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create keyset file: %w", err)
	}

	writer := keyset.NewJSONWriter(file)
	if err := insecurecleartextkeyset.Write(handle, writer); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write keyset: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close keyset file: %w", err)
	}
	return nil
}

// LoadKeyset reads a cleartext JSON keyset written by StoreKeyset.
func LoadKeyset(path string) (*keyset.Handle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyset file: %w", err)
	}
	defer file.Close()

	handle, err := insecurecleartextkeyset.Read(keyset.NewJSONReader(file))
	if err != nil {
		return nil, fmt.Errorf("failed to read keyset: %w", err)
	}
	return handle, nil
}
