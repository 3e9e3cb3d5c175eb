package cryptoquote

import (
	"errors"
	"fmt"
)

var (
	// ErrImproperKey matches every *ImproperKeyError via errors.Is.
	ErrImproperKey = errors.New("improper key")

	// ErrAlreadyEncrypted is returned when Encrypt runs on a Cryptoquote
	// that already holds ciphertext.
	ErrAlreadyEncrypted = errors.New("cryptoquote already encrypted")
)

// ImproperKeyError reports a caller-supplied key that is not a permutation
// of StandardAlphabet. Reason carries the failed validation rule.
type ImproperKeyError struct {
	Reason error
}

// Error implements the error interface.
func (e *ImproperKeyError) Error() string {
	if e.Reason == nil {
		return ErrImproperKey.Error()
	}
	return fmt.Sprintf("%s: %v", ErrImproperKey, e.Reason)
}

// Unwrap exposes both the sentinel and the validation cause.
func (e *ImproperKeyError) Unwrap() []error {
	if e.Reason == nil {
		return []error{ErrImproperKey}
	}
	return []error{ErrImproperKey, e.Reason}
}
