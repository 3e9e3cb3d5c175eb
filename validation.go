package cryptoquote

import (
	validation "github.com/jellydator/validation"
)

// Alphabetic requires every character of a string to be a letter A-Z.
// It runs after uppercasing, so lowercase input has already been folded.
var Alphabetic = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_key_type", "key must be a string")
	}
	for _, r := range s {
		if !IsCipherLetter(r) {
			return validation.NewError("validation_key_alphabetic", "key must contain only letters A-Z")
		}
	}
	return nil
})

// DistinctLetters requires every character of a string to appear once.
var DistinctLetters = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_key_type", "key must be a string")
	}
	seen := make(map[rune]struct{}, AlphabetSize)
	for _, r := range s {
		if _, dup := seen[r]; dup {
			return validation.NewError("validation_key_distinct", "key must not repeat a letter")
		}
		seen[r] = struct{}{}
	}
	return nil
})

// keyRules are checked in order. Length and distinctness are independent
// conditions: a 26-character key with a repeat fails the second rule even
// though its length is right.
var keyRules = []validation.Rule{
	validation.RuneLength(AlphabetSize, AlphabetSize).Error("key must be exactly 26 characters"),
	DistinctLetters,
	Alphabetic,
}

// validateKey checks an already uppercased key and wraps any failure in an
// *ImproperKeyError.
func validateKey(value string) error {
	if value == "" {
		return &ImproperKeyError{Reason: validation.NewError("validation_key_required", "key is required")}
	}
	if err := validation.Validate(value, keyRules...); err != nil {
		return &ImproperKeyError{Reason: err}
	}
	return nil
}
