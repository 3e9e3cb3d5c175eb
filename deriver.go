package cryptoquote

// KeyDeriver produces Keys deterministically from secret key material.
// The same material and label always yield the same Key; different labels
// yield independent keys. See tinkquote.New for a Tink-backed implementation.
type KeyDeriver interface {
	// DeriveKey returns the Key for label.
	DeriveKey(label []byte) (*Key, error)
}
