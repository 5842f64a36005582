package crypto

import "errors"

var (
	// ErrInvalidKey is returned by [NewSecretsCipher] when the configured key
	// is not the base64 encoding of exactly 32 bytes.
	ErrInvalidKey = errors.New("invalid secrets encryption key")

	// ErrDecryptionFailed means a stored value was malformed, tampered with,
	// moved from another scope or sealed under a different key.
	ErrDecryptionFailed = errors.New("secret decryption failed")
)
