package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/secrets_cipher_mock.go -package=mock

// SecretsCipher transforms secret values on their way to and from the
// secrets sidecar. Keys are never passed through it.
//
// scope identifies where a value lives ("<partition>/<id>/<key>"). Ciphers
// that authenticate their output bind it, so a value copied to another
// object or key no longer decrypts.
type SecretsCipher interface {
	// Encrypt returns the stored representation of plaintext.
	Encrypt(plaintext, scope string) (string, error)

	// Decrypt reverses Encrypt. It returns an error wrapping
	// [ErrDecryptionFailed] when the value cannot be authenticated.
	Decrypt(ciphertext, scope string) (string, error)
}
