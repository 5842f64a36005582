// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// keySize is the length of the decoded configuration key and of the
	// derived AES-256 key.
	keySize = 32

	// secretsKeyInfo is the HKDF info string. Changing it invalidates every
	// stored ciphertext, so bump the version suffix instead of editing it.
	secretsKeyInfo = "data-catalog-secrets-aes256gcm-v1"
)

// NewSecretsCipher builds the cipher selected by key.
//
// An empty key yields the identity cipher. Any other value must be the
// URL-safe or standard base64 encoding of exactly 32 bytes (a Fernet key is
// accepted as is); otherwise an error wrapping [ErrInvalidKey] is returned.
func NewSecretsCipher(key string) (SecretsCipher, error) {
	if key == "" {
		return plaintextCipher{}, nil
	}

	raw, err := decodeKey(key)
	if err != nil {
		return nil, err
	}

	aesKey := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, raw, nil, []byte(secretsKeyInfo)), aesKey); err != nil {
		return nil, fmt.Errorf("derive secrets key: %w", err)
	}

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &aeadCipher{aead: gcm}, nil
}

func decodeKey(key string) ([]byte, error) {
	for _, enc := range []*base64.Encoding{base64.URLEncoding, base64.StdEncoding} {
		raw, err := enc.DecodeString(key)
		if err != nil {
			continue
		}
		if len(raw) != keySize {
			return nil, fmt.Errorf("%w: decoded key is %d bytes, want %d", ErrInvalidKey, len(raw), keySize)
		}
		return raw, nil
	}
	return nil, fmt.Errorf("%w: key is not valid base64", ErrInvalidKey)
}

// plaintextCipher stores values as they are.
type plaintextCipher struct{}

func (plaintextCipher) Encrypt(plaintext, _ string) (string, error) { return plaintext, nil }

func (plaintextCipher) Decrypt(ciphertext, _ string) (string, error) { return ciphertext, nil }

// aeadCipher seals values with AES-256-GCM. The stored form is
// base64(nonce ‖ ciphertext) and the scope is the additional data.
type aeadCipher struct {
	aead cipher.AEAD
}

func (c *aeadCipher) Encrypt(plaintext, scope string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := c.aead.Seal(nonce, nonce, []byte(plaintext), []byte(scope))
	return base64.StdEncoding.EncodeToString(blob), nil
}

func (c *aeadCipher) Decrypt(ciphertext, scope string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrDecryptionFailed, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize+c.aead.Overhead() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}

	plaintext, err := c.aead.Open(nil, blob[:nonceSize], blob[nonceSize:], []byte(scope))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return string(plaintext), nil
}
