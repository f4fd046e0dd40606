// Package cryptox implements the at-rest protection used by the credential
// store: values are sealed with ChaCha20-Poly1305 under a random key kept in
// a 0600 key file next to the local database.
package cryptox

import (
	"fmt"
	"os"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/tfernandez-dev/menumap/internal/common"
)

// Seal encrypts plaintext with the given 32-byte key. A fresh random nonce is
// generated per call and returned separately.
func Seal(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, nil, err
	}
	nonce = common.GenerateRandByteArray(aead.NonceSize())
	ciphertext = aead.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// Open decrypts ciphertext produced by Seal with the same key and nonce.
func Open(ciphertext, nonce, key []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce, ciphertext, nil)
}

// LoadOrCreateKey returns the store key from path, creating a new random key
// with 0600 permissions on first use.
func LoadOrCreateKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != chacha20poly1305.KeySize {
			return nil, fmt.Errorf("key file %s: unexpected key length %d", path, len(key))
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	key = common.GenerateRandByteArray(chacha20poly1305.KeySize)
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write key file: %w", err)
	}
	return key, nil
}
