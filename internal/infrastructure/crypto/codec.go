// Package crypto provides the symmetric codec used for the encrypted
// social-media columns (page URL and page ID).
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// Codec encrypts and decrypts column values. Decrypt(Encrypt(x)) == x for
// any UTF-8 string x.
type Codec interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// AESCodec implements Codec with AES-GCM. The random nonce is prepended to
// the sealed message and the whole value is base64-encoded so it fits in a
// text column.
type AESCodec struct {
	gcm cipher.AEAD
}

// NewAESCodec creates a codec from the configured key. The key must be 16,
// 24 or 32 bytes; anything else fails so a misconfigured service cannot
// start and silently corrupt data.
func NewAESCodec(key string) (*AESCodec, error) {
	if key == "" {
		return nil, fmt.Errorf("encryption key is not configured")
	}

	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESCodec{gcm: gcm}, nil
}

// Encrypt seals plaintext under a fresh random nonce.
func (c *AESCodec) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := c.gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. A truncated or tampered value returns an error
// rather than garbage.
func (c *AESCodec) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("malformed ciphertext: %w", err)
	}

	if len(raw) < c.gcm.NonceSize() {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, sealed := raw[:c.gcm.NonceSize()], raw[c.gcm.NonceSize():]
	plaintext, err := c.gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	return string(plaintext), nil
}
