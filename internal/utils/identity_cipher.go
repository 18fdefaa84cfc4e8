package utils

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

var identityKeySalt = []byte("pos-backend-identity")

// IdentityCipher encrypts member identity numbers with AES-256-GCM.
// The output is base64(nonce || ciphertext).
type IdentityCipher struct {
	aead cipher.AEAD
}

// NewIdentityCipher derives a 32-byte key from secret with HKDF-SHA256.
func NewIdentityCipher(secret string) (*IdentityCipher, error) {
	if secret == "" {
		return nil, fmt.Errorf("identity encryption secret is required")
	}

	reader := hkdf.New(sha256.New, []byte(secret), identityKeySalt, []byte("identity-number-v1"))
	key := make([]byte, 32)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive identity key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create identity cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create identity gcm: %w", err)
	}
	return &IdentityCipher{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce.
func (c *IdentityCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt.
func (c *IdentityCipher) Decrypt(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode identity ciphertext: %w", err)
	}
	ns := c.aead.NonceSize()
	if len(raw) < ns {
		return "", fmt.Errorf("identity ciphertext too short")
	}
	plain, err := c.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", fmt.Errorf("open identity ciphertext: %w", err)
	}
	return string(plain), nil
}
