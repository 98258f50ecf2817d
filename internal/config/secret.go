package config

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

// encryptedPrefix marks a credential value stored as base64 AES-GCM ciphertext.
const encryptedPrefix = "enc:"

var ErrInvalidSecretKey = errors.New("secret key must be 32 bytes")

type SecretBox struct {
	aead cipher.AEAD
}

func NewSecretBox(key string) (*SecretBox, error) {
	if len(key) != 32 {
		return nil, ErrInvalidSecretKey
	}
	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &SecretBox{aead: aead}, nil
}

func (b *SecretBox) Encrypt(text string) (string, error) {
	nonce := make([]byte, b.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	ciphertext := b.aead.Seal(nonce, nonce, []byte(text), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (b *SecretBox) Decrypt(encoded string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	nonceSize := b.aead.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", errors.New("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := b.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// resolveSecret returns value unchanged unless it carries the "enc:" prefix,
// in which case it is decrypted with box.
func resolveSecret(box *SecretBox, name, value string) (string, error) {
	if !strings.HasPrefix(value, encryptedPrefix) {
		return value, nil
	}
	if box == nil {
		return "", fmt.Errorf("%s is encrypted but SECRET_KEY is not set", name)
	}
	plain, err := box.Decrypt(strings.TrimPrefix(value, encryptedPrefix))
	if err != nil {
		return "", fmt.Errorf("decrypt %s: %w", name, err)
	}
	return plain, nil
}
