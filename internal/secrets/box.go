// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package secrets seals tenant secret values into an encrypted blob and
// renders them for display without exposing the originals.
package secrets

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Box encrypts and decrypts a tenant's secrets map. The wire format is
// nonce || ciphertext, one blob per tenant.
type Box struct {
	aead cipher.AEAD
}

// NewBox builds a Box from a hex-encoded 256-bit key.
func NewBox(hexKey string) (*Box, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("secrets key is not valid hex: %w", err)
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("secrets key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}

	return &Box{aead: aead}, nil
}

func (b *Box) Seal(values map[string]string) ([]byte, error) {
	plaintext, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal secrets: %w", err)
	}

	nonce := make([]byte, b.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return b.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a sealed blob. A nil or empty blob is an empty secrets map,
// not an error.
func (b *Box) Open(blob []byte) (map[string]string, error) {
	if len(blob) == 0 {
		return map[string]string{}, nil
	}
	if len(blob) < b.aead.NonceSize() {
		return nil, fmt.Errorf("secrets blob too short")
	}

	nonce, ciphertext := blob[:b.aead.NonceSize()], blob[b.aead.NonceSize():]
	plaintext, err := b.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt secrets blob: %w", err)
	}

	var values map[string]string
	if err := json.Unmarshal(plaintext, &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal secrets: %w", err)
	}

	return values, nil
}
