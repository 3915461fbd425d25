/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataprotect

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// AES is AES-GCM under a fixed key. The random nonce is prepended to the ciphertext.
type AES struct {
	gcm cipher.AEAD
}

// NewAES accepts 16, 24 or 32 byte keys.
func NewAES(key []byte) (*AES, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("gcm: %w", err)
	}

	return &AES{gcm: gcm}, nil
}

func (a *AES) Seal(data, aad []byte) ([]byte, error) {
	nonce := make([]byte, a.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return a.gcm.Seal(nonce, nonce, data, aad), nil
}

func (a *AES) Open(data, aad []byte) ([]byte, error) {
	if len(data) < a.gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := data[:a.gcm.NonceSize()], data[a.gcm.NonceSize():]

	return a.gcm.Open(nil, nonce, ciphertext, aad)
}
