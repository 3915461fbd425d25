/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package kdf derives independent purpose-bound keys from the service master secret.
package kdf

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Purpose labels. A label is bound into the derivation so keys for different purposes never collide.
const (
	PurposeIssuanceSession     = "zcred/issuance/session-id"
	PurposeVerificationSession = "zcred/verification/session-id"
	PurposeAccessToken         = "zcred/verification/access-token"
	PurposeSessionEncryption   = "zcred/storage/session-encryption"
	PurposeSigningKey          = "zcred/kms/signing-key"
)

// KeySize is the size of derived keys.
const KeySize = 32

var salt = []byte("zcred-kdf-v1") //nolint:gochecknoglobals

// Deriver derives purpose keys from a master secret.
type Deriver struct {
	secret []byte
}

// New returns a deriver for the given master secret.
func New(secret []byte) (*Deriver, error) {
	if len(secret) < KeySize {
		return nil, fmt.Errorf("master secret must be at least %d bytes", KeySize)
	}

	return &Deriver{secret: append([]byte(nil), secret...)}, nil
}

// Derive returns a KeySize key for the purpose.
func (d *Deriver) Derive(purpose string) ([]byte, error) {
	if purpose == "" {
		return nil, errors.New("empty purpose")
	}

	key := make([]byte, KeySize)

	if _, err := io.ReadFull(hkdf.New(sha256.New, d.secret, salt, []byte(purpose)), key); err != nil {
		return nil, fmt.Errorf("derive %s: %w", purpose, err)
	}

	return key, nil
}

// MustDerive is Derive for the package purpose constants.
func (d *Deriver) MustDerive(purpose string) []byte {
	key, err := d.Derive(purpose)
	if err != nil {
		panic(err)
	}

	return key
}
