/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package solana verifies ed25519 signatures made by a base58 encoded public key.
package solana

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"

	"github.com/zcred/vcs/pkg/signature"
)

// Verifier checks ed25519 signatures against base58 solana public keys.
type Verifier struct{}

// New returns a solana signature verifier.
func New() *Verifier {
	return &Verifier{}
}

// Validate checks that key decodes to a 32 byte ed25519 public key.
func (v *Verifier) Validate(key string, _ signature.Options) error {
	if _, err := decodeKey(key); err != nil {
		return err
	}

	return nil
}

// Verify reports whether in.Signature is a valid ed25519 signature of in.Message.
func (v *Verifier) Verify(_ context.Context, in signature.Input) (bool, error) {
	pub, err := decodeKey(in.PublicKey)
	if err != nil {
		return false, err
	}

	sig := decodeSignature(in.Signature)
	if len(sig) != ed25519.SignatureSize {
		return false, nil
	}

	return ed25519.Verify(pub, []byte(in.Message), sig), nil
}

func decodeKey(key string) (ed25519.PublicKey, error) {
	b := base58.Decode(key)
	if len(b) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: expected base58 encoded 32 byte key", signature.ErrInvalidKey)
	}

	return b, nil
}

// decodeSignature accepts base58 (wallet default) or hex, with or without 0x.
func decodeSignature(sig string) []byte {
	if b := base58.Decode(sig); len(b) == ed25519.SignatureSize {
		return b
	}

	b, err := hex.DecodeString(strings.TrimPrefix(sig, "0x"))
	if err != nil {
		return nil
	}

	return b
}
