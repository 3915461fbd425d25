/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package signer produces JWS with the service key. The key is either a local ed25519 key or
// an ECC key held in AWS KMS.
package signer

import (
	"context"
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/go-jose/go-jose/v3"
)

// Signer signs payloads as JWS.
type Signer struct {
	signer jose.Signer
	jwk    jose.JSONWebKey
}

// NewLocal returns a signer for an ed25519 key.
func NewLocal(priv ed25519.PrivateKey, keyID string) (*Signer, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, errors.New("invalid ed25519 private key")
	}

	return newSigner(jose.SigningKey{
		Algorithm: jose.EdDSA,
		Key:       jose.JSONWebKey{Key: priv, KeyID: keyID, Algorithm: string(jose.EdDSA)},
	}, jose.JSONWebKey{
		Key:       priv.Public(),
		KeyID:     keyID,
		Algorithm: string(jose.EdDSA),
		Use:       "sig",
	})
}

// NewLocalFromSeed derives the ed25519 key from a 32 byte seed.
func NewLocalFromSeed(seed []byte, keyID string) (*Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes", ed25519.SeedSize)
	}

	return NewLocal(ed25519.NewKeyFromSeed(seed), keyID)
}

// NewRemote returns a signer backed by a KMS key.
func NewRemote(ctx context.Context, kms kmsService, keyID string) (*Signer, error) {
	opaque, err := newOpaqueSigner(ctx, kms, keyID)
	if err != nil {
		return nil, err
	}

	return newSigner(jose.SigningKey{
		Algorithm: opaque.alg,
		Key:       opaque,
	}, *opaque.Public())
}

func newSigner(key jose.SigningKey, pub jose.JSONWebKey) (*Signer, error) {
	s, err := jose.NewSigner(key, nil)
	if err != nil {
		return nil, fmt.Errorf("create jws signer: %w", err)
	}

	return &Signer{signer: s, jwk: pub}, nil
}

// Sign returns the compact serialization.
func (s *Signer) Sign(payload []byte) (string, error) {
	jws, err := s.signer.Sign(payload)
	if err != nil {
		return "", fmt.Errorf("sign: %w", err)
	}

	return jws.CompactSerialize()
}

// SignDetached returns "<header>..<signature>"; the payload travels separately.
func (s *Signer) SignDetached(payload []byte) (string, error) {
	jws, err := s.signer.Sign(payload)
	if err != nil {
		return "", fmt.Errorf("sign: %w", err)
	}

	return jws.DetachedCompactSerialize()
}

// PublicJWK returns the verification key.
func (s *Signer) PublicJWK() jose.JSONWebKey {
	return s.jwk
}

// JWKS returns the verification key as a key set.
func (s *Signer) JWKS() jose.JSONWebKeySet {
	return jose.JSONWebKeySet{Keys: []jose.JSONWebKey{s.jwk}}
}
