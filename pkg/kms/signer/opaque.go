/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signer

import (
	"context"
	"crypto"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v3"
)

//go:generate mockgen -destination opaque_mocks_test.go -package signer_test -source=opaque.go

const signTimeout = 10 * time.Second

type kmsService interface {
	Algorithm(ctx context.Context) (string, error)
	PublicKey(ctx context.Context) (crypto.PublicKey, error)
	Sign(ctx context.Context, msg []byte) ([]byte, error)
}

// opaqueSigner lets go-jose sign with a key it cannot see.
type opaqueSigner struct {
	kms kmsService
	alg jose.SignatureAlgorithm
	jwk *jose.JSONWebKey
}

func newOpaqueSigner(ctx context.Context, kms kmsService, keyID string) (*opaqueSigner, error) {
	alg, err := kms.Algorithm(ctx)
	if err != nil {
		return nil, fmt.Errorf("key algorithm: %w", err)
	}

	pub, err := kms.PublicKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}

	return &opaqueSigner{
		kms: kms,
		alg: jose.SignatureAlgorithm(alg),
		jwk: &jose.JSONWebKey{Key: pub, KeyID: keyID, Algorithm: alg, Use: "sig"},
	}, nil
}

func (o *opaqueSigner) Public() *jose.JSONWebKey {
	return o.jwk
}

func (o *opaqueSigner) Algs() []jose.SignatureAlgorithm {
	return []jose.SignatureAlgorithm{o.alg}
}

func (o *opaqueSigner) SignPayload(payload []byte, alg jose.SignatureAlgorithm) ([]byte, error) {
	if alg != o.alg {
		return nil, fmt.Errorf("unsupported algorithm %s", alg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), signTimeout)
	defer cancel()

	return o.kms.Sign(ctx, payload)
}
