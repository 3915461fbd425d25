/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prover

import (
	"context"
	"crypto"
	"encoding/base64"
	"fmt"

	"github.com/go-jose/go-jose/v3"

	"github.com/zcred/vcs/pkg/canonical"
)

type jwsSigner interface {
	Sign(payload []byte) (string, error)
	PublicJWK() jose.JSONWebKey
}

// JWSProver signs the canonical attributes with the issuer key.
type JWSProver struct {
	signer    jwsSigner
	reference string
}

// NewJWSProver returns a prover whose issuer reference is the JWK thumbprint of the signing key.
func NewJWSProver(signer jwsSigner) (*JWSProver, error) {
	jwk := signer.PublicJWK()

	tp, err := jwk.Thumbprint(crypto.SHA256)
	if err != nil {
		return nil, fmt.Errorf("key thumbprint: %w", err)
	}

	return &JWSProver{
		signer:    signer,
		reference: base64.RawURLEncoding.EncodeToString(tp),
	}, nil
}

// Sign implements Prover.
func (p *JWSProver) Sign(_ context.Context, proofType string, attributes map[string]interface{}) (*Proof, error) {
	if proofType != TypeJWS {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProofType, proofType)
	}

	payload, err := canonical.Marshal(attributes)
	if err != nil {
		return nil, err
	}

	sig, err := p.signer.Sign(payload)
	if err != nil {
		return nil, err
	}

	return &Proof{
		Type:            TypeJWS,
		IssuerReference: p.reference,
		Signature:       sig,
	}, nil
}
