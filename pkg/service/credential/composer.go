/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination composer_mocks_test.go -self_package mocks -package credential_test -source=composer.go -mock_names proofService=MockProofService,detachedSigner=MockDetachedSigner

package credential

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"github.com/tidwall/sjson"

	"github.com/zcred/vcs/internal/pkg/log"
	"github.com/zcred/vcs/pkg/canonical"
	"github.com/zcred/vcs/pkg/prover"
)

var logger = log.New("credential-composer")

type proofService interface {
	Sign(ctx context.Context, proofType string, attributes map[string]interface{}) (*prover.Proof, error)
}

type detachedSigner interface {
	SignDetached(payload []byte) (string, error)
}

// ComposeInput describes the credential to compose.
type ComposeInput struct {
	Issuer        Issuer
	DefinitionRef string
	Attributes    map[string]interface{}
	ProofTypes    []string
	// ACI adds the auxiliary identifier derived from the first signature proof.
	ACI bool
}

// Composer assembles and protects credentials.
type Composer struct {
	prover proofService
	signer detachedSigner
}

// NewComposer returns a composer.
func NewComposer(prover proofService, signer detachedSigner) *Composer {
	return &Composer{prover: prover, signer: signer}
}

// Compose requests a proof per proof type and protects the result.
func (c *Composer) Compose(ctx context.Context, in *ComposeInput) (*Credential, error) {
	if len(in.ProofTypes) == 0 {
		return nil, errors.New("no proof types configured")
	}

	cred := &Credential{
		Meta:       Meta{Issuer: in.Issuer, DefinitionRef: in.DefinitionRef},
		Attributes: in.Attributes,
		Proofs:     map[string]map[string]*prover.Proof{},
	}

	var first *prover.Proof

	for _, proofType := range in.ProofTypes {
		p, err := c.prover.Sign(ctx, proofType, in.Attributes)
		if err != nil {
			return nil, fmt.Errorf("sign %s proof: %w", proofType, err)
		}

		logger.Debug("proof created", log.WithProofType(proofType))

		addProof(cred, proofType, p)

		if first == nil {
			first = p
		}
	}

	if in.ACI {
		aci, err := ACI(first, in.Attributes)
		if err != nil {
			return nil, err
		}

		addProof(cred, ProofTypeACI, aci)
	}

	if err := c.Protect(ctx, cred); err != nil {
		return nil, err
	}

	return cred, nil
}

// Protect sets cred.Protection to a detached JWS over the canonical credential without protection.
func (c *Composer) Protect(_ context.Context, cred *Credential) error {
	unprotected := *cred
	unprotected.Protection = nil

	payload, err := canonical.Marshal(&unprotected)
	if err != nil {
		return fmt.Errorf("canonicalize credential: %w", err)
	}

	jws, err := c.signer.SignDetached(payload)
	if err != nil {
		return fmt.Errorf("protect credential: %w", err)
	}

	cred.Protection = &Protection{JWS: jws}

	return nil
}

// ACI derives the auxiliary credential identifier from a signature proof and the attributes it
// covers. The subject id is removed before hashing, so the value only depends on who issued what.
func ACI(sig *prover.Proof, attributes map[string]interface{}) (*prover.Proof, error) {
	if sig == nil {
		return nil, errors.New("aci requires a signature proof")
	}

	attrs, err := canonical.Marshal(attributes)
	if err != nil {
		return nil, fmt.Errorf("canonicalize attributes: %w", err)
	}

	attrs, err = sjson.DeleteBytes(attrs, "subject.id")
	if err != nil {
		return nil, fmt.Errorf("strip subject id: %w", err)
	}

	payload, err := canonical.Marshal(map[string]interface{}{
		"type":            sig.Type,
		"issuerReference": sig.IssuerReference,
		"attributes":      json.RawMessage(attrs),
	})
	if err != nil {
		return nil, err
	}

	digest := sha256.Sum256(payload)

	return &prover.Proof{
		Type:            ProofTypeACI,
		IssuerReference: sig.IssuerReference,
		Signature:       base58.Encode(digest[:]),
	}, nil
}

func addProof(cred *Credential, proofType string, p *prover.Proof) {
	if cred.Proofs[proofType] == nil {
		cred.Proofs[proofType] = map[string]*prover.Proof{}
	}

	cred.Proofs[proofType][p.IssuerReference] = p
}
