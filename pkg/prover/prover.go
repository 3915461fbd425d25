/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package prover produces signed-attribute proofs for credentials.
package prover

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// Proof types.
const (
	// TypeJWS is an in-process JWS over the canonical attributes.
	TypeJWS = "jws-signature"
	// TypeMinaPoseidonPasta is a Schnorr signature over Poseidon hashed attributes, made by the remote prover.
	TypeMinaPoseidonPasta = "mina:poseidon-pasta"
	// TypeEthEIP712 is an EIP-712 typed data signature, made by the remote prover.
	TypeEthEIP712 = "ethereum:eip712"
)

// ErrUnsupportedProofType is returned for proof types no prover serves.
var ErrUnsupportedProofType = errors.New("unsupported proof type")

// Proof is a signed-attribute proof.
type Proof struct {
	Type            string                 `json:"type"`
	IssuerReference string                 `json:"issuerReference"`
	Signature       string                 `json:"signature"`
	Schema          map[string]interface{} `json:"schema,omitempty"`
}

// Prover signs credential attributes.
type Prover interface {
	Sign(ctx context.Context, proofType string, attributes map[string]interface{}) (*Proof, error)
}

// Router dispatches by proof type.
type Router struct {
	provers map[string]Prover
}

// NewRouter returns a router over the given provers.
func NewRouter(provers map[string]Prover) *Router {
	return &Router{provers: lo.Assign(provers)}
}

// Types lists the served proof types.
func (r *Router) Types() []string {
	types := lo.Keys(r.provers)
	sort.Strings(types)

	return types
}

// Sign implements Prover.
func (r *Router) Sign(ctx context.Context, proofType string, attributes map[string]interface{}) (*Proof, error) {
	p, ok := r.provers[proofType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProofType, proofType)
	}

	return p.Sign(ctx, proofType, attributes)
}
