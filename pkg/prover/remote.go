/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prover

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zcred/vcs/internal/pkg/jsonhttp"
)

type signRequest struct {
	ProofType  string                 `json:"proofType"`
	Attributes map[string]interface{} `json:"attributes"`
}

// RemoteProver calls a prover sidecar holding the scheme specific issuer keys.
type RemoteProver struct {
	client *jsonhttp.Client
	url    string
}

// NewRemoteProver returns a prover posting to <url>/sign.
func NewRemoteProver(client *jsonhttp.Client, url string) *RemoteProver {
	return &RemoteProver{client: client, url: strings.TrimSuffix(url, "/") + "/sign"}
}

// Sign implements Prover.
func (p *RemoteProver) Sign(ctx context.Context, proofType string, attributes map[string]interface{}) (*Proof, error) {
	var proof Proof

	err := p.client.Post(ctx, p.url, &signRequest{ProofType: proofType, Attributes: attributes}, &proof, nil)
	if err != nil {
		return nil, fmt.Errorf("remote prover: %w", err)
	}

	if proof.Signature == "" || proof.IssuerReference == "" {
		return nil, errors.New("remote prover: incomplete proof")
	}

	if proof.Type == "" {
		proof.Type = proofType
	}

	return &proof, nil
}
