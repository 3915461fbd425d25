/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package mina checks Pasta curve Schnorr signatures through a signer sidecar, the reference
// mina-signer implementation exposed over HTTP.
package mina

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/zcred/vcs/internal/pkg/jsonhttp"
	"github.com/zcred/vcs/pkg/signature"
)

const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"

	defaultNetwork = NetworkMainnet
)

var publicKeyRegexp = regexp.MustCompile(`^B62[1-9A-HJ-NP-Za-km-z]{52}$`)

type verifyRequest struct {
	PublicKey string `json:"publicKey"`
	Signature string `json:"signature"`
	Data      string `json:"data"`
	Network   string `json:"network"`
}

type verifyResponse struct {
	Verified bool `json:"verified"`
}

type Verifier struct {
	client    *jsonhttp.Client
	verifyURL string
}

// New returns a verifier that posts to <signerURL>/verify.
func New(client *jsonhttp.Client, signerURL string) *Verifier {
	return &Verifier{
		client:    client,
		verifyURL: strings.TrimSuffix(signerURL, "/") + "/verify",
	}
}

func (v *Verifier) Validate(key string, opts signature.Options) error {
	if !publicKeyRegexp.MatchString(key) {
		return fmt.Errorf("%w: expected base58check B62 public key", signature.ErrInvalidKey)
	}

	switch opts.Network {
	case "", NetworkMainnet, NetworkTestnet:
		return nil
	default:
		return fmt.Errorf("%w: unknown mina network %q", signature.ErrInvalidOptions, opts.Network)
	}
}

func (v *Verifier) Verify(ctx context.Context, in signature.Input) (bool, error) {
	if err := v.Validate(in.PublicKey, in.Options); err != nil {
		return false, err
	}

	network := in.Options.Network
	if network == "" {
		network = defaultNetwork
	}

	var resp verifyResponse

	err := v.client.Post(ctx, v.verifyURL, &verifyRequest{
		PublicKey: in.PublicKey,
		Signature: in.Signature,
		Data:      in.Message,
		Network:   network,
	}, &resp, nil)
	if err != nil {
		return false, fmt.Errorf("mina signer: %w", err)
	}

	return resp.Verified, nil
}
