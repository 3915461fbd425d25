/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package zkverifier checks zero-knowledge proofs against a JAL program using an external
// verifier service.
package zkverifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/zcred/vcs/internal/pkg/jsonhttp"
	"github.com/zcred/vcs/internal/pkg/log"
)

var logger = log.New("zk-verifier")

type verifyRequest struct {
	Program       json.RawMessage `json:"program"`
	ProvingResult json.RawMessage `json:"provingResult"`
}

type verifyResponse struct {
	Verified *bool  `json:"verified"`
	Reason   string `json:"reason,omitempty"`
}

// Client posts proofs to <url>/verify.
type Client struct {
	client *jsonhttp.Client
	url    string
}

// New returns a verifier client for the service at url.
func New(client *jsonhttp.Client, url string) *Client {
	return &Client{client: client, url: strings.TrimSuffix(url, "/") + "/verify"}
}

// Verify reports whether provingResult is a valid proof of program. A proof that does not verify
// is false with a nil error.
func (c *Client) Verify(ctx context.Context, program, provingResult json.RawMessage) (bool, error) {
	if len(program) == 0 || len(provingResult) == 0 {
		return false, errors.New("program and proving result are required")
	}

	var resp verifyResponse

	err := c.client.Post(ctx, c.url, &verifyRequest{Program: program, ProvingResult: provingResult}, &resp, nil)
	if err != nil {
		return false, fmt.Errorf("zk verifier: %w", err)
	}

	if resp.Verified == nil {
		return false, errors.New("zk verifier: response has no verdict")
	}

	if !*resp.Verified {
		logger.Debug("proof rejected by zk verifier", zap.String("reason", resp.Reason))
	}

	return *resp.Verified, nil
}
