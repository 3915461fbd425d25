/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kyc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/zcred/vcs/internal/pkg/jsonhttp"
	"github.com/zcred/vcs/internal/pkg/log"
)

var logger = log.New("kyc-client")

// Config describes one provider.
type Config struct {
	Name          string        `json:"name"`
	InitURL       string        `json:"initURL"`
	APIKey        string        `json:"apiKey,omitempty"`
	WebhookSecret string        `json:"webhookSecret"`
	Tolerance     time.Duration `json:"tolerance,omitempty"`
	Parser        ParserKind    `json:"parser"`
	Mapping       *Mapping      `json:"mapping,omitempty"`
}

type initRequest struct {
	Reference string `json:"reference"`
}

type initResponse struct {
	VerifyURL string `json:"verifyURL"`
}

// Client is a Provider reached over HTTP.
type Client struct {
	name    string
	initURL string
	apiKey  string
	http    *jsonhttp.Client
	auth    *Authenticator
	parser  Parser
}

// NewClient returns the provider described by cfg.
func NewClient(cfg *Config, httpClient *jsonhttp.Client) (*Client, error) {
	if cfg.InitURL == "" {
		return nil, fmt.Errorf("kyc provider %s: init url not set", cfg.Name)
	}

	if cfg.WebhookSecret == "" {
		return nil, fmt.Errorf("kyc provider %s: webhook secret not set", cfg.Name)
	}

	parser, err := NewParser(cfg.Parser, cfg.Mapping)
	if err != nil {
		return nil, fmt.Errorf("kyc provider %s: %w", cfg.Name, err)
	}

	return &Client{
		name:    cfg.Name,
		initURL: cfg.InitURL,
		apiKey:  cfg.APIKey,
		http:    httpClient,
		auth:    NewAuthenticator([]byte(cfg.WebhookSecret), cfg.Tolerance),
		parser:  parser,
	}, nil
}

// Name returns the provider name.
func (c *Client) Name() string {
	return c.name
}

// InitializeProcedure implements Provider.
func (c *Client) InitializeProcedure(ctx context.Context, reference string) (string, error) {
	headers := http.Header{}

	if c.apiKey != "" {
		headers.Set("Authorization", "Bearer "+c.apiKey)
	}

	var resp initResponse

	if err := c.http.Post(ctx, c.initURL, &initRequest{Reference: reference}, &resp, headers); err != nil {
		return "", fmt.Errorf("initialize %s procedure: %w", c.name, err)
	}

	if resp.VerifyURL == "" {
		return "", errors.New("kyc provider returned empty verify url")
	}

	return resp.VerifyURL, nil
}

// HandleWebhook implements Provider.
func (c *Client) HandleWebhook(_ context.Context, req *WebhookRequest) (*WebhookResult, error) {
	if err := c.auth.Verify(req.Header.Get(SignatureHeader), req.Body); err != nil {
		logger.Warn("rejected webhook", log.WithError(err), log.WithProvider(c.name))

		return nil, err
	}

	return c.parser.Parse(req.Body)
}
