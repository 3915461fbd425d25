/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package kyc talks to external identity verification providers. A provider hosts the
// verification flow for a reference chosen by the issuer and later reports the verdict through
// a webhook; every provider payload is reduced to a WebhookResult.
package kyc

import (
	"context"
	"errors"
	"net/http"
)

var (
	// ErrUnauthorized is returned for webhooks failing the authenticity check.
	ErrUnauthorized = errors.New("webhook signature invalid")
	// ErrMalformed is returned for webhook payloads that cannot be parsed.
	ErrMalformed = errors.New("malformed webhook payload")
	// ErrNotFinal is returned for interim provider events that carry no verdict.
	ErrNotFinal = errors.New("no final verdict")
)

// WebhookResult is the provider independent verdict.
type WebhookResult struct {
	Reference  string                 `json:"reference"`
	Verified   bool                   `json:"verified"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// WebhookRequest is the raw webhook call.
type WebhookRequest struct {
	Header http.Header
	Body   []byte
}

// Provider is a KYC provider.
type Provider interface {
	// InitializeProcedure starts the flow for reference and returns the URL the subject visits.
	InitializeProcedure(ctx context.Context, reference string) (string, error)
	// HandleWebhook authenticates and parses a provider callback.
	HandleWebhook(ctx context.Context, req *WebhookRequest) (*WebhookResult, error)
}

// Parser reduces a provider payload to a WebhookResult.
type Parser interface {
	Parse(body []byte) (*WebhookResult, error)
}
