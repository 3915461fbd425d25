/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jsonhttp is the JSON over HTTP transport shared by the remote collaborators
// (KYC providers, prover, ZK verifier, signer sidecar).
package jsonhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/zcred/vcs/internal/pkg/log"
)

//go:generate mockgen -destination client_mocks_test.go -package jsonhttp_test -source=client.go -mock_names httpClient=MockHTTPClient

var logger = log.New("jsonhttp")

const (
	defaultMaxRetries   = 3
	defaultInitialDelay = 200 * time.Millisecond
	maxErrorBodyLen     = 512
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned for non 2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status code: %d, msg: %s", e.StatusCode, e.Body)
}

// Client sends JSON requests. Transport errors and 5xx responses are retried with exponential
// backoff; 4xx responses fail immediately. POST is sent once unless WithRetryPost is set.
type Client struct {
	httpClient   httpClient
	maxRetries   uint64
	initialDelay time.Duration
	retryPost    bool
}

// Opt configures Client.
type Opt func(c *Client)

// WithMaxRetries sets the number of retries after the first attempt.
func WithMaxRetries(n uint64) Opt {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithRetryPost applies the retry policy to POST. Only for endpoints whose POST has no side
// effects, such as proof and signature verification.
func WithRetryPost() Opt {
	return func(c *Client) {
		c.retryPost = true
	}
}

// WithInitialDelay sets the first backoff interval.
func WithInitialDelay(d time.Duration) Opt {
	return func(c *Client) {
		c.initialDelay = d
	}
}

// New returns a Client. A nil httpClient means http.DefaultClient.
func New(client httpClient, opts ...Opt) *Client {
	if client == nil {
		client = http.DefaultClient
	}

	c := &Client{
		httpClient:   client,
		maxRetries:   defaultMaxRetries,
		initialDelay: defaultInitialDelay,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Post sends body as JSON and decodes the response into out unless out is nil.
func (c *Client) Post(ctx context.Context, url string, body, out interface{}, headers http.Header) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	return c.Do(ctx, http.MethodPost, url, payload, out, headers)
}

// Get sends a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, url string, out interface{}, headers http.Header) error {
	return c.Do(ctx, http.MethodGet, url, nil, out, headers)
}

// Do runs the request, retrying where the method allows.
func (c *Client) Do(ctx context.Context, method, url string, payload []byte, out interface{},
	headers http.Header) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialDelay

	maxRetries := c.maxRetries
	if method == http.MethodPost && !c.retryPost {
		maxRetries = 0
	}

	var respBody []byte

	err := backoff.RetryNotify(
		func() error {
			var doErr error

			respBody, doErr = c.send(ctx, method, url, payload, headers)

			return doErr
		},
		backoff.WithContext(backoff.WithMaxRetries(b, maxRetries), ctx),
		func(err error, d time.Duration) {
			logger.Warn("request failed, retrying", log.WithURL(url), zap.Duration("retryIn", d),
				log.WithError(err))
		},
	)
	if err != nil {
		return err
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err = json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) send(ctx context.Context, method, url string, payload []byte, headers http.Header) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}

	for k, v := range headers {
		req.Header[k] = v
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, backoff.Permanent(fmt.Errorf("send request: %w", err))
		}

		return nil, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(respBody))}

		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, statusErr
		}

		return nil, backoff.Permanent(statusErr)
	}

	return respBody, nil
}

func truncate(s string) string {
	if len(s) > maxErrorBodyLen {
		return s[:maxErrorBodyLen]
	}

	return s
}
