/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package aws

type opts struct {
	awsClient awsClient
	metrics   metricsProvider
	endpoint  string
}

// Opts a Functional Options.
type Opts func(opts *opts)

// WithAWSClient sets custom AWS client.
func WithAWSClient(client awsClient) Opts {
	return func(opts *opts) { opts.awsClient = client }
}

// WithMetrics records sign timings.
func WithMetrics(metrics metricsProvider) Opts {
	return func(opts *opts) { opts.metrics = metrics }
}

// WithEndpoint points the KMS client at a custom endpoint, e.g. localstack.
func WithEndpoint(endpoint string) Opts {
	return func(opts *opts) { opts.endpoint = endpoint }
}
