/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import (
	"time"
)

type Type string

const (
	AWS   Type = "aws"
	Local Type = "local"
)

// Config configures the kms that holds the service signing key.
type Config struct {
	KMSType  Type `json:"kmsType"`
	Endpoint string
	Region   string
	// KeyURI is the AWS key id, alias or aws-kms:// URI.
	KeyURI string
	// KeyID is published as the JWS kid.
	KeyID string
	// Seed is the ed25519 seed of a local key.
	Seed []byte
}

type metricsProvider interface {
	SignTime(value time.Duration)
}
