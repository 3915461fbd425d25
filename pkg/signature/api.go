/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signature

import (
	"context"
	"errors"
)

// IDType names a subject key scheme, "<chain>:<key kind>".
type IDType string

const (
	IDTypeEthereum IDType = "ethereum:address"
	IDTypeSolana   IDType = "solana:publickey"
	IDTypeMina     IDType = "mina:publickey"
)

var (
	// ErrUnsupportedIDType is returned for id types without a registered verifier.
	ErrUnsupportedIDType = errors.New("unsupported id type")
	// ErrInvalidKey is returned when a subject key is malformed for its id type.
	ErrInvalidKey = errors.New("invalid subject key")
	// ErrInvalidOptions is returned when scheme options are missing or malformed.
	ErrInvalidOptions = errors.New("invalid signature options")
)

// Options are scheme parameters that are bound into verification.
type Options struct {
	// ChainID is a CAIP-2 chain id, e.g. "eip155:1". Required for ethereum.
	ChainID string `json:"chainId,omitempty"`
	// Network selects the mina network, "mainnet" or "testnet".
	Network string `json:"network,omitempty"`
}

// Input is a signature to check.
type Input struct {
	Signature string
	PublicKey string
	Message   string
	Options   Options
}

// Verifier checks signatures of one id type. A false result with a nil error means the
// signature does not verify; errors are reserved for malformed input and transport failures.
type Verifier interface {
	Verify(ctx context.Context, in Input) (bool, error)
	// Validate checks a subject key and options before any signature exists.
	Validate(key string, opts Options) error
}
