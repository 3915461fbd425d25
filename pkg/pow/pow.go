/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package pow checks the proof-of-work token that has to accompany a verification rejection.
//
// The token is a JWT with payload {"challenge":{"messageHash":..,"nonce":..},"proof":..} where
//
//	messageHash = hex(sha256(challenge message))
//	proof       = hex(sha256(canonical({"messageHash":..,"nonce":..})))
//
// and proof starts with difficulty '0' characters. The JWT signature is not checked: the work
// itself is the credential.
package pow

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-jose/go-jose/v3/jwt"

	"github.com/zcred/vcs/pkg/canonical"
)

// DefaultDifficulty is the number of leading zero hex digits required.
const DefaultDifficulty = 5

var (
	ErrMalformed    = errors.New("malformed proof of work token")
	ErrMessageHash  = errors.New("message hash mismatch")
	ErrProof        = errors.New("proof mismatch")
	ErrInsufficient = errors.New("insufficient proof of work")
)

// Challenge is the hashed part of the token.
type Challenge struct {
	MessageHash string          `json:"messageHash"`
	Nonce       json.RawMessage `json:"nonce"`
}

// Payload is the JWT claim set.
type Payload struct {
	Challenge Challenge `json:"challenge"`
	Proof     string    `json:"proof"`
}

// Gate validates tokens.
type Gate struct {
	prefix string
}

// New returns a gate requiring difficulty leading zeros; values below one select the default.
func New(difficulty int) *Gate {
	if difficulty < 1 {
		difficulty = DefaultDifficulty
	}

	return &Gate{prefix: strings.Repeat("0", difficulty)}
}

// Check validates token against the challenge message it was computed for.
func (g *Gate) Check(token, message string) error {
	tok, err := jwt.ParseSigned(token)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMalformed, err.Error())
	}

	var p Payload

	if err = tok.UnsafeClaimsWithoutVerification(&p); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformed, err.Error())
	}

	return g.CheckPayload(&p, message)
}

// CheckPayload validates an already decoded payload.
func (g *Gate) CheckPayload(p *Payload, message string) error {
	if p.Challenge.MessageHash == "" || len(p.Challenge.Nonce) == 0 || p.Proof == "" {
		return ErrMalformed
	}

	if p.Challenge.MessageHash != MessageHash(message) {
		return ErrMessageHash
	}

	proof, err := ProofOf(p.Challenge)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMalformed, err.Error())
	}

	if proof != p.Proof {
		return ErrProof
	}

	if !strings.HasPrefix(proof, g.prefix) {
		return ErrInsufficient
	}

	return nil
}

// MessageHash returns hex(sha256(message)).
func MessageHash(message string) string {
	sum := sha256.Sum256([]byte(message))

	return hex.EncodeToString(sum[:])
}

// ProofOf returns the proof for a challenge.
func ProofOf(c Challenge) (string, error) {
	b, err := canonical.Marshal(c)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(b)

	return hex.EncodeToString(sum[:]), nil
}
