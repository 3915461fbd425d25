/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

// ProtocolCode is an issuance or verification protocol failure.
type ProtocolCode string

// Issuer exceptions.
const (
	BadChallengeRequest ProtocolCode = "bad_challenge_request"
	BadSignature        ProtocolCode = "bad_signature"
	IssueDenied         ProtocolCode = "issue_denied"
	NoSession           ProtocolCode = "no_session"
)

// Verifier exceptions.
const (
	InvalidProof ProtocolCode = "invalid_proof"
	BadPoW       ProtocolCode = "bad_pow"
	BadJAL       ProtocolCode = "bad_jal"
)

// Exception kinds.
const (
	IssuerException   = "IssuerException"
	VerifierException = "VerifierException"
)

// ProtocolError carries a protocol code from the services to the REST layer.
type ProtocolError struct {
	Kind string
	Code ProtocolCode
	Err  error
}

// NewIssuerError returns an IssuerException.
func NewIssuerError(code ProtocolCode, err error) *ProtocolError {
	return &ProtocolError{Kind: IssuerException, Code: code, Err: err}
}

// NewVerifierError returns a VerifierException.
func NewVerifierError(code ProtocolCode, err error) *ProtocolError {
	return &ProtocolError{Kind: VerifierException, Code: code, Err: err}
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s[%s]: %v", e.Kind, e.Code, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// HTTPCodeMsg maps the code to a status; a missing session is 404, any other protocol failure 400.
func (e *ProtocolError) HTTPCodeMsg() (int, interface{}) {
	status := http.StatusBadRequest
	if e.Code == NoSession {
		status = http.StatusNotFound
	}

	return status, map[string]interface{}{
		"type":    e.Kind,
		"code":    string(e.Code),
		"message": fmt.Sprint(e.Err),
	}
}

// IsProtocolError reports whether err carries the given protocol code.
func IsProtocolError(err error, code ProtocolCode) bool {
	var pe *ProtocolError

	return errors.As(err, &pe) && pe.Code == code
}
