/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuance

import (
	"context"
	"time"

	"github.com/zcred/vcs/pkg/kyc"
	"github.com/zcred/vcs/pkg/service/credential"
	"github.com/zcred/vcs/pkg/signature"
)

// Subject of a challenge.
type Subject struct {
	ID credential.SubjectID `json:"id"`
}

// ChallengeRequest starts an issuance.
type ChallengeRequest struct {
	Subject    Subject           `json:"subject"`
	ValidUntil string            `json:"validUntil"`
	Options    signature.Options `json:"options,omitempty"`
}

// Challenge is what the subject signs and where it passes KYC.
type Challenge struct {
	Message   string `json:"message"`
	VerifyURL string `json:"verifyURL"`
}

// ChallengeResponse is returned by Service.Challenge.
type ChallengeResponse struct {
	SessionID string `json:"sessionId"`
	VerifyURL string `json:"verifyURL"`
	Message   string `json:"message"`
}

// Session is the issuance state. Its ID is derived from Reference and never indexed separately.
type Session struct {
	ID               string             `json:"id"`
	IssuerID         string             `json:"issuerId"`
	Reference        string             `json:"reference"`
	ChallengeRequest ChallengeRequest   `json:"challengeRequest"`
	ValidUntil       time.Time          `json:"validUntil"`
	Challenge        Challenge          `json:"challenge"`
	WebhookResult    *kyc.WebhookResult `json:"webhookResult,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
}

// State is the derived position of a session in the issuance flow.
type State string

const (
	StateChallenged State = "challenged"
	StateVerified   State = "kyc-verified"
	StateUnverified State = "kyc-unverified"
)

// State derives the session state.
func (s *Session) State() State {
	switch {
	case s.WebhookResult == nil:
		return StateChallenged
	case s.WebhookResult.Verified:
		return StateVerified
	default:
		return StateUnverified
	}
}

// KYCProvider is the KYC collaborator of an issuer.
type KYCProvider interface {
	InitializeProcedure(ctx context.Context, reference string) (string, error)
	HandleWebhook(ctx context.Context, req *kyc.WebhookRequest) (*kyc.WebhookResult, error)
}

// Issuer binds an issuer profile to its collaborators.
type Issuer struct {
	ID            string
	Name          string
	URI           string
	DefinitionRef string
	SubjectTypes  []signature.IDType
	KYC           KYCProvider
	Mapper        credential.AttributeMapper
	ProofTypes    []string
	ACI           bool
}

// Issuers is an in memory issuer registry.
type Issuers map[string]*Issuer

// GetIssuer returns the issuer with id.
func (r Issuers) GetIssuer(id string) (*Issuer, bool) {
	iss, ok := r[id]

	return iss, ok
}

// ServiceInterface defines issuance service interface.
type ServiceInterface interface {
	Challenge(ctx context.Context, issuerID string, req *ChallengeRequest) (*ChallengeResponse, error)
	HandleWebhook(ctx context.Context, issuerID string, req *kyc.WebhookRequest) error
	CanIssue(ctx context.Context, issuerID, sessionID string) (bool, error)
	Issue(ctx context.Context, issuerID, sessionID, signature string) (*credential.Credential, error)
}
