/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/zcred/vcs/pkg/service/credential"
	"github.com/zcred/vcs/pkg/signature"
)

// Subject whose credential is to be proven.
type Subject struct {
	ID credential.SubjectID `json:"id"`
}

// InitSessionRequest is sent by a relying party to start a verification.
type InitSessionRequest struct {
	Subject             Subject           `json:"subject"`
	Issuer              credential.Issuer `json:"issuer"`
	RedirectURL         string            `json:"redirectURL"`
	WebhookURL          string            `json:"webhookURL,omitempty"`
	CredentialHolderURL string            `json:"credentialHolderURL"`
}

// Client identifies the relying party by its key.
type Client struct {
	ID string `json:"id"`
}

// ClientSession is the verification state. Its ID is derived from the rest of its content.
type ClientSession struct {
	ID                  string            `json:"id,omitempty"`
	JalID               string            `json:"jalId"`
	Subject             Subject           `json:"subject"`
	Issuer              credential.Issuer `json:"issuer"`
	RedirectURL         string            `json:"redirectURL"`
	WebhookURL          string            `json:"webhookURL,omitempty"`
	CredentialHolderURL string            `json:"credentialHolderURL"`
	Client              Client            `json:"client"`
}

// InitSessionResponse points the subject at its credential holder.
type InitSessionResponse struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"redirectURL"`
}

// ChallengeMessage is what the subject signs along with the proof.
type ChallengeMessage struct {
	Message string `json:"message"`
}

// Proposal tells the credential holder what to prove and where to send the result.
type Proposal struct {
	Program     json.RawMessage        `json:"program"`
	Selector    map[string]interface{} `json:"selector"`
	Challenge   ChallengeMessage       `json:"challenge"`
	AccessToken string                 `json:"accessToken"`
	VerifierURL string                 `json:"verifierURL"`
	Comment     string                 `json:"comment,omitempty"`
}

// ProvingResult is a zero-knowledge proof over a credential plus the subject signature over
// the challenge message.
type ProvingResult struct {
	Proof           string          `json:"proof"`
	VerificationKey string          `json:"verificationKey,omitempty"`
	PublicInput     json.RawMessage `json:"publicInput"`
	PublicOutput    json.RawMessage `json:"publicOutput,omitempty"`
	Message         string          `json:"message"`
	Signature       string          `json:"signature"`

	// SignatureOptions are the scheme options of Signature, e.g. the ethereum chain id.
	SignatureOptions signature.Options `json:"signatureOptions,omitempty"`
}

// Exception reports that the subject cannot or will not prove.
type Exception struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// CompleteRequest carries exactly one of ProvingResult and Exception. An exception needs a
// proof of work token.
type CompleteRequest struct {
	ProvingResult *ProvingResult `json:"provingResult,omitempty"`
	Exception     *Exception     `json:"exception,omitempty"`
	PoWToken      string         `json:"powToken,omitempty"`
}

// Status of a completed verification.
type Status string

const (
	StatusSuccess   Status = "success"
	StatusException Status = "exception"
)

// Result is the immutable record of a completed verification.
type Result struct {
	ID            string         `json:"id"`
	SessionID     string         `json:"sessionId"`
	JalID         string         `json:"jalId"`
	ClientID      string         `json:"clientId"`
	Subject       Subject        `json:"subject"`
	Status        Status         `json:"status"`
	ProvingResult *ProvingResult `json:"provingResult,omitempty"`
	Exception     *Exception     `json:"exception,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// SendBody is delivered to the relying party.
type SendBody struct {
	Status        Status         `json:"status"`
	SessionID     string         `json:"sessionId"`
	ResultID      string         `json:"resultId"`
	ProvingResult *ProvingResult `json:"provingResult,omitempty"`
	Exception     *Exception     `json:"exception,omitempty"`
}

// CompletePayload is the signed content of CompleteResponse.
type CompletePayload struct {
	WebhookURL  string   `json:"webhookURL,omitempty"`
	RedirectURL string   `json:"redirectURL"`
	SendBody    SendBody `json:"sendBody"`
}

// CompleteResponse holds the compact JWS over the canonical CompletePayload.
type CompleteResponse struct {
	JWS string `json:"jws"`
}

// ServiceInterface defines verification service interface.
type ServiceInterface interface {
	InitSession(ctx context.Context, jalID, clientJWS string, req *InitSessionRequest) (*InitSessionResponse, error)
	GetProposal(ctx context.Context, jalID, sessionID string) (*Proposal, error)
	Complete(ctx context.Context, jalID, sessionID, accessToken string, req *CompleteRequest) (*CompleteResponse, error)
}
