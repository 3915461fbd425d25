/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package spi

import (
	"time"
)

// Topics.
const (
	IssuerEventTopic   = "zcred-issuer"
	VerifierEventTopic = "zcred-verifier"
)

// EventType names what happened. Issuer types go to IssuerEventTopic and
// verifier types to VerifierEventTopic.
type EventType string

const (
	IssuerChallengeCreated   = EventType("issuer_challenge_created")
	IssuerWebhookBound       = EventType("issuer_webhook_bound")
	IssuerWebhookDropped     = EventType("issuer_webhook_dropped")
	IssuerVerificationDenied = EventType("issuer_verification_denied")
	IssuerCredentialIssued   = EventType("issuer_credential_issued")

	VerifierSessionInitiated      = EventType("verifier_session_initiated")
	VerifierProposalRequested     = EventType("verifier_proposal_requested")
	VerifierVerificationSucceeded = EventType("verifier_verification_succeeded")
	VerifierExceptionReported     = EventType("verifier_exception_reported")
)

// Payload is the JSON encoded event data.
type Payload []byte

// Event is a CloudEvents 1.0 shaped audit record. SessionID and Subject are
// zcred extensions.
type Event struct {
	SpecVersion     string    `json:"specVersion"`
	ID              string    `json:"id"`
	Source          string    `json:"source"`
	Type            EventType `json:"type"`
	Time            time.Time `json:"time"`
	DataContentType string    `json:"dataContentType,omitempty"`
	Data            []byte    `json:"data,omitempty"`
	SessionID       string    `json:"sessionId,omitempty"`
	Subject         string    `json:"subject,omitempty"`
}

// Copy returns a deep copy so subscribers cannot share Data.
func (m *Event) Copy() *Event {
	c := *m

	if m.Data != nil {
		c.Data = append([]byte(nil), m.Data...)
	}

	return &c
}

// NewEventWithPayload is NewEvent with JSON data attached.
func NewEventWithPayload(id, source string, eventType EventType, payload Payload) *Event {
	e := NewEvent(id, source, eventType)
	e.Data = payload
	e.DataContentType = "application/json"

	return e
}

// NewEvent returns an event stamped with the current UTC time.
func NewEvent(id, source string, eventType EventType) *Event {
	return &Event{
		SpecVersion: "1.0",
		ID:          id,
		Source:      source,
		Type:        eventType,
		Time:        time.Now().UTC(),
	}
}
