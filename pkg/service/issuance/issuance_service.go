/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination issuance_service_mocks_test.go -self_package mocks -package issuance_test -source=issuance_service.go -mock_names sessionStore=MockSessionStore,sessionIdentity=MockSessionIdentity,signatureGate=MockSignatureGate,issuerRegistry=MockIssuerRegistry,credentialComposer=MockCredentialComposer,eventService=MockEventService,metricsProvider=MockMetricsProvider
//go:generate mockgen -destination api_mocks_test.go -self_package mocks -package issuance_test -source=api.go

package issuance

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zcred/vcs/internal/pkg/log"
	"github.com/zcred/vcs/pkg/event/spi"
	"github.com/zcred/vcs/pkg/restapi/resterr"
	"github.com/zcred/vcs/pkg/service/credential"
	"github.com/zcred/vcs/pkg/signature"
)

const referenceSize = 32

var logger = log.New("issuance-service")

type sessionStore interface {
	Set(ctx context.Context, key string, value *Session) error
	Get(ctx context.Context, key string) (*Session, error)
	Find(ctx context.Context, key string) (*Session, bool, error)
	Delete(ctx context.Context, key string) (bool, error)
}

type sessionIdentity interface {
	FromReference(ref string) string
}

type signatureGate interface {
	Supports(idType signature.IDType) bool
	Validate(idType signature.IDType, key string, opts signature.Options) error
	Verify(ctx context.Context, idType signature.IDType, in signature.Input) (bool, error)
}

type issuerRegistry interface {
	GetIssuer(id string) (*Issuer, bool)
}

type credentialComposer interface {
	Compose(ctx context.Context, in *credential.ComposeInput) (*credential.Credential, error)
}

type eventService interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

type metricsProvider interface {
	IssueCredentialTime(value time.Duration)
	KYCWebhookReceived(issuerID, outcome string)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	SessionStore    sessionStore
	SessionIdentity sessionIdentity
	SignatureGate   signatureGate
	Issuers         issuerRegistry
	Composer        credentialComposer
	EventService    eventService
	EventTopic      string
	Metrics         metricsProvider
	// ExternalURL is the public base URL, used as the event source.
	ExternalURL string
}

// Service runs the issuance protocol: challenge, KYC webhook binding and signature gated issue.
type Service struct {
	store       sessionStore
	identity    sessionIdentity
	gate        signatureGate
	issuers     issuerRegistry
	composer    credentialComposer
	eventSvc    eventService
	eventTopic  string
	metrics     metricsProvider
	externalURL string
	now         func() time.Time
	random      func(b []byte) (int, error)
}

// NewService returns a new Service instance.
func NewService(config *Config) *Service {
	return &Service{
		store:       config.SessionStore,
		identity:    config.SessionIdentity,
		gate:        config.SignatureGate,
		issuers:     config.Issuers,
		composer:    config.Composer,
		eventSvc:    config.EventService,
		eventTopic:  config.EventTopic,
		metrics:     config.Metrics,
		externalURL: config.ExternalURL,
		now:         time.Now,
		random:      rand.Read,
	}
}

// Challenge validates the request, starts the KYC procedure and stores a new session.
func (s *Service) Challenge(ctx context.Context, issuerID string, req *ChallengeRequest) (*ChallengeResponse, error) {
	issuer, err := s.issuer(issuerID)
	if err != nil {
		return nil, err
	}

	validUntil, err := s.validateChallenge(issuer, req)
	if err != nil {
		return nil, resterr.NewIssuerError(resterr.BadChallengeRequest, err)
	}

	ref := make([]byte, referenceSize)

	if _, err = s.random(ref); err != nil {
		return nil, resterr.NewSystemError(resterr.IssuanceSvcComponent, "generate-reference", err)
	}

	reference := hex.EncodeToString(ref)

	verifyURL, err := issuer.KYC.InitializeProcedure(ctx, reference)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.KYCProviderComponent, "initialize-procedure", err)
	}

	sess := &Session{
		ID:               s.identity.FromReference(reference),
		IssuerID:         issuerID,
		Reference:        reference,
		ChallengeRequest: *req,
		ValidUntil:       validUntil,
		CreatedAt:        s.now().UTC(),
	}

	sess.Challenge = Challenge{
		Message:   challengeMessage(sess),
		VerifyURL: verifyURL,
	}

	if err = s.store.Set(ctx, sess.ID, sess); err != nil {
		return nil, resterr.NewSystemError(resterr.SessionStoreComponent, "set-session", err)
	}

	logger.Debug("challenge created", log.WithIssuerID(issuerID), log.WithSessionID(sess.ID),
		log.WithIDType(string(req.Subject.ID.Type)))

	s.sendEvent(ctx, spi.IssuerChallengeCreated, sess, nil)

	return &ChallengeResponse{
		SessionID: sess.ID,
		VerifyURL: verifyURL,
		Message:   sess.Challenge.Message,
	}, nil
}

func (s *Service) issuer(issuerID string) (*Issuer, error) {
	issuer, ok := s.issuers.GetIssuer(issuerID)
	if !ok {
		return nil, resterr.NewValidationError(resterr.DoesntExist, "issuerID",
			fmt.Errorf("issuer %s not found", issuerID))
	}

	return issuer, nil
}

func (s *Service) validateChallenge(issuer *Issuer, req *ChallengeRequest) (time.Time, error) {
	id := req.Subject.ID

	if id.Type == "" || id.Key == "" {
		return time.Time{}, errors.New("subject id type and key are required")
	}

	if !s.gate.Supports(id.Type) {
		return time.Time{}, fmt.Errorf("%w: %s", signature.ErrUnsupportedIDType, id.Type)
	}

	if len(issuer.SubjectTypes) > 0 && !containsType(issuer.SubjectTypes, id.Type) {
		return time.Time{}, fmt.Errorf("issuer %s does not accept %s subjects", issuer.ID, id.Type)
	}

	if err := s.gate.Validate(id.Type, id.Key, req.Options); err != nil {
		return time.Time{}, err
	}

	validUntil, err := parseValidUntil(req.ValidUntil)
	if err != nil {
		return time.Time{}, err
	}

	if !validUntil.After(s.now()) {
		return time.Time{}, errors.New("validUntil must be in the future")
	}

	return validUntil, nil
}

func parseValidUntil(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, errors.New("validUntil is required")
	}

	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("validUntil %q is not an ISO-8601 date", v)
	}

	return t, nil
}

func containsType(types []signature.IDType, t signature.IDType) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}

	return false
}

// challengeMessage is the text the subject signs. It names the chain so that a signature made
// for one network does not verify a challenge made for another.
func challengeMessage(sess *Session) string {
	req := sess.ChallengeRequest

	var b strings.Builder

	b.WriteString("zcred issuance challenge\n")
	fmt.Fprintf(&b, "issuer: %s\n", sess.IssuerID)
	fmt.Fprintf(&b, "subject: %s:%s\n", req.Subject.ID.Type, req.Subject.ID.Key)

	if req.Options.ChainID != "" {
		fmt.Fprintf(&b, "chain: %s\n", req.Options.ChainID)
	}

	if req.Options.Network != "" {
		fmt.Fprintf(&b, "network: %s\n", req.Options.Network)
	}

	fmt.Fprintf(&b, "valid until: %s\n", sess.ValidUntil.Format(time.RFC3339))
	fmt.Fprintf(&b, "session: %s", sess.ID)

	return b.String()
}
