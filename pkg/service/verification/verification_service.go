/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination verification_service_mocks_test.go -self_package mocks -package verification_test -source=verification_service.go -mock_names sessionStore=MockSessionStore,challengeStore=MockChallengeStore,sessionIdentity=MockSessionIdentity,accessTokens=MockAccessTokens,jalRegistry=MockJALRegistry,zkVerifier=MockZKVerifier,signatureVerifier=MockSignatureVerifier,resultStore=MockResultStore,responseSigner=MockResponseSigner,powGate=MockPoWGate,eventService=MockEventService,metricsProvider=MockMetricsProvider

package verification

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/zcred/vcs/internal/pkg/log"
	"github.com/zcred/vcs/pkg/event/spi"
	"github.com/zcred/vcs/pkg/jal"
	"github.com/zcred/vcs/pkg/restapi/resterr"
	"github.com/zcred/vcs/pkg/signature"
	"github.com/zcred/vcs/pkg/storage"
)

const (
	challengeKeyPrefix = "challenge:"
	nonceSize          = 16
)

var logger = log.New("verification-service")

type sessionStore interface {
	SetIfAbsent(ctx context.Context, key string, value *ClientSession) (bool, error)
	Get(ctx context.Context, key string) (*ClientSession, error)
	Delete(ctx context.Context, key string) (bool, error)
}

type challengeStore interface {
	SetIfAbsent(ctx context.Context, key string, value string) (bool, error)
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) (bool, error)
}

type sessionIdentity interface {
	FromContent(v interface{}) (string, error)
}

type accessTokens interface {
	FromReference(ref string) string
}

type jalRegistry interface {
	Get(ctx context.Context, id string) (*jal.Entry, error)
}

type zkVerifier interface {
	Verify(ctx context.Context, program, provingResult json.RawMessage) (bool, error)
}

type signatureVerifier interface {
	Verify(ctx context.Context, idType signature.IDType, in signature.Input) (bool, error)
}

type resultStore interface {
	Put(ctx context.Context, result *Result) error
}

type responseSigner interface {
	Sign(payload []byte) (string, error)
}

type powGate interface {
	Check(token, message string) error
}

type eventService interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

type metricsProvider interface {
	CompleteVerificationTime(value time.Duration)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	SessionStore    sessionStore
	ChallengeStore  challengeStore
	SessionIdentity sessionIdentity
	AccessTokens    accessTokens
	JALRegistry     jalRegistry
	ZKVerifier      zkVerifier
	SignatureGate   signatureVerifier
	ResultStore     resultStore
	Signer          responseSigner
	PoW             powGate
	EventService    eventService
	EventTopic      string
	Metrics         metricsProvider
	// ExternalURL is the public base URL the verifier endpoints are reachable at.
	ExternalURL string
}

// Service runs the verification protocol.
type Service struct {
	sessions    sessionStore
	challenges  challengeStore
	identity    sessionIdentity
	tokens      accessTokens
	jal         jalRegistry
	zk          zkVerifier
	gate        signatureVerifier
	results     resultStore
	signer      responseSigner
	pow         powGate
	eventSvc    eventService
	eventTopic  string
	metrics     metricsProvider
	externalURL string
	now         func() time.Time
	newID       func() string
}

// NewService returns a new Service instance.
func NewService(config *Config) *Service {
	return &Service{
		sessions:    config.SessionStore,
		challenges:  config.ChallengeStore,
		identity:    config.SessionIdentity,
		tokens:      config.AccessTokens,
		jal:         config.JALRegistry,
		zk:          config.ZKVerifier,
		gate:        config.SignatureGate,
		results:     config.ResultStore,
		signer:      config.Signer,
		pow:         config.PoW,
		eventSvc:    config.EventService,
		eventTopic:  config.EventTopic,
		metrics:     config.Metrics,
		externalURL: strings.TrimSuffix(config.ExternalURL, "/"),
		now:         time.Now,
		newID:       newResultID,
	}
}

// InitSession authenticates the relying party and opens a session. Identical requests from the
// same client map to the same session; the first one stored wins.
func (s *Service) InitSession(ctx context.Context, jalID, clientJWS string,
	req *InitSessionRequest) (*InitSessionResponse, error) {
	client, err := AuthenticateClient(clientJWS)
	if err != nil {
		return nil, resterr.NewUnauthorizedError(err)
	}

	if err = validateInit(req); err != nil {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "session", err)
	}

	if _, err = s.program(ctx, jalID); err != nil {
		return nil, err
	}

	sess := &ClientSession{
		JalID:               jalID,
		Subject:             req.Subject,
		Issuer:              req.Issuer,
		RedirectURL:         req.RedirectURL,
		WebhookURL:          req.WebhookURL,
		CredentialHolderURL: req.CredentialHolderURL,
		Client:              *client,
	}

	id, err := s.identity.FromContent(sess)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.VerificationSvcComponent, "derive-session-id", err)
	}

	sess.ID = id

	created, err := s.sessions.SetIfAbsent(ctx, id, sess)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.SessionStoreComponent, "set-session", err)
	}

	if created {
		logger.Debug("verification session created", log.WithJalID(jalID), log.WithSessionID(id))

		s.sendEvent(ctx, spi.VerifierSessionInitiated, sess, nil)
	}

	redirect, err := s.holderRedirect(sess)
	if err != nil {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "credentialHolderURL", err)
	}

	return &InitSessionResponse{SessionID: id, RedirectURL: redirect}, nil
}

func validateInit(req *InitSessionRequest) error {
	switch {
	case req.Subject.ID.Type == "" || req.Subject.ID.Key == "":
		return errors.New("subject id type and key are required")
	case req.Issuer.Type == "" || req.Issuer.URI == "":
		return errors.New("issuer type and uri are required")
	}

	for name, u := range map[string]string{
		"redirectURL":         req.RedirectURL,
		"credentialHolderURL": req.CredentialHolderURL,
		"webhookURL":          req.WebhookURL,
	} {
		if u == "" && name == "webhookURL" {
			continue
		}

		if err := checkURL(u); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}

	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("%q is not an absolute http(s) url", raw)
	}

	return nil
}

func (s *Service) holderRedirect(sess *ClientSession) (string, error) {
	proposal := s.externalURL + "/verifier/" + url.PathEscape(sess.JalID) + "/proposal?" +
		url.Values{"sessionId": {sess.ID}}.Encode()

	return withQuery(sess.CredentialHolderURL, url.Values{"proposalURL": {proposal}})
}

func withQuery(raw string, params url.Values) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	q := u.Query()
	for k, v := range params {
		q[k] = v
	}

	u.RawQuery = q.Encode()

	return u.String(), nil
}

// GetProposal returns what the holder has to prove. The challenge message is created on the
// first call and reused by later ones.
func (s *Service) GetProposal(ctx context.Context, jalID, sessionID string) (*Proposal, error) {
	sess, err := s.session(ctx, jalID, sessionID)
	if err != nil {
		return nil, err
	}

	entry, err := s.program(ctx, jalID)
	if err != nil {
		return nil, err
	}

	message, err := s.challenge(ctx, sess)
	if err != nil {
		return nil, err
	}

	s.sendEvent(ctx, spi.VerifierProposalRequested, sess, nil)

	return &Proposal{
		Program: entry.Program,
		Selector: map[string]interface{}{
			"meta": map[string]interface{}{
				"issuer": map[string]interface{}{
					"type": sess.Issuer.Type,
					"uri":  sess.Issuer.URI,
				},
			},
			"attributes": map[string]interface{}{
				"subject": map[string]interface{}{
					"id": map[string]interface{}{
						"type": string(sess.Subject.ID.Type),
						"key":  sess.Subject.ID.Key,
					},
				},
			},
		},
		Challenge:   ChallengeMessage{Message: message},
		AccessToken: s.tokens.FromReference(sess.ID),
		VerifierURL: s.externalURL + "/verifier/" + url.PathEscape(jalID) + "/verify?" +
			url.Values{"sessionId": {sess.ID}}.Encode(),
		Comment: entry.Comment,
	}, nil
}

func (s *Service) challenge(ctx context.Context, sess *ClientSession) (string, error) {
	key := challengeKeyPrefix + sess.ID

	message, err := s.challenges.Get(ctx, key)
	if err == nil {
		return message, nil
	}

	if !errors.Is(err, storage.ErrDataNotFound) {
		return "", resterr.NewSystemError(resterr.SessionStoreComponent, "get-challenge", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err = rand.Read(nonce); err != nil {
		return "", resterr.NewSystemError(resterr.VerificationSvcComponent, "generate-nonce", err)
	}

	message = fmt.Sprintf("zcred verification challenge\nverifier: %s\njal: %s\nsession: %s\nnonce: %s",
		s.externalURL, sess.JalID, sess.ID, hex.EncodeToString(nonce))

	created, err := s.challenges.SetIfAbsent(ctx, key, message)
	if err != nil {
		return "", resterr.NewSystemError(resterr.SessionStoreComponent, "set-challenge", err)
	}

	if created {
		return message, nil
	}

	// a concurrent proposal request stored its message first
	message, err = s.challenges.Get(ctx, key)
	if err != nil {
		return "", resterr.NewSystemError(resterr.SessionStoreComponent, "get-challenge", err)
	}

	return message, nil
}

func (s *Service) session(ctx context.Context, jalID, sessionID string) (*ClientSession, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return nil, resterr.NewVerifierError(resterr.NoSession, fmt.Errorf("session %s not found", sessionID))
		}

		return nil, resterr.NewSystemError(resterr.SessionStoreComponent, "get-session", err)
	}

	if sess.JalID != jalID {
		return nil, resterr.NewVerifierError(resterr.NoSession,
			fmt.Errorf("session %s does not belong to jal %s", sessionID, jalID))
	}

	return sess, nil
}

func (s *Service) program(ctx context.Context, jalID string) (*jal.Entry, error) {
	entry, err := s.jal.Get(ctx, jalID)
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return nil, resterr.NewVerifierError(resterr.BadJAL, fmt.Errorf("jal %s not registered", jalID))
		}

		return nil, resterr.NewSystemError(resterr.JALRegistryComponent, "get-jal", err)
	}

	return entry, nil
}
