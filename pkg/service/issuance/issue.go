/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zcred/vcs/internal/pkg/log"
	"github.com/zcred/vcs/pkg/event/spi"
	"github.com/zcred/vcs/pkg/restapi/resterr"
	"github.com/zcred/vcs/pkg/service/credential"
	"github.com/zcred/vcs/pkg/signature"
	"github.com/zcred/vcs/pkg/storage"
)

var errVerificationNotPassed = errors.New("verification not passed")

// CanIssue reports whether the KYC verdict has arrived. A negative verdict ends the session.
func (s *Service) CanIssue(ctx context.Context, issuerID, sessionID string) (bool, error) {
	sess, err := s.session(ctx, issuerID, sessionID)
	if err != nil {
		return false, err
	}

	switch sess.State() {
	case StateChallenged:
		return false, nil
	case StateUnverified:
		return false, s.deny(ctx, sess)
	default:
		return true, nil
	}
}

// Issue checks the subject signature, then the KYC verdict, and composes the credential.
// The session is consumed by the first successful call.
func (s *Service) Issue(ctx context.Context, issuerID, sessionID, sig string) (*credential.Credential, error) {
	st := time.Now()

	issuer, err := s.issuer(issuerID)
	if err != nil {
		return nil, err
	}

	sess, err := s.session(ctx, issuerID, sessionID)
	if err != nil {
		return nil, err
	}

	if err = s.verifySignature(ctx, sess, sig); err != nil {
		return nil, err
	}

	switch sess.State() {
	case StateChallenged:
		return nil, resterr.NewIssuerError(resterr.IssueDenied, errors.New("kyc verification not finished"))
	case StateUnverified:
		return nil, s.deny(ctx, sess)
	}

	attributes, err := issuer.Mapper.Map(&credential.MapInput{
		Subject:       sess.ChallengeRequest.Subject.ID,
		KYCAttributes: sess.WebhookResult.Attributes,
		ValidUntil:    sess.ValidUntil,
		IssuanceDate:  s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, credential.ErrMissingAttribute) {
			return nil, resterr.NewIssuerError(resterr.IssueDenied, err)
		}

		return nil, resterr.NewSystemError(resterr.CredentialSvcComponent, "map-attributes", err)
	}

	cred, err := s.composer.Compose(ctx, &credential.ComposeInput{
		Issuer:        credential.Issuer{Type: issuer.ID, URI: issuer.URI},
		DefinitionRef: issuer.DefinitionRef,
		Attributes:    attributes,
		ProofTypes:    issuer.ProofTypes,
		ACI:           issuer.ACI,
	})
	if err != nil {
		return nil, resterr.NewSystemError(resterr.CredentialSvcComponent, "compose", err)
	}

	deleted, err := s.store.Delete(ctx, sess.ID)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.SessionStoreComponent, "delete-session", err)
	}

	// a concurrent Issue consumed the session first
	if !deleted {
		return nil, resterr.NewIssuerError(resterr.NoSession, fmt.Errorf("session %s not found", sess.ID))
	}

	s.metrics.IssueCredentialTime(time.Since(st))

	logger.Info("credential issued", log.WithIssuerID(issuerID), log.WithSessionID(sess.ID),
		log.WithDuration(time.Since(st)))

	s.sendEvent(ctx, spi.IssuerCredentialIssued, sess, map[string]interface{}{
		"proofTypes": issuer.ProofTypes,
	})

	return cred, nil
}

func (s *Service) session(ctx context.Context, issuerID, sessionID string) (*Session, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return nil, resterr.NewIssuerError(resterr.NoSession, fmt.Errorf("session %s not found", sessionID))
		}

		return nil, resterr.NewSystemError(resterr.SessionStoreComponent, "get-session", err)
	}

	if sess.IssuerID != issuerID {
		return nil, resterr.NewIssuerError(resterr.NoSession, fmt.Errorf("session %s not found", sessionID))
	}

	return sess, nil
}

func (s *Service) verifySignature(ctx context.Context, sess *Session, sig string) error {
	req := sess.ChallengeRequest

	ok, err := s.gate.Verify(ctx, req.Subject.ID.Type, signature.Input{
		Signature: sig,
		PublicKey: req.Subject.ID.Key,
		Message:   sess.Challenge.Message,
		Options:   req.Options,
	})
	if err != nil {
		if errors.Is(err, signature.ErrInvalidKey) || errors.Is(err, signature.ErrInvalidOptions) ||
			errors.Is(err, signature.ErrUnsupportedIDType) {
			return resterr.NewIssuerError(resterr.BadSignature, err)
		}

		return resterr.NewSystemError(resterr.SignatureGateComponent, "verify", err)
	}

	if !ok {
		return resterr.NewIssuerError(resterr.BadSignature, errors.New("signature does not match challenge"))
	}

	return nil
}

func (s *Service) deny(ctx context.Context, sess *Session) error {
	if _, err := s.store.Delete(ctx, sess.ID); err != nil {
		return resterr.NewSystemError(resterr.SessionStoreComponent, "delete-session", err)
	}

	logger.Info("issuance denied", log.WithIssuerID(sess.IssuerID), log.WithSessionID(sess.ID))

	s.sendEvent(ctx, spi.IssuerVerificationDenied, sess, nil)

	return resterr.NewIssuerError(resterr.IssueDenied, errVerificationNotPassed)
}
