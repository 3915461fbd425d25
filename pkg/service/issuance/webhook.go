/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuance

import (
	"context"
	"errors"

	"github.com/jinzhu/copier"

	"github.com/zcred/vcs/internal/pkg/log"
	"github.com/zcred/vcs/pkg/event/spi"
	"github.com/zcred/vcs/pkg/kyc"
	"github.com/zcred/vcs/pkg/restapi/resterr"
)

const (
	webhookBound   = "bound"
	webhookDropped = "dropped"
	webhookInterim = "interim"
)

// HandleWebhook authenticates a KYC provider event and binds its verdict to the session the
// reference points at. Events for unknown sessions or already decided sessions are dropped.
func (s *Service) HandleWebhook(ctx context.Context, issuerID string, req *kyc.WebhookRequest) error {
	issuer, err := s.issuer(issuerID)
	if err != nil {
		return err
	}

	result, err := issuer.KYC.HandleWebhook(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, kyc.ErrNotFinal):
			s.metrics.KYCWebhookReceived(issuerID, webhookInterim)

			return nil
		case errors.Is(err, kyc.ErrUnauthorized):
			return resterr.NewUnauthorizedError(err)
		case errors.Is(err, kyc.ErrMalformed):
			return resterr.NewCustomError(resterr.BadRequest, err)
		default:
			return resterr.NewSystemError(resterr.KYCProviderComponent, "handle-webhook", err)
		}
	}

	id := s.identity.FromReference(result.Reference)

	sess, ok, err := s.store.Find(ctx, id)
	if err != nil {
		return resterr.NewSystemError(resterr.SessionStoreComponent, "find-session", err)
	}

	switch {
	case !ok:
		logger.Info("webhook dropped: no session", log.WithIssuerID(issuerID), log.WithSessionID(id))
	case sess.IssuerID != issuerID:
		logger.Warn("webhook dropped: issuer mismatch", log.WithIssuerID(issuerID), log.WithSessionID(id))
	case sess.WebhookResult != nil:
		logger.Info("webhook dropped: verdict already bound", log.WithIssuerID(issuerID),
			log.WithSessionID(id))
	default:
		return s.bindResult(ctx, sess, result)
	}

	s.metrics.KYCWebhookReceived(issuerID, webhookDropped)
	s.sendEvent(ctx, spi.IssuerWebhookDropped, &Session{ID: id, IssuerID: issuerID}, nil)

	return nil
}

func (s *Service) bindResult(ctx context.Context, sess *Session, result *kyc.WebhookResult) error {
	bound := &Session{}

	if err := copier.Copy(bound, sess); err != nil {
		return resterr.NewSystemError(resterr.IssuanceSvcComponent, "copy-session", err)
	}

	bound.WebhookResult = result

	if err := s.store.Set(ctx, bound.ID, bound); err != nil {
		return resterr.NewSystemError(resterr.SessionStoreComponent, "set-session", err)
	}

	logger.Debug("kyc verdict bound", log.WithIssuerID(bound.IssuerID), log.WithSessionID(bound.ID))

	s.metrics.KYCWebhookReceived(bound.IssuerID, webhookBound)
	s.sendEvent(ctx, spi.IssuerWebhookBound, bound, map[string]interface{}{
		"verified": result.Verified,
	})

	return nil
}
