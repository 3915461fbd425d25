/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuance

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/zcred/vcs/internal/pkg/log"
	"github.com/zcred/vcs/pkg/event/spi"
)

type eventPayload struct {
	IssuerID string                 `json:"issuerId"`
	IDType   string                 `json:"idType,omitempty"`
	Extra    map[string]interface{} `json:"extra,omitempty"`
}

// sendEvent publishes a lifecycle event. Publish failures are logged and never fail the request.
func (s *Service) sendEvent(ctx context.Context, eventType spi.EventType, sess *Session,
	extra map[string]interface{}) {
	if s.eventSvc == nil {
		return
	}

	payload, err := json.Marshal(&eventPayload{
		IssuerID: sess.IssuerID,
		IDType:   string(sess.ChallengeRequest.Subject.ID.Type),
		Extra:    extra,
	})
	if err != nil {
		logger.Error("marshal event payload", log.WithError(err))

		return
	}

	e := spi.NewEventWithPayload(uuid.NewString(), s.externalURL, eventType, payload)
	e.SessionID = sess.ID

	if err = s.eventSvc.Publish(ctx, s.eventTopic, e); err != nil {
		logger.Warn("publish event", log.WithTopic(s.eventTopic), log.WithError(err))
	}
}
