/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verification

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/zcred/vcs/internal/pkg/log"
	"github.com/zcred/vcs/pkg/event/spi"
)

type eventPayload struct {
	JalID    string                 `json:"jalId"`
	ClientID string                 `json:"clientId"`
	Extra    map[string]interface{} `json:"extra,omitempty"`
}

func (s *Service) sendEvent(ctx context.Context, eventType spi.EventType, sess *ClientSession,
	extra map[string]interface{}) {
	if s.eventSvc == nil {
		return
	}

	payload, err := json.Marshal(&eventPayload{JalID: sess.JalID, ClientID: sess.Client.ID, Extra: extra})
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
