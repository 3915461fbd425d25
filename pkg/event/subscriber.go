/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"fmt"

	"github.com/zcred/vcs/internal/pkg/log"
	"github.com/zcred/vcs/pkg/event/spi"
	"github.com/zcred/vcs/pkg/lifecycle"
)

type (
	eventHandler func(event *spi.Event) error
)

type eventSubscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *spi.Event, error)
}

// Subscriber implements an event subscriber.
type Subscriber struct {
	*lifecycle.Lifecycle

	handler   eventHandler
	eventChan <-chan *spi.Event
}

// NewEventSubscriber returns a new subscriber.
func NewEventSubscriber(sub eventSubscriber, topic string, handler eventHandler) (*Subscriber, error) {
	h := &Subscriber{
		handler: handler,
	}

	h.Lifecycle = lifecycle.New("event-subscriber",
		lifecycle.WithStart(h.start),
	)

	ch, err := sub.Subscribe(context.Background(), topic)
	if err != nil {
		return nil, fmt.Errorf("subscribe to topic [%s]: %w", topic, err)
	}

	h.eventChan = ch

	return h, nil
}

func (h *Subscriber) start() {
	go h.listen()
}

func (h *Subscriber) listen() {
	for e := range h.eventChan {
		if err := h.handler(e); err != nil {
			logger.Error("failed to handle event", log.WithEvent(e), log.WithError(err))
		}
	}

	logger.Info("event channel closed")
}

// LogHandler writes every event to the audit log.
func LogHandler(audit *log.Log) func(*spi.Event) error {
	return func(e *spi.Event) error {
		audit.Info("event", log.WithEvent(e), log.WithSessionID(e.SessionID))

		return nil
	}
}
