/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"sync"

	"github.com/zcred/vcs/internal/pkg/log"
	"github.com/zcred/vcs/pkg/event/spi"
	"github.com/zcred/vcs/pkg/lifecycle"
)

var logger = log.New("event-bus")

const queueSize = 250

type batch struct {
	topic  string
	events []*spi.Event
}

// Bus delivers events to the subscribers of this process only. A single
// dispatcher preserves publish order per topic. Use RedisPublisher to reach
// other processes.
type Bus struct {
	*lifecycle.Lifecycle

	mu     sync.RWMutex
	topics map[string][]chan *spi.Event

	queue chan batch
	quit  chan struct{}
	done  chan struct{}
}

// NewEventBus returns a started Bus.
func NewEventBus() *Bus {
	b := &Bus{
		topics: map[string][]chan *spi.Event{},
		queue:  make(chan batch, queueSize),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	b.Lifecycle = lifecycle.New("event-bus", lifecycle.WithStop(b.shutdown))

	go b.dispatch()

	b.Start()

	return b
}

// Close stops dispatching and closes every subscriber channel.
func (b *Bus) Close() error {
	b.Stop()

	return nil
}

// Subscribe returns a channel receiving a copy of every event published to
// topic. The channel is closed by Close.
func (b *Bus) Subscribe(_ context.Context, topic string) (<-chan *spi.Event, error) {
	if !b.Started() {
		return nil, lifecycle.ErrNotStarted
	}

	ch := make(chan *spi.Event, queueSize)

	b.mu.Lock()
	b.topics[topic] = append(b.topics[topic], ch)
	b.mu.Unlock()

	logger.Debug("subscribed", log.WithTopic(topic))

	return ch, nil
}

// Publish queues events for delivery. It blocks while the queue is full, until
// ctx is done or the bus is closed.
func (b *Bus) Publish(ctx context.Context, topic string, events ...*spi.Event) error {
	if !b.Started() {
		return lifecycle.ErrNotStarted
	}

	select {
	case b.queue <- batch{topic: topic, events: events}:
		return nil
	case <-b.quit:
		return lifecycle.ErrNotStarted
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bus) dispatch() {
	defer close(b.done)

	for {
		select {
		case next := <-b.queue:
			b.deliver(next)
		case <-b.quit:
			return
		}
	}
}

func (b *Bus) deliver(next batch) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	subs := b.topics[next.topic]
	if len(subs) == 0 {
		logger.Debug("no subscribers", log.WithTopic(next.topic))

		return
	}

	for _, e := range next.events {
		for _, ch := range subs {
			ch <- e.Copy()
		}
	}
}

func (b *Bus) shutdown() {
	close(b.quit)
	<-b.done

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, subs := range b.topics {
		for _, ch := range subs {
			close(ch)
		}
	}

	b.topics = nil

	logger.Info("event bus stopped")
}
