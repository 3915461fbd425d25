/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/zcred/vcs/pkg/event/spi"
)

type redisClient interface {
	API() redis.UniversalClient
}

// RedisPublisher publishes events on Redis pub/sub channels named after the topic.
type RedisPublisher struct {
	client redisClient
	prefix string
}

// NewRedisPublisher returns a publisher; channels are "<prefix><topic>".
func NewRedisPublisher(client redisClient, prefix string) *RedisPublisher {
	return &RedisPublisher{client: client, prefix: prefix}
}

// Publish implements the publisher contract.
func (p *RedisPublisher) Publish(ctx context.Context, topic string, messages ...*spi.Event) error {
	for _, m := range messages {
		b, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("marshal event: %w", err)
		}

		if err = p.client.API().Publish(ctx, p.prefix+topic, b).Err(); err != nil {
			return fmt.Errorf("publish event %s: %w", m.ID, err)
		}
	}

	return nil
}

// Fanout publishes to every publisher, returning the first error.
type Fanout []publisher

type publisher interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

// Publish implements the publisher contract.
func (f Fanout) Publish(ctx context.Context, topic string, messages ...*spi.Event) error {
	for _, p := range f {
		if err := p.Publish(ctx, topic, messages...); err != nil {
			return err
		}
	}

	return nil
}
