/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/zcred/vcs/pkg/dataprotect"
	"github.com/zcred/vcs/pkg/storage"
	"github.com/zcred/vcs/pkg/storage/redis"
)

// Store keeps JSON encoded values in Redis under "<prefix>-<key>" with a PX expiry. Redis
// enforces the TTL, so expired keys are never returned. DEL answers 1 to exactly one caller,
// which gives Delete its exclusive contract across service instances.
type Store[V any] struct {
	redisClient *redis.Client
	keyPrefix   string
	ttl         time.Duration
	protector   dataprotect.Protector
}

// Opt configures Store.
type Opt[V any] func(s *Store[V])

// WithProtector seals values at rest.
func WithProtector[V any](p dataprotect.Protector) Opt[V] {
	return func(s *Store[V]) {
		s.protector = p
	}
}

// New creates a Store.
func New[V any](redisClient *redis.Client, keyPrefix string, ttl time.Duration, opts ...Opt[V]) *Store[V] {
	s := &Store[V]{
		redisClient: redisClient,
		keyPrefix:   keyPrefix,
		ttl:         ttl,
		protector:   dataprotect.NewNilDataProtector(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store[V]) Set(ctx context.Context, key string, value V) error {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	redisKey := s.resolveRedisKey(key)

	b, err := s.encode(ctxWithTimeout, redisKey, value)
	if err != nil {
		return err
	}

	if err = s.redisClient.API().Set(ctxWithTimeout, redisKey, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}

	return nil
}

func (s *Store[V]) SetIfAbsent(ctx context.Context, key string, value V) (bool, error) {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	redisKey := s.resolveRedisKey(key)

	b, err := s.encode(ctxWithTimeout, redisKey, value)
	if err != nil {
		return false, err
	}

	stored, err := s.redisClient.API().SetNX(ctxWithTimeout, redisKey, b, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("session setnx: %w", err)
	}

	return stored, nil
}

func (s *Store[V]) Get(ctx context.Context, key string) (V, error) {
	var value V

	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	redisKey := s.resolveRedisKey(key)

	b, err := s.redisClient.API().Get(ctxWithTimeout, redisKey).Bytes()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return value, storage.ErrDataNotFound
		}

		return value, fmt.Errorf("session get: %w", err)
	}

	plain, err := s.protector.Unprotect(ctxWithTimeout, []byte(redisKey), b)
	if err != nil {
		return value, fmt.Errorf("session unprotect: %w", err)
	}

	if err = json.Unmarshal(plain, &value); err != nil {
		return value, fmt.Errorf("session decode: %w", err)
	}

	return value, nil
}

func (s *Store[V]) Find(ctx context.Context, key string) (V, bool, error) {
	return storage.Find[V](ctx, s.Get, key)
}

func (s *Store[V]) Delete(ctx context.Context, key string) (bool, error) {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	n, err := s.redisClient.API().Del(ctxWithTimeout, s.resolveRedisKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("session delete: %w", err)
	}

	return n == 1, nil
}

// Dispose is a no-op, the client is shared and closed by its owner.
func (s *Store[V]) Dispose() {}

func (s *Store[V]) encode(ctx context.Context, redisKey string, value V) ([]byte, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("session encode: %w", err)
	}

	sealed, err := s.protector.Protect(ctx, []byte(redisKey), b)
	if err != nil {
		return nil, fmt.Errorf("session protect: %w", err)
	}

	return sealed, nil
}

func (s *Store[V]) resolveRedisKey(key string) string {
	return fmt.Sprintf("%s-%s", s.keyPrefix, key)
}
