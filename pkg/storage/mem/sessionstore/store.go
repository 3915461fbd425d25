/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bluele/gcache"

	"github.com/zcred/vcs/pkg/storage"
)

type clockFunc func() time.Time

func (f clockFunc) Now() time.Time { return f() }

// Store is an in-process storage.ExpiringStore backed by gcache. Expired entries are dropped
// lazily on read and by a janitor that sweeps the cache once per TTL.
type Store[V any] struct {
	// guards the check-then-act sequences; gcache itself is thread safe.
	mu    sync.Mutex
	cache gcache.Cache
	ttl   time.Duration
	clock gcache.Clock

	stop     chan struct{}
	stopOnce sync.Once
}

// Opt configures Store.
type Opt[V any] func(s *Store[V])

// WithClock replaces time.Now for expiry checks.
func WithClock[V any](now func() time.Time) Opt[V] {
	return func(s *Store[V]) {
		s.clock = clockFunc(now)
	}
}

// New returns a store with a fixed TTL per key.
func New[V any](ttl time.Duration, opts ...Opt[V]) *Store[V] {
	s := &Store[V]{
		ttl:   ttl,
		clock: gcache.NewRealClock(),
		stop:  make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.cache = gcache.New(0).Simple().Clock(s.clock).Build()

	go s.janitor()

	return s
}

func (s *Store[V]) Set(_ context.Context, key string, value V) error {
	if err := s.cache.SetWithExpire(key, value, s.ttl); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}

func (s *Store[V]) SetIfAbsent(ctx context.Context, key string, value V) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok, err := s.Find(ctx, key); err != nil || ok {
		return false, err
	}

	if err := s.Set(ctx, key, value); err != nil {
		return false, err
	}

	return true, nil
}

func (s *Store[V]) Get(_ context.Context, key string) (V, error) {
	var zero V

	raw, err := s.cache.Get(key)
	if err != nil {
		if errors.Is(err, gcache.KeyNotFoundError) {
			return zero, storage.ErrDataNotFound
		}

		return zero, fmt.Errorf("get %s: %w", key, err)
	}

	v, ok := raw.(V)
	if !ok {
		return zero, fmt.Errorf("get %s: unexpected value type %T", key, raw)
	}

	return v, nil
}

func (s *Store[V]) Find(ctx context.Context, key string) (V, bool, error) {
	v, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return v, false, nil
		}

		return v, false, err
	}

	return v, true, nil
}

// Delete removes a live key. gcache reports true for expired keys that are still held,
// so liveness is checked first under mu.
func (s *Store[V]) Delete(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok, err := s.Find(ctx, key); err != nil || !ok {
		return false, err
	}

	return s.cache.Remove(key), nil
}

// Dispose stops the janitor and drops every entry.
func (s *Store[V]) Dispose() {
	s.stopOnce.Do(func() { close(s.stop) })

	s.cache.Purge()
}

// Len returns the number of unexpired entries.
func (s *Store[V]) Len() int {
	return s.cache.Len(true)
}

func (s *Store[V]) janitor() {
	if s.ttl <= 0 {
		return
	}

	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			// Get evicts a key that has expired.
			for _, key := range s.cache.Keys(false) {
				_, _ = s.cache.Get(key) //nolint:errcheck
			}
		}
	}
}
