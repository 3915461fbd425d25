/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package storage

import (
	"context"
	"errors"
)

// ErrDataNotFound is returned when a key is absent or its entry has expired.
var ErrDataNotFound = errors.New("data not found")

// ExpiringStore keeps values for a fixed TTL per key. Every write restarts the TTL of its key.
// An entry past its deadline is never returned, even if it has not been evicted yet.
type ExpiringStore[V any] interface {
	// Set inserts or overwrites the value.
	Set(ctx context.Context, key string, value V) error
	// SetIfAbsent stores the value only if key is not present. It reports whether the value was stored.
	SetIfAbsent(ctx context.Context, key string, value V) (bool, error)
	// Get returns ErrDataNotFound for absent keys.
	Get(ctx context.Context, key string) (V, error)
	// Find reports absence with false instead of an error.
	Find(ctx context.Context, key string) (V, bool, error)
	// Delete removes the key and reports whether this call removed it. For a given stored entry
	// exactly one concurrent Delete returns true.
	Delete(ctx context.Context, key string) (bool, error)
	// Dispose releases timers and background resources.
	Dispose()
}

// Find is a helper for stores that only implement Get.
func Find[V any](ctx context.Context, get func(ctx context.Context, key string) (V, error),
	key string) (V, bool, error) {
	v, err := get(ctx, key)
	if err != nil {
		var zero V

		if errors.Is(err, ErrDataNotFound) {
			return zero, false, nil
		}

		return zero, false, err
	}

	return v, true, nil
}
