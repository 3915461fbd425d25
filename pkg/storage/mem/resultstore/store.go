/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resultstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/zcred/vcs/pkg/service/verification"
	"github.com/zcred/vcs/pkg/storage"
)

// Store keeps verification results in memory as encoded JSON so callers cannot alias them.
type Store struct {
	mu      sync.RWMutex
	results map[string][]byte
}

// New returns an empty Store.
func New() *Store {
	return &Store{results: make(map[string][]byte)}
}

// Put stores result. Results are immutable; a second Put with the same id fails.
func (s *Store) Put(_ context.Context, result *verification.Result) error {
	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.results[result.ID]; ok {
		return fmt.Errorf("result %s already exists", result.ID)
	}

	s.results[result.ID] = b

	return nil
}

// Get returns storage.ErrDataNotFound for unknown ids.
func (s *Store) Get(_ context.Context, id string) (*verification.Result, error) {
	s.mu.RLock()
	b, ok := s.results[id]
	s.mu.RUnlock()

	if !ok {
		return nil, storage.ErrDataNotFound
	}

	var result verification.Result

	if err := json.Unmarshal(b, &result); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}

	return &result, nil
}
