/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jalstore

import (
	"context"
	"sync"

	"github.com/jinzhu/copier"

	"github.com/zcred/vcs/pkg/jal"
	"github.com/zcred/vcs/pkg/storage"
)

// Store keeps JAL entries in memory.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*jal.Entry
}

// New returns an empty Store.
func New() *Store {
	return &Store{entries: make(map[string]*jal.Entry)}
}

// Create stores entry unless its id exists.
func (s *Store) Create(_ context.Context, entry *jal.Entry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[entry.ID]; ok {
		return false, nil
	}

	c, err := clone(entry)
	if err != nil {
		return false, err
	}

	s.entries[entry.ID] = c

	return true, nil
}

// Get returns a copy of the entry with id.
func (s *Store) Get(_ context.Context, id string) (*jal.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, storage.ErrDataNotFound
	}

	return clone(e)
}

func clone(e *jal.Entry) (*jal.Entry, error) {
	c := &jal.Entry{}

	if err := copier.Copy(c, e); err != nil {
		return nil, err
	}

	c.Program = append([]byte(nil), e.Program...)

	return c, nil
}
