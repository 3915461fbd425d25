/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination jal_mocks_test.go -self_package mocks -package jal_test -source=jal.go -mock_names store=MockStore

// Package jal keeps the JAL programs relying parties verify proofs against. A program is
// addressed by the hash of its canonical form, so registering the same program twice yields
// the same id.
package jal

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/zcred/vcs/internal/pkg/log"
	"github.com/zcred/vcs/pkg/canonical"
	"github.com/zcred/vcs/pkg/storage"
)

var logger = log.New("jal-registry")

// ErrInvalidProgram is returned for programs that do not match the program schema.
var ErrInvalidProgram = errors.New("invalid jal program")

// Entry is a registered program.
type Entry struct {
	ID        string          `json:"id"`
	Program   json.RawMessage `json:"program"`
	Comment   string          `json:"comment,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type store interface {
	// Create stores the entry unless its id exists. It reports whether the entry was stored.
	Create(ctx context.Context, entry *Entry) (bool, error)
	Get(ctx context.Context, id string) (*Entry, error)
}

// Registry validates and stores programs.
type Registry struct {
	store  store
	schema *gojsonschema.Schema
	now    func() time.Time
}

// NewRegistry returns a registry backed by s.
func NewRegistry(s store) (*Registry, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(programSchema))
	if err != nil {
		return nil, fmt.Errorf("load jal program schema: %w", err)
	}

	return &Registry{store: s, schema: schema, now: time.Now}, nil
}

// Register validates program and stores it under its content id. Registering an existing
// program returns the stored entry.
func (r *Registry) Register(ctx context.Context, program json.RawMessage, comment string) (*Entry, error) {
	if err := r.Validate(program); err != nil {
		return nil, err
	}

	id, err := ProgramID(program)
	if err != nil {
		return nil, err
	}

	normalized, err := canonical.Transform(program)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProgram, err)
	}

	entry := &Entry{
		ID:        id,
		Program:   normalized,
		Comment:   comment,
		CreatedAt: r.now().UTC(),
	}

	created, err := r.store.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("store jal entry: %w", err)
	}

	if !created {
		return r.store.Get(ctx, id)
	}

	logger.Info("jal program registered", log.WithJalID(id))

	return entry, nil
}

// Get returns storage.ErrDataNotFound for unknown ids.
func (r *Registry) Get(ctx context.Context, id string) (*Entry, error) {
	if id == "" {
		return nil, storage.ErrDataNotFound
	}

	return r.store.Get(ctx, id)
}

// Validate checks program against the program schema.
func (r *Registry) Validate(program json.RawMessage) error {
	if len(program) == 0 {
		return fmt.Errorf("%w: empty program", ErrInvalidProgram)
	}

	result, err := r.schema.Validate(gojsonschema.NewBytesLoader(program))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProgram, err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}

		return fmt.Errorf("%w: %s", ErrInvalidProgram, strings.Join(msgs, "; "))
	}

	return nil
}

// ProgramID is hex(SHA-256(canonical JSON of program)).
func ProgramID(program json.RawMessage) (string, error) {
	b, err := canonical.Transform(program)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidProgram, err)
	}

	sum := sha256.Sum256(b)

	return hex.EncodeToString(sum[:]), nil
}
