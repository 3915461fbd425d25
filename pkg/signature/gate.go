/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signature

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// Gate dispatches signature checks by id type.
type Gate struct {
	verifiers map[IDType]Verifier
}

// NewGate returns a gate over the given strategies.
func NewGate(verifiers map[IDType]Verifier) *Gate {
	return &Gate{verifiers: lo.Assign(verifiers)}
}

// Supports reports whether idType has a registered verifier.
func (g *Gate) Supports(idType IDType) bool {
	_, ok := g.verifiers[idType]

	return ok
}

// Types lists the supported id types in lexical order.
func (g *Gate) Types() []IDType {
	types := lo.Keys(g.verifiers)

	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	return types
}

// Validate checks a subject key and options for idType.
func (g *Gate) Validate(idType IDType, key string, opts Options) error {
	v, ok := g.verifiers[idType]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedIDType, idType)
	}

	return v.Validate(key, opts)
}

// Verify checks in with the verifier registered for idType.
func (g *Gate) Verify(ctx context.Context, idType IDType, in Input) (bool, error) {
	v, ok := g.verifiers[idType]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnsupportedIDType, idType)
	}

	if in.Signature == "" {
		return false, nil
	}

	return v.Verify(ctx, in)
}
