/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package sessionid derives session identifiers with a keyed hash, so that they are
// unguessable without the key and need no reverse index.
package sessionid

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/zcred/vcs/pkg/canonical"
)

// Deriver computes session ids under a single key.
type Deriver struct {
	key []byte
}

// New returns a Deriver for key.
func New(key []byte) *Deriver {
	return &Deriver{key: append([]byte(nil), key...)}
}

// FromReference returns base64url(HMAC-SHA256(key, ref)).
func (d *Deriver) FromReference(ref string) string {
	return d.mac([]byte(ref))
}

// FromContent returns base64url(HMAC-SHA256(key, canonical JSON of v)). Semantically equal
// values give equal ids regardless of key order.
func (d *Deriver) FromContent(v interface{}) (string, error) {
	b, err := canonical.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("canonicalize: %w", err)
	}

	return d.mac(b), nil
}

// Equal compares a derived value with a presented one in constant time.
func Equal(expected, presented string) bool {
	return hmac.Equal([]byte(expected), []byte(presented))
}

func (d *Deriver) mac(b []byte) string {
	h := hmac.New(sha256.New, d.key)
	h.Write(b) //nolint:errcheck

	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
