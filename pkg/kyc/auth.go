/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kyc

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultTolerance bounds the age of a signed webhook.
const DefaultTolerance = 5 * time.Minute

// SignatureHeader carries "t=<unix seconds>,v1=<hex hmac>[,v1=...]".
const SignatureHeader = "X-Signature"

// Authenticator checks HMAC-SHA256(secret, t + "." + body) against the signature header.
type Authenticator struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewAuthenticator returns an authenticator; a non positive tolerance selects the default.
func NewAuthenticator(secret []byte, tolerance time.Duration) *Authenticator {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	return &Authenticator{secret: secret, tolerance: tolerance, now: time.Now}
}

// Sign returns the header value for body at t.
func (a *Authenticator) Sign(body []byte, t time.Time) string {
	ts := strconv.FormatInt(t.Unix(), 10)

	return "t=" + ts + ",v1=" + hex.EncodeToString(a.mac(ts, body))
}

// Verify checks header against body.
func (a *Authenticator) Verify(header string, body []byte) error {
	var (
		ts   string
		sigs [][]byte
	)

	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}

		switch k {
		case "t":
			ts = v
		case "v1":
			if sig, err := hex.DecodeString(v); err == nil {
				sigs = append(sigs, sig)
			}
		}
	}

	if ts == "" || len(sigs) == 0 {
		return fmt.Errorf("%w: missing timestamp or signature", ErrUnauthorized)
	}

	sec, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad timestamp", ErrUnauthorized)
	}

	if age := a.now().Sub(time.Unix(sec, 0)); age > a.tolerance || age < -a.tolerance {
		return fmt.Errorf("%w: timestamp outside tolerance", ErrUnauthorized)
	}

	expected := a.mac(ts, body)

	for _, sig := range sigs {
		if hmac.Equal(expected, sig) {
			return nil
		}
	}

	return ErrUnauthorized
}

func (a *Authenticator) mac(ts string, body []byte) []byte {
	m := hmac.New(sha256.New, a.secret)
	m.Write([]byte(ts))
	m.Write([]byte("."))
	m.Write(body)

	return m.Sum(nil)
}
