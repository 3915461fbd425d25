/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/btcsuite/btcutil/base58"
)

// sybilDigestOffset is the number of leading digest bytes dropped from the sybil id.
const sybilDigestOffset = 12

// Document holds the physical document fields that identify it.
type Document struct {
	ID          string
	CountryCode string
	BirthDate   time.Time
}

// ChooseValidUntil returns the earlier of the requested instant and the document expiry.
func ChooseValidUntil(requested time.Time, documentExpiry *time.Time) time.Time {
	if documentExpiry == nil || requested.Before(*documentExpiry) {
		return requested
	}

	return *documentExpiry
}

// SybilID fingerprints a physical document. It depends on document fields only, so every
// credential over the same document carries the same value whatever key requested it.
func SybilID(doc Document) string {
	y, m, d := doc.BirthDate.Date()

	input := fmt.Sprintf("%04d%02d%02d%s%s", y, int(m), d, doc.CountryCode, doc.ID)
	digest := sha256.Sum256([]byte(input))

	return base58.Encode(digest[sybilDigestOffset:])
}
