/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataprotect

import "context"

// Protector seals values before they leave the process. The aad binds a sealed value to the
// place it is stored at, so a value copied under another key fails to open.
type Protector interface {
	Protect(ctx context.Context, aad, msg []byte) ([]byte, error)
	Unprotect(ctx context.Context, aad, sealed []byte) ([]byte, error)
}

// DataCompressor compresses plaintext before encryption.
type DataCompressor interface {
	Compress(input []byte) ([]byte, error)
	Decompress(input []byte) ([]byte, error)
}
