/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataprotect

import (
	"fmt"
	"strings"
)

// Compression algorithms.
const (
	CompressionNone = "none"
	CompressionGzip = "gzip"
	CompressionZstd = "zstd"
)

// NewCompressor returns the compressor for algo. An empty algo means no compression.
func NewCompressor(algo string) (DataCompressor, error) {
	switch strings.ToLower(algo) {
	case CompressionGzip:
		return NewGzip(), nil
	case CompressionZstd:
		return NewZStd(), nil
	case CompressionNone, "":
		return NewNilZip(), nil
	default:
		return nil, fmt.Errorf("unsupported compression algorithm: %s", algo)
	}
}
