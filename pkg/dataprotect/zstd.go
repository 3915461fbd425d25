/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataprotect

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// ZStd keeps one encoder and decoder for the life of the process; EncodeAll and DecodeAll are
// safe for concurrent use.
type ZStd struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func NewZStd() *ZStd {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		panic(err) // only fails on invalid options
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}

	return &ZStd{encoder: encoder, decoder: decoder}
}

func (z *ZStd) Compress(input []byte) ([]byte, error) {
	return z.encoder.EncodeAll(input, nil), nil
}

func (z *ZStd) Decompress(input []byte) ([]byte, error) {
	data, err := z.decoder.DecodeAll(input, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}

	return data, nil
}
