/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataprotect

import (
	"context"
	"fmt"
)

//go:generate mockgen -source dataprotect.go -destination dataprotect_mocks_test.go -package dataprotect_test

type cipherer interface {
	Seal(data, aad []byte) ([]byte, error)
	Open(data, aad []byte) ([]byte, error)
}

// DataProtector compresses and then encrypts.
type DataProtector struct {
	cipher     cipherer
	compressor DataCompressor
}

// NewDataProtector returns a new DataProtector.
func NewDataProtector(cipher cipherer, compressor DataCompressor) *DataProtector {
	if compressor == nil {
		compressor = NewNilZip()
	}

	return &DataProtector{
		cipher:     cipher,
		compressor: compressor,
	}
}

func (d *DataProtector) Protect(_ context.Context, aad, msg []byte) ([]byte, error) {
	compressed, err := d.compressor.Compress(msg)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	sealed, err := d.cipher.Seal(compressed, aad)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	return sealed, nil
}

func (d *DataProtector) Unprotect(_ context.Context, aad, sealed []byte) ([]byte, error) {
	compressed, err := d.cipher.Open(sealed, aad)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}

	msg, err := d.compressor.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}

	return msg, nil
}
