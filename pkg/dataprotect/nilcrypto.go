/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataprotect

import "context"

// NilDataProtector stores values as is. Used when session encryption is disabled.
type NilDataProtector struct {
}

func NewNilDataProtector() *NilDataProtector {
	return &NilDataProtector{}
}

func (n *NilDataProtector) Protect(_ context.Context, _, msg []byte) ([]byte, error) {
	return msg, nil
}

func (n *NilDataProtector) Unprotect(_ context.Context, _, sealed []byte) ([]byte, error) {
	return sealed, nil
}
