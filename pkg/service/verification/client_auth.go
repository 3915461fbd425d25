/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verification

import (
	"crypto"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/go-jose/go-jose/v3"
)

// ClientStatement is the payload a relying party signs to open a session.
const ClientStatement = "zcred verifier client"

var errClientAuth = errors.New("invalid client authorization")

// AuthenticateClient verifies a compact JWS carrying its own public key in the "jwk" header
// over ClientStatement. The client id is the base64url SHA-256 thumbprint of that key.
func AuthenticateClient(compact string) (*Client, error) {
	compact = strings.TrimSpace(compact)
	if compact == "" {
		return nil, fmt.Errorf("%w: missing token", errClientAuth)
	}

	jws, err := jose.ParseSigned(compact)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errClientAuth, err)
	}

	if len(jws.Signatures) != 1 {
		return nil, fmt.Errorf("%w: expected one signature", errClientAuth)
	}

	jwk := jws.Signatures[0].Protected.JSONWebKey
	if jwk == nil || !jwk.IsPublic() {
		return nil, fmt.Errorf("%w: no embedded public key", errClientAuth)
	}

	payload, err := jws.Verify(jwk)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errClientAuth, err)
	}

	if string(payload) != ClientStatement {
		return nil, fmt.Errorf("%w: unexpected statement", errClientAuth)
	}

	thumbprint, err := jwk.Thumbprint(crypto.SHA256)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errClientAuth, err)
	}

	return &Client{ID: base64.RawURLEncoding.EncodeToString(thumbprint)}, nil
}
