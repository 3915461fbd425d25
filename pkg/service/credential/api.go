/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"strings"

	"github.com/zcred/vcs/pkg/prover"
	"github.com/zcred/vcs/pkg/signature"
)

// ProofTypeACI keys the auxiliary credential identifier in Credential.Proofs.
const ProofTypeACI = "aci"

// SubjectID identifies a subject by a blockchain key.
type SubjectID struct {
	Type signature.IDType `json:"type"`
	Key  string           `json:"key"`
}

// Equal reports whether both ids name the same subject. Ethereum addresses are hex and may
// carry an EIP-55 checksum, so their keys compare case-insensitively.
func (id SubjectID) Equal(other SubjectID) bool {
	if id.Type != other.Type {
		return false
	}

	if id.Type == signature.IDTypeEthereum {
		return strings.EqualFold(id.Key, other.Key)
	}

	return id.Key == other.Key
}

// Issuer identifies the credential issuer.
type Issuer struct {
	Type string `json:"type"`
	URI  string `json:"uri"`
}

// Meta describes the credential.
type Meta struct {
	Issuer        Issuer `json:"issuer"`
	DefinitionRef string `json:"definitionRef"`
}

// Protection carries the detached JWS "<header>..<signature>" over the canonical credential
// without its protection field.
type Protection struct {
	JWS string `json:"jws"`
}

// Credential is the issued attestation.
type Credential struct {
	Meta       Meta                                `json:"meta"`
	Attributes map[string]interface{}              `json:"attributes"`
	Proofs     map[string]map[string]*prover.Proof `json:"proofs"`
	Protection *Protection                         `json:"protection,omitempty"`
}
