/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package profile

import (
	"github.com/zcred/vcs/pkg/kyc"
	"github.com/zcred/vcs/pkg/signature"
)

type ID = string

// Issuer profile.
type Issuer struct {
	ID            ID                 `json:"id"`
	Name          string             `json:"name,omitempty"`
	URI           string             `json:"uri"`
	DefinitionRef string             `json:"definitionRef,omitempty"`
	Active        bool               `json:"active"`
	SubjectTypes  []signature.IDType `json:"subjectTypes"`
	KYC           *kyc.Config        `json:"kyc"`
	Mapper        string             `json:"mapper,omitempty"`
	ProofTypes    []string           `json:"proofTypes"`
	ACI           bool               `json:"aci,omitempty"`
}
