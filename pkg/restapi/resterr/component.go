/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	IssuanceSvcComponent     Component = "issuer.issuance-service"
	CredentialSvcComponent   Component = "issuer.credential-service"
	KYCProviderComponent     Component = "issuer.kyc-provider"
	ProverComponent          Component = "issuer.prover"
	VerificationSvcComponent Component = "verifier.verification-service"
	ZKVerifierComponent      Component = "verifier.zk-verifier"
	JALRegistryComponent     Component = "verifier.jal-registry"
	ResultStoreComponent     Component = "verifier.result-store"
	SessionStoreComponent    Component = "session-store"
	SignatureGateComponent   Component = "signature-gate"
	JWSSignerComponent       Component = "jws-signer"
	DataProtectorComponent   Component = "data-protector"
)
