/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ethereum verifies EIP-191 personal_sign signatures against a subject address.
package ethereum

import (
	"context"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcec"
	"golang.org/x/crypto/sha3"

	"github.com/zcred/vcs/pkg/signature"
)

const (
	signatureLen  = 65
	compactHeader = 27
)

var (
	addressRegexp = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	chainIDRegexp = regexp.MustCompile(`^eip155:[0-9]{1,32}$`)
)

// Verifier recovers the signer address from a secp256k1 signature.
type Verifier struct{}

// New returns an ethereum signature verifier.
func New() *Verifier {
	return &Verifier{}
}

// Validate checks the address format and that opts carries an eip155 chain id.
func (v *Verifier) Validate(key string, opts signature.Options) error {
	if !addressRegexp.MatchString(key) {
		return fmt.Errorf("%w: expected 0x prefixed 20 byte hex address", signature.ErrInvalidKey)
	}

	if !chainIDRegexp.MatchString(opts.ChainID) {
		return fmt.Errorf("%w: chainId must be a CAIP-2 eip155 chain id", signature.ErrInvalidOptions)
	}

	return nil
}

// Verify reports whether the EIP-191 personal signature over in.Message recovers in.PublicKey.
func (v *Verifier) Verify(_ context.Context, in signature.Input) (bool, error) {
	if err := v.Validate(in.PublicKey, in.Options); err != nil {
		return false, err
	}

	sig, err := hex.DecodeString(strings.TrimPrefix(in.Signature, "0x"))
	if err != nil || len(sig) != signatureLen {
		return false, nil
	}

	address, err := RecoverAddress(sig, []byte(in.Message))
	if err != nil {
		return false, nil //nolint:nilerr // unrecoverable signature does not verify
	}

	return strings.EqualFold(address, in.PublicKey), nil
}

// PersonalMessageHash is keccak256("\x19Ethereum Signed Message:\n" + len(msg) + msg).
func PersonalMessageHash(msg []byte) []byte {
	return keccak256([]byte("\x19Ethereum Signed Message:\n" + strconv.Itoa(len(msg))), msg)
}

// RecoverAddress returns the 0x prefixed lowercase address that produced sig (r || s || v) over
// the personal message hash of msg. Both v = 0/1 and v = 27/28 are accepted.
func RecoverAddress(sig, msg []byte) (string, error) {
	if len(sig) != signatureLen {
		return "", fmt.Errorf("signature must be %d bytes", signatureLen)
	}

	recID := sig[64]
	if recID >= compactHeader {
		recID -= compactHeader
	}

	if recID > 1 {
		return "", fmt.Errorf("invalid recovery id %d", sig[64])
	}

	compact := make([]byte, signatureLen)
	compact[0] = compactHeader + recID
	copy(compact[1:], sig[:64])

	pub, _, err := btcec.RecoverCompact(btcec.S256(), compact, PersonalMessageHash(msg))
	if err != nil {
		return "", fmt.Errorf("recover public key: %w", err)
	}

	return PublicKeyToAddress(pub), nil
}

// PublicKeyToAddress is the last 20 bytes of keccak256 over the uncompressed point.
func PublicKeyToAddress(pub *btcec.PublicKey) string {
	h := keccak256(pub.SerializeUncompressed()[1:])

	return "0x" + hex.EncodeToString(h[12:])
}

func keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()

	for _, d := range data {
		h.Write(d) //nolint:errcheck
	}

	return h.Sum(nil)
}
