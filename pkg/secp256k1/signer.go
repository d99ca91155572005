// Copyright © 2024 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package secp256k1

import (
	"context"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/GoldenEraGlobal/goldenera-tx-go/internal/gemsgs"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/getypes"
)

// Signer is satisfied by anything capable of producing a GoldenEra signature
// over a signing hash and reporting the address it signs for. pkg/builder
// depends on this interface rather than the concrete *KeyPair, so tests can
// substitute a mock signer without exercising real ECDSA.
type Signer interface {
	Sign(ctx context.Context, hash getypes.Hash) (*getypes.Signature, error)
	SignerAddress() getypes.Address
}

// Sign produces a recoverable signature over a 32-byte digest. The result is
// always low-S (s <= n/2) with v in {27, 28} - never the {0, 1} form some
// libraries use for the recovery parity.
func Sign(ctx context.Context, kp *KeyPair, hash getypes.Hash) (*getypes.Signature, error) {
	compact := ecdsa.SignCompact(kp.PrivateKey, hash[:], false)
	if len(compact) != 65 {
		return nil, i18n.NewError(ctx, gemsgs.MsgSigningFailed, "compact signature is not 65 bytes")
	}
	recID := compact[0] - 27
	r := new(big.Int).SetBytes(compact[1:33])
	s := new(big.Int).SetBytes(compact[33:65])

	r, s, recID = canonicalizeLowS(r, s, recID)
	if recID > 1 {
		// The caller asked us for an uncompressed-form v, and a recovery id
		// outside {0,1} only arises in the astronomically rare case where
		// the nonce produces an r at or beyond the curve order - not
		// representable in the 27/28 scheme this protocol uses.
		return nil, i18n.NewError(ctx, gemsgs.MsgSigningFailed, "recovery id outside {0,1}")
	}

	sig := getypes.NewSignatureFromParts(r, s, 27+recID)
	return &sig, nil
}

// RecoverAddress recovers the signer's address from a digest and signature.
// Only v in {27, 28} is accepted; v in {0, 1} is rejected rather than
// silently reinterpreted (spec Open Question: recovery v-domain).
func RecoverAddress(ctx context.Context, hash getypes.Hash, sig getypes.Signature) (getypes.Address, error) {
	if err := validateStructure(ctx, sig); err != nil {
		return getypes.Address{}, err
	}

	compact := make([]byte, 65)
	compact[0] = sig.V()
	r, s := sig.R(), sig.S()
	r.FillBytes(compact[1:33])
	s.FillBytes(compact[33:65])

	pub, _, err := ecdsa.RecoverCompact(compact, hash[:])
	if err != nil {
		return getypes.Address{}, i18n.NewError(ctx, gemsgs.MsgRecoveryFailed, err)
	}
	return addressFromPublicKey(pub), nil
}

// ValidateSignature checks that sig is a well-formed signature over hash from
// expected. A structural failure (bad v, r, or s range) is returned as an
// error; a well-formed signature from a different signer returns (false, nil).
func ValidateSignature(ctx context.Context, hash getypes.Hash, sig getypes.Signature, expected getypes.Address) (bool, error) {
	if err := validateStructure(ctx, sig); err != nil {
		return false, err
	}
	recovered, err := RecoverAddress(ctx, hash, sig)
	if err != nil {
		return false, err
	}
	return recovered == expected, nil
}

func validateStructure(ctx context.Context, sig getypes.Signature) error {
	v := sig.V()
	if v != 27 && v != 28 {
		return i18n.NewError(ctx, gemsgs.MsgBadRecoveryParity, v)
	}
	r, s := sig.R(), sig.S()
	if r.Sign() <= 0 || r.Cmp(curveOrder) >= 0 {
		return i18n.NewError(ctx, gemsgs.MsgBadSignatureR)
	}
	if s.Sign() <= 0 || s.Cmp(halfOrder) > 0 {
		return i18n.NewError(ctx, gemsgs.MsgBadSignatureS)
	}
	return nil
}

// canonicalizeLowS enforces s <= n/2, flipping the recovery parity when s
// had to be negated (spec §4.4: "if s > n/2, replace s with n - s and invert
// the recovery parity accordingly").
func canonicalizeLowS(r, s *big.Int, recID byte) (*big.Int, *big.Int, byte) {
	if s.Cmp(halfOrder) > 0 {
		s = new(big.Int).Sub(curveOrder, s)
		recID ^= 1
	}
	return r, s, recID
}
