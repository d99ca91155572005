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

// Package secp256k1 implements the signing pipeline: secp256k1 ECDSA
// sign/recover with low-S enforcement, v in {27,28}, and Ethereum-style
// address derivation from a public key. The curve and hash primitives
// themselves are external collaborators (btcec, golang.org/x/crypto/sha3);
// this package only contracts the GoldenEra-specific encoding around them.
package secp256k1

import (
	"context"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/crypto/sha3"

	"github.com/GoldenEraGlobal/goldenera-tx-go/internal/gemsgs"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/getypes"
)

const privateKeySize = 32

// curveOrder (n) and its half, used for key range checks and low-S enforcement.
var (
	curveOrder = mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	halfOrder  = new(big.Int).Rsh(curveOrder, 1)
)

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("bad curve constant")
	}
	return v
}

// KeyPair holds a secp256k1 private key and its derived GoldenEra address.
type KeyPair struct {
	PrivateKey *btcec.PrivateKey
	PublicKey  *btcec.PublicKey
	Address    getypes.Address
}

// PrivateKeyBytes returns the 32-byte big-endian private key scalar.
func (k *KeyPair) PrivateKeyBytes() []byte {
	return k.PrivateKey.Serialize()
}

// Sign satisfies Signer, letting a *KeyPair stand in wherever the signing
// step is abstracted behind an interface (pkg/builder).
func (k *KeyPair) Sign(ctx context.Context, hash getypes.Hash) (*getypes.Signature, error) {
	return Sign(ctx, k, hash)
}

// SignerAddress satisfies Signer.
func (k *KeyPair) SignerAddress() getypes.Address {
	return k.Address
}

// Destroy zeroizes the in-memory private key material. A hygiene
// recommendation, not a protocol requirement - callers that hold a KeyPair
// for longer than a single signing call should still call this when done.
func (k *KeyPair) Destroy() {
	if k == nil || k.PrivateKey == nil {
		return
	}
	k.PrivateKey.Zero()
}

// GenerateKeyPair creates a new random secp256k1 key pair.
func GenerateKeyPair() (*KeyPair, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return wrapKey(key), nil
}

// NewKeyPairFromBytes wraps a raw 32-byte private key scalar, rejecting
// anything outside [1, n-1] (spec §7 Crypto: "Key out of curve order").
func NewKeyPairFromBytes(ctx context.Context, b []byte) (*KeyPair, error) {
	if len(b) != privateKeySize {
		return nil, i18n.NewError(ctx, gemsgs.MsgHexWrongLength, privateKeySize, len(b))
	}
	v := new(big.Int).SetBytes(b)
	if v.Sign() == 0 || v.Cmp(curveOrder) >= 0 {
		return nil, i18n.NewError(ctx, gemsgs.MsgKeyOutOfRange)
	}
	key, _ := btcec.PrivKeyFromBytes(b)
	return wrapKey(key), nil
}

func wrapKey(key *btcec.PrivateKey) *KeyPair {
	k := &KeyPair{
		PrivateKey: key,
		PublicKey:  key.PubKey(),
	}
	k.Address = addressFromPublicKey(k.PublicKey)
	return k
}

// addressFromPublicKey implements "address derivation from a private key"
// (spec §4.4): strip the leading 0x04 uncompressed-key tag, Keccak-256 the
// remaining 64 bytes, and take the low-order 20 bytes.
func addressFromPublicKey(pub *btcec.PublicKey) getypes.Address {
	uncompressed := pub.SerializeUncompressed()[1:]
	hash := sha3.NewLegacyKeccak256()
	hash.Write(uncompressed)
	digest := hash.Sum(nil)
	var a getypes.Address
	copy(a[:], digest[12:32])
	return a
}
