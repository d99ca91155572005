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

// Package getx implements the versioned GoldenEra transaction codec: the
// outer RLP list layout, signing-hash and canonical-hash derivation, and
// size measurement. It is the client-facing counterpart to pkg/payload,
// the same way pkg/ethsigner sits on top of pkg/rlp and pkg/ethtypes.
package getx

import (
	"context"
	"math/big"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/crypto/sha3"

	"github.com/GoldenEraGlobal/goldenera-tx-go/internal/gemsgs"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/gecodes"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/getypes"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/payload"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/rlp"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/secp256k1"
)

const outerFieldCount = 12

// Tx is the logical V1 transaction record (spec §3). All fields are set
// once, either by a Builder's Sign terminal or by DecodeTx, and never
// mutated afterwards - Sender, CanonicalHash, and Size are derived and
// frozen at that same moment.
type Tx struct {
	Version       gecodes.TxVersion
	Timestamp     uint64
	Type          gecodes.TxType
	Network       gecodes.Network
	Nonce         *uint64
	Recipient     *getypes.Address
	TokenAddress  *getypes.Address
	Amount        *big.Int
	Fee           *big.Int
	Message       []byte
	Payload       payload.Payload
	ReferenceHash *getypes.Hash
	Signature     *getypes.Signature

	// Derived fields, frozen once known.
	Sender        getypes.Address
	CanonicalHash getypes.Hash
	Size          uint32
}

// buildFields assembles the 12 mandatory-plus-optional fields shared by the
// unsigned and signed wire forms, in exact outer order (spec §4.2).
func (t *Tx) buildFields(ctx context.Context) (rlp.List, error) {
	if t.Fee == nil {
		return nil, i18n.NewError(ctx, gemsgs.MsgMissingField, "fee", "transaction")
	}

	var payloadRaw []byte
	if t.Payload != nil {
		payloadRaw = payload.Encode(ctx, t.Payload)
	}

	fields := make(rlp.List, 0, outerFieldCount)
	fields = append(fields,
		rlp.WrapUint(uint64(t.Version)),
		rlp.WrapUint(t.Timestamp),
		rlp.WrapUint(uint64(t.Type)),
		rlp.WrapUint(uint64(t.Network)),
		rlp.WrapOptionalUint(t.Nonce != nil, derefUint64(t.Nonce)),
		rlp.WrapOptionalBytes(t.Recipient != nil, derefAddressBytes(t.Recipient)),
		rlp.WrapOptionalBytes(t.TokenAddress != nil, derefAddressBytes(t.TokenAddress)),
		rlp.WrapOptionalBigInt(t.Amount != nil, t.Amount),
		rlp.WrapBigInt(t.Fee),
		rlp.WrapOptionalBytes(t.Message != nil, t.Message),
		rlp.WrapOptionalRaw(t.Payload != nil, payloadRaw),
		rlp.WrapOptionalBytes(t.ReferenceHash != nil, derefHashBytes(t.ReferenceHash)),
	)
	return fields, nil
}

// EncodeTx renders tx to its RLP wire form. With includeSignature=false this
// is the signing-hash payload (§4.4); with true, and a signature present,
// the bare 65-byte signature is appended unwrapped as the 13th element.
func EncodeTx(tx *Tx, includeSignature bool) ([]byte, error) {
	ctx := context.Background()
	fields, err := tx.buildFields(ctx)
	if err != nil {
		return nil, err
	}
	if includeSignature && tx.Signature != nil {
		fields = append(fields, rlp.Data(tx.Signature.Bytes()))
	}
	return fields.Encode(), nil
}

// HashForSigning computes Keccak-256 over the unsigned encoding (§4.4).
func HashForSigning(ctx context.Context, tx *Tx) (getypes.Hash, error) {
	b, err := tx.buildFields(ctx)
	if err != nil {
		return getypes.Hash{}, err
	}
	return keccak(b.Encode()), nil
}

// HashTx computes Keccak-256 over the signed (canonical) encoding (§4.4).
// It requires tx.Signature to already be set.
func HashTx(ctx context.Context, tx *Tx) (getypes.Hash, error) {
	if tx.Signature == nil {
		return getypes.Hash{}, i18n.NewError(ctx, gemsgs.MsgMissingField, "signature", "transaction")
	}
	b, err := EncodeTx(tx, true)
	if err != nil {
		return getypes.Hash{}, err
	}
	return keccak(b), nil
}

// SizeTx returns the byte length of the canonical (signed) encoding.
func SizeTx(tx *Tx) (uint32, error) {
	b, err := EncodeTx(tx, true)
	if err != nil {
		return 0, err
	}
	return uint32(len(b)), nil
}

// DecodeTx parses the wire format, dispatching on version first (unknown
// version is a distinct error with no partial decode, per §4.2). When a
// signature is present the sender, canonical hash, and size are recomputed
// and frozen onto the returned Tx.
func DecodeTx(ctx context.Context, b []byte) (*Tx, error) {
	el, err := rlp.DecodeExact(ctx, b)
	if err != nil {
		return nil, err
	}
	if !el.IsList() {
		return nil, i18n.NewError(ctx, gemsgs.MsgRLPExpectedList)
	}
	children := el.Children()
	if len(children) != outerFieldCount && len(children) != outerFieldCount+1 {
		return nil, i18n.NewError(ctx, gemsgs.MsgRLPWrongListLength, "transaction", len(children))
	}

	versionData, ok := children[0].(rlp.Data)
	if !ok {
		return nil, i18n.NewError(ctx, gemsgs.MsgRLPExpectedData)
	}
	version := gecodes.TxVersion(versionData.Int().Uint64())
	if !version.Valid() {
		return nil, i18n.NewError(ctx, gemsgs.MsgUnknownTxVersion, int(version))
	}
	return decodeV1(ctx, children)
}

func decodeV1(ctx context.Context, children []rlp.Element) (*Tx, error) {
	tx := &Tx{Version: gecodes.TxVersionV1}

	timestampData, err := asData(ctx, children[1])
	if err != nil {
		return nil, err
	}
	tx.Timestamp = timestampData.Int().Uint64()

	typeData, err := asData(ctx, children[2])
	if err != nil {
		return nil, err
	}
	tx.Type = gecodes.TxType(typeData.Int().Uint64())
	if !tx.Type.Valid() {
		return nil, i18n.NewError(ctx, gemsgs.MsgUnknownTxType, int(tx.Type))
	}

	networkData, err := asData(ctx, children[3])
	if err != nil {
		return nil, err
	}
	tx.Network = gecodes.Network(networkData.Int().Uint64())
	if !tx.Network.Valid() {
		return nil, i18n.NewError(ctx, gemsgs.MsgUnknownNetwork, int(tx.Network))
	}

	if nonce, present, err := rlp.UnwrapOptionalUint(ctx, "nonce", children[4]); err != nil {
		return nil, err
	} else if present {
		tx.Nonce = &nonce
	}

	if recipient, present, err := rlp.UnwrapOptionalFixed(ctx, "recipient", children[5], 20); err != nil {
		return nil, err
	} else if present {
		var a getypes.Address
		copy(a[:], recipient)
		tx.Recipient = &a
	}

	if tokenAddress, present, err := rlp.UnwrapOptionalFixed(ctx, "tokenAddress", children[6], 20); err != nil {
		return nil, err
	} else if present {
		var a getypes.Address
		copy(a[:], tokenAddress)
		tx.TokenAddress = &a
	}

	if amount, err := rlp.UnwrapOptionalBigInt(ctx, "amount", children[7]); err != nil {
		return nil, err
	} else {
		tx.Amount = amount
	}

	feeData, err := asData(ctx, children[8])
	if err != nil {
		return nil, err
	}
	tx.Fee = feeData.Int()

	if message, err := rlp.UnwrapOptionalBytes(ctx, "message", children[9]); err != nil {
		return nil, err
	} else {
		tx.Message = message
	}

	if payloadEl, present, err := rlp.UnwrapOptional(ctx, "payload", children[10]); err != nil {
		return nil, err
	} else if present {
		p, err := payload.Decode(ctx, payloadEl)
		if err != nil {
			return nil, err
		}
		tx.Payload = p
	}

	if referenceHash, present, err := rlp.UnwrapOptionalFixed(ctx, "referenceHash", children[11], 32); err != nil {
		return nil, err
	} else if present {
		var h getypes.Hash
		copy(h[:], referenceHash)
		tx.ReferenceHash = &h
	}

	if len(children) == outerFieldCount+1 {
		sigData, err := asData(ctx, children[outerFieldCount])
		if err != nil {
			return nil, err
		}
		sig, err := getypes.NewSignatureFromBytes(ctx, []byte(sigData))
		if err != nil {
			return nil, err
		}
		tx.Signature = &sig
	}

	if tx.Signature != nil {
		if err := deriveFrozenFields(ctx, tx); err != nil {
			return nil, err
		}
	}

	return tx, nil
}

func deriveFrozenFields(ctx context.Context, tx *Tx) error {
	signingHash, err := HashForSigning(ctx, tx)
	if err != nil {
		return err
	}
	sender, err := secp256k1.RecoverAddress(ctx, signingHash, *tx.Signature)
	if err != nil {
		return err
	}
	tx.Sender = sender

	canonicalHash, err := HashTx(ctx, tx)
	if err != nil {
		return err
	}
	tx.CanonicalHash = canonicalHash

	size, err := SizeTx(tx)
	if err != nil {
		return err
	}
	tx.Size = size
	return nil
}

func keccak(b []byte) getypes.Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	var out getypes.Hash
	copy(out[:], h.Sum(nil))
	return out
}

func asData(ctx context.Context, el rlp.Element) (rlp.Data, error) {
	if el.IsList() {
		return nil, i18n.NewError(ctx, gemsgs.MsgRLPExpectedData)
	}
	if d, ok := el.(rlp.Data); ok {
		return d, nil
	}
	return rlp.Data(el.Value()), nil
}

func derefUint64(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefAddressBytes(a *getypes.Address) []byte {
	if a == nil {
		return nil
	}
	return a.Bytes()
}

func derefHashBytes(h *getypes.Hash) []byte {
	if h == nil {
		return nil
	}
	return h.Bytes()
}
