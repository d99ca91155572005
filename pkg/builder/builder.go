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

// Package builder collects transaction fields and validates them before any
// hashing occurs. It is the sole mutable intermediate in the object model
// (spec §3 "Ownership and lifecycle"): Sign is a terminal operation that
// consumes the builder's state and returns an immutable signed *getx.Tx.
package builder

import (
	"context"
	"math/big"

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/GoldenEraGlobal/goldenera-tx-go/internal/gemsgs"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/gecodes"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/getx"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/getypes"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/payload"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/secp256k1"
)

// nowMillis is overridable by tests; production code leaves it at its
// default of wall-clock milliseconds since the Unix epoch.
var nowMillis = defaultNowMillis

// Builder accumulates the fields of a GoldenEra transaction. The zero value
// is ready to use; Version/Fee/TokenAddress default when Sign is called.
type Builder struct {
	version       gecodes.TxVersion
	timestamp     *uint64
	txType        gecodes.TxType
	network       gecodes.Network
	nonce         *uint64
	recipient     *getypes.Address
	tokenAddress  *getypes.Address
	amount        *big.Int
	fee           *big.Int
	message       []byte
	payload       payload.Payload
	referenceHash *getypes.Hash
}

func New(txType gecodes.TxType, network gecodes.Network) *Builder {
	return &Builder{txType: txType, network: network}
}

func (b *Builder) Version(v gecodes.TxVersion) *Builder { b.version = v; return b }
func (b *Builder) Timestamp(ms uint64) *Builder          { b.timestamp = &ms; return b }
func (b *Builder) Nonce(n uint64) *Builder               { b.nonce = &n; return b }
func (b *Builder) Recipient(a getypes.Address) *Builder  { b.recipient = &a; return b }
func (b *Builder) TokenAddress(a getypes.Address) *Builder {
	b.tokenAddress = &a
	return b
}
func (b *Builder) Amount(v *big.Int) *Builder  { b.amount = v; return b }
func (b *Builder) Fee(v *big.Int) *Builder     { b.fee = v; return b }
func (b *Builder) Message(msg []byte) *Builder { b.message = msg; return b }
func (b *Builder) Payload(p payload.Payload) *Builder {
	b.payload = p
	return b
}
func (b *Builder) ReferenceHash(h getypes.Hash) *Builder {
	b.referenceHash = &h
	return b
}

// Sign validates the per-type invariants (§3), builds the unsigned record,
// computes the signing hash, signs it, then computes the canonical hash and
// size - returning the fully frozen signed transaction.
func (b *Builder) Sign(ctx context.Context, signer secp256k1.Signer) (*getx.Tx, error) {
	if err := b.validate(ctx); err != nil {
		return nil, err
	}

	version := b.version
	if version == 0 {
		version = gecodes.TxVersionV1
	}
	timestamp := nowMillis()
	if b.timestamp != nil {
		timestamp = *b.timestamp
	}
	fee := b.fee
	if fee == nil {
		fee = big.NewInt(0)
	}
	tokenAddress := b.tokenAddress
	if tokenAddress == nil && b.txType == gecodes.TxTypeTransfer {
		native := getypes.NativeToken
		tokenAddress = &native
	}

	tx := &getx.Tx{
		Version:       version,
		Timestamp:     timestamp,
		Type:          b.txType,
		Network:       b.network,
		Nonce:         b.nonce,
		Recipient:     b.recipient,
		TokenAddress:  tokenAddress,
		Amount:        b.amount,
		Fee:           fee,
		Message:       b.message,
		Payload:       b.payload,
		ReferenceHash: b.referenceHash,
	}

	signingHash, err := getx.HashForSigning(ctx, tx)
	if err != nil {
		return nil, err
	}

	sig, err := signer.Sign(ctx, signingHash)
	if err != nil {
		return nil, err
	}
	tx.Signature = sig
	tx.Sender = signer.SignerAddress()

	canonicalHash, err := getx.HashTx(ctx, tx)
	if err != nil {
		return nil, err
	}
	tx.CanonicalHash = canonicalHash

	size, err := getx.SizeTx(tx)
	if err != nil {
		return nil, err
	}
	tx.Size = size

	return tx, nil
}

func (b *Builder) validate(ctx context.Context) error {
	typeName := b.txType.String()

	switch b.txType {
	case gecodes.TxTypeTransfer:
		if b.recipient == nil {
			return i18n.NewError(ctx, gemsgs.MsgMissingField, "recipient", typeName)
		}
		if b.payload != nil {
			return i18n.NewError(ctx, gemsgs.MsgFieldNotAllowed, "payload", typeName)
		}
		if b.referenceHash != nil {
			return i18n.NewError(ctx, gemsgs.MsgFieldNotAllowed, "referenceHash", typeName)
		}

	case gecodes.TxTypeBIPCreate:
		if b.payload == nil {
			return i18n.NewError(ctx, gemsgs.MsgMissingField, "payload", typeName)
		}
		if b.amount != nil {
			return i18n.NewError(ctx, gemsgs.MsgFieldNotAllowed, "amount", typeName)
		}
		if b.recipient != nil {
			return i18n.NewError(ctx, gemsgs.MsgFieldNotAllowed, "recipient", typeName)
		}
		if b.referenceHash != nil {
			return i18n.NewError(ctx, gemsgs.MsgFieldNotAllowed, "referenceHash", typeName)
		}

	case gecodes.TxTypeBIPVote:
		if b.payload == nil {
			return i18n.NewError(ctx, gemsgs.MsgMissingField, "payload", typeName)
		}
		if _, ok := b.payload.(payload.VoteKind); !ok {
			return i18n.NewError(ctx, gemsgs.MsgPayloadKindMismatch, typeName, "VOTE", b.payload.Type().String())
		}
		if b.referenceHash == nil {
			return i18n.NewError(ctx, gemsgs.MsgReferenceHashRequired)
		}
		if b.amount != nil {
			return i18n.NewError(ctx, gemsgs.MsgFieldNotAllowed, "amount", typeName)
		}

	default:
		return i18n.NewError(ctx, gemsgs.MsgUnknownTxType, int(b.txType))
	}

	return nil
}
