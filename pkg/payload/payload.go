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

// Package payload implements the per-variant encode/decode for the closed
// set of BIP payload kinds. A payload is a sealed sum type, tagged by a
// stable numeric code (gecodes.PayloadType); encoding dispatches on the
// tag, decoding reads the tag first.
package payload

import (
	"context"
	"math/big"

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/GoldenEraGlobal/goldenera-tx-go/internal/gemsgs"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/gecodes"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/getypes"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/rlp"
)

// Payload is implemented by every supported BIP payload variant.
type Payload interface {
	Type() gecodes.PayloadType
	// Encode returns the full payload list, including the leading type code.
	Encode(ctx context.Context) rlp.List
}

// VoteKind is implemented only by Vote, letting the builder check the
// BIP_VOTE per-type invariant ("payload required and of Vote kind")
// without a type switch leaking into pkg/builder.
type VoteKind interface {
	Payload
	isVote()
}

// Encode renders a payload to its complete RLP list encoding (for embedding,
// pre-encoded, as the optional-wrapped payloadRaw field of a transaction).
func Encode(ctx context.Context, p Payload) []byte {
	return p.Encode(ctx).Encode()
}

// Decode reads the type code from the head of a decoded payload list and
// dispatches to the matching variant decoder. Unknown and reserved codes
// both surface as MsgUnknownPayloadCode / MsgReservedPayloadCode.
func Decode(ctx context.Context, el rlp.Element) (Payload, error) {
	if !el.IsList() {
		return nil, i18n.NewError(ctx, gemsgs.MsgRLPExpectedList)
	}
	children := el.Children()
	if len(children) == 0 {
		return nil, i18n.NewError(ctx, gemsgs.MsgUnknownPayloadCode, -1)
	}
	codeData, ok := children[0].(rlp.Data)
	if !ok {
		return nil, i18n.NewError(ctx, gemsgs.MsgRLPExpectedData)
	}
	code := gecodes.PayloadType(codeData.Int().Uint64())
	rest := children[1:]

	switch code {
	case gecodes.PayloadAddressAliasAdd:
		return decodeAddressAliasAdd(ctx, rest)
	case gecodes.PayloadAddressAliasRemove:
		return decodeAddressAliasRemove(ctx, rest)
	case gecodes.PayloadAuthorityAdd:
		return decodeAuthorityAdd(ctx, rest)
	case gecodes.PayloadAuthorityRemove:
		return decodeAuthorityRemove(ctx, rest)
	case gecodes.PayloadNetworkParamsSet:
		return decodeNetworkParamsSet(ctx, rest)
	case gecodes.PayloadTokenBurn:
		return decodeTokenBurn(ctx, rest)
	case gecodes.PayloadTokenCreate:
		return decodeTokenCreate(ctx, rest)
	case gecodes.PayloadTokenMint:
		return decodeTokenMint(ctx, rest)
	case gecodes.PayloadTokenUpdate:
		return decodeTokenUpdate(ctx, rest)
	case gecodes.PayloadVote:
		return decodeVote(ctx, rest)
	case gecodes.PayloadValidatorAdd, gecodes.PayloadValidatorRemove:
		return nil, i18n.NewError(ctx, gemsgs.MsgReservedPayloadCode, int(code))
	default:
		return nil, i18n.NewError(ctx, gemsgs.MsgUnknownPayloadCode, int(code))
	}
}

func field(ctx context.Context, rest []rlp.Element, idx int, name string) (rlp.Element, error) {
	if idx >= len(rest) {
		return nil, i18n.NewError(ctx, gemsgs.MsgMissingField, name, "payload")
	}
	return rest[idx], nil
}

func mandatoryData(ctx context.Context, rest []rlp.Element, idx int, name string) (rlp.Data, error) {
	el, err := field(ctx, rest, idx, name)
	if err != nil {
		return nil, err
	}
	if el.IsList() {
		return nil, i18n.NewError(ctx, gemsgs.MsgRLPExpectedData)
	}
	if d, ok := el.(rlp.Data); ok {
		return d, nil
	}
	return rlp.Data(el.Value()), nil
}

func mandatoryFixed(ctx context.Context, rest []rlp.Element, idx int, name string, width int) ([]byte, error) {
	d, err := mandatoryData(ctx, rest, idx, name)
	if err != nil {
		return nil, err
	}
	if len(d) != width {
		return nil, i18n.NewError(ctx, gemsgs.MsgRLPWrongFieldLength, name, width, len(d))
	}
	return []byte(d), nil
}

func mandatoryAddress(ctx context.Context, rest []rlp.Element, idx int, name string) (getypes.Address, error) {
	var a getypes.Address
	b, err := mandatoryFixed(ctx, rest, idx, name, 20)
	if err != nil {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}

func mandatoryString(ctx context.Context, rest []rlp.Element, idx int, name string) (string, error) {
	d, err := mandatoryData(ctx, rest, idx, name)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func mandatoryUint8(ctx context.Context, rest []rlp.Element, idx int, name string) (uint8, error) {
	d, err := mandatoryData(ctx, rest, idx, name)
	if err != nil {
		return 0, err
	}
	return uint8(d.Int().Uint64()), nil
}

func mandatoryBool(ctx context.Context, rest []rlp.Element, idx int, name string) (bool, error) {
	d, err := mandatoryData(ctx, rest, idx, name)
	if err != nil {
		return false, err
	}
	return d.Int().Sign() != 0, nil
}

func mandatoryBigInt(ctx context.Context, rest []rlp.Element, idx int, name string) (*big.Int, error) {
	d, err := mandatoryData(ctx, rest, idx, name)
	if err != nil {
		return nil, err
	}
	return d.Int(), nil
}

func optionalField(ctx context.Context, rest []rlp.Element, idx int, name string) (rlp.Element, error) {
	if idx >= len(rest) {
		// Trailing optional fields may simply be absent from the encoding.
		return rlp.List{}, nil
	}
	return rest[idx], nil
}

func errUnknownVoteCode(ctx context.Context, code int) error {
	return i18n.NewError(ctx, gemsgs.MsgUnknownVoteCode, code)
}
