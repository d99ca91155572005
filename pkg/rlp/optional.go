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

package rlp

import (
	"context"
	"math/big"

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/GoldenEraGlobal/goldenera-tx-go/internal/gemsgs"
)

// This file implements the "optional-as-list" convention: a present value v
// is wire-encoded as the single-element list [v]; an absent value is the
// empty list. This is a protocol invariant, not a language-level "maybe"
// type - absent and zero/empty are always distinguishable on the wire.

// WrapOptionalBigInt wraps an optional arbitrary-precision scalar.
func WrapOptionalBigInt(present bool, v *big.Int) Element {
	if !present || v == nil {
		return List{}
	}
	return List{WrapBigInt(v)}
}

// WrapOptionalUint wraps an optional 64-bit scalar.
func WrapOptionalUint(present bool, v uint64) Element {
	if !present {
		return List{}
	}
	return List{WrapUint(v)}
}

// WrapOptionalBytes wraps optional raw bytes (an address, a hash, a message, ...).
func WrapOptionalBytes(present bool, b []byte) Element {
	if !present {
		return List{}
	}
	return List{WrapBytes(b)}
}

// WrapOptionalRaw wraps an optional, already-RLP-encoded child (e.g. a payload list).
func WrapOptionalRaw(present bool, raw []byte) Element {
	if !present {
		return List{}
	}
	return List{Raw(raw)}
}

// UnwrapOptional validates the optional-list-wrapper shape and returns the
// inner element plus whether a value was present.
func UnwrapOptional(ctx context.Context, field string, el Element) (Element, bool, error) {
	if !el.IsList() {
		return nil, false, i18n.NewError(ctx, gemsgs.MsgRLPExpectedList)
	}
	children := el.Children()
	switch len(children) {
	case 0:
		return nil, false, nil
	case 1:
		return children[0], true, nil
	default:
		return nil, false, i18n.NewError(ctx, gemsgs.MsgRLPWrongListLength, field, len(children))
	}
}

// UnwrapOptionalBigInt decodes an optional scalar, returning nil if absent.
func UnwrapOptionalBigInt(ctx context.Context, field string, el Element) (*big.Int, error) {
	inner, present, err := UnwrapOptional(ctx, field, el)
	if err != nil || !present {
		return nil, err
	}
	d, err := asData(ctx, field, inner)
	if err != nil {
		return nil, err
	}
	return d.Int(), nil
}

// UnwrapOptionalUint decodes an optional 64-bit scalar, returning (0, false) if absent.
func UnwrapOptionalUint(ctx context.Context, field string, el Element) (uint64, bool, error) {
	inner, present, err := UnwrapOptional(ctx, field, el)
	if err != nil || !present {
		return 0, false, err
	}
	d, err := asData(ctx, field, inner)
	if err != nil {
		return 0, false, err
	}
	return d.Int().Uint64(), true, nil
}

// UnwrapOptionalBytes decodes optional raw bytes, returning nil if absent.
func UnwrapOptionalBytes(ctx context.Context, field string, el Element) ([]byte, error) {
	inner, present, err := UnwrapOptional(ctx, field, el)
	if err != nil || !present {
		return nil, err
	}
	d, err := asData(ctx, field, inner)
	if err != nil {
		return nil, err
	}
	return []byte(d), nil
}

// UnwrapOptionalFixed decodes optional raw bytes, requiring the fixed width if present.
func UnwrapOptionalFixed(ctx context.Context, field string, el Element, width int) ([]byte, bool, error) {
	b, err := UnwrapOptionalBytes(ctx, field, el)
	if err != nil {
		return nil, false, err
	}
	if b == nil {
		return nil, false, nil
	}
	if len(b) != width {
		return nil, false, i18n.NewError(ctx, gemsgs.MsgRLPWrongFieldLength, field, width, len(b))
	}
	return b, true, nil
}

func asData(ctx context.Context, field string, el Element) (Data, error) {
	if el.IsList() {
		return nil, i18n.NewError(ctx, gemsgs.MsgRLPExpectedData)
	}
	if d, ok := el.(Data); ok {
		return d, nil
	}
	return Data(el.Value()), nil
}
