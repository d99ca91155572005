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

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/GoldenEraGlobal/goldenera-tx-go/internal/gemsgs"
)

// Decode decodes a single RLP element at the start of b, and returns the
// position immediately after it. Any trailing bytes are left unconsumed -
// callers that expect b to hold exactly one element (as every GoldenEra
// wire format does) should check that the returned position equals len(b).
func Decode(ctx context.Context, b []byte) (Element, int, error) {
	if len(b) == 0 {
		return Data{}, 0, nil
	}
	el, pos, err := decodeOne(ctx, b)
	if err != nil {
		return nil, -1, err
	}
	return el, pos, nil
}

// DecodeExact decodes b as a single element and errors if any bytes remain.
func DecodeExact(ctx context.Context, b []byte) (Element, error) {
	el, pos, err := Decode(ctx, b)
	if err != nil {
		return nil, err
	}
	if pos != len(b) {
		return nil, i18n.NewError(ctx, gemsgs.MsgRLPTrailingBytes, len(b)-pos)
	}
	return el, nil
}

func decodeOne(ctx context.Context, b []byte) (Element, int, error) {
	prefix := b[0]
	switch {
	case prefix < shortString:
		return Data{b[0]}, 1, nil

	case prefix == shortString:
		return Data{}, 1, nil

	case prefix <= longString:
		strLen := int(prefix - shortString)
		return decodeDataOfLength(ctx, b, 1, strLen)

	case prefix < shortList:
		lenOfLen := int(prefix - longString)
		strLen, pos, err := decodeLength(ctx, b, 1, lenOfLen)
		if err != nil {
			return nil, -1, err
		}
		return decodeDataOfLength(ctx, b, pos, strLen)

	case prefix <= longList:
		listLen := int(prefix - shortList)
		return decodeListOfLength(ctx, b, 1, listLen)

	default:
		lenOfLen := int(prefix - longList)
		listLen, pos, err := decodeLength(ctx, b, 1, lenOfLen)
		if err != nil {
			return nil, -1, err
		}
		return decodeListOfLength(ctx, b, pos, listLen)
	}
}

func decodeDataOfLength(ctx context.Context, b []byte, pos, strLen int) (Element, int, error) {
	if strLen > len(b)-pos {
		return nil, -1, i18n.NewError(ctx, gemsgs.MsgRLPTruncated, pos, strLen-(len(b)-pos))
	}
	d := make(Data, strLen)
	copy(d, b[pos:pos+strLen])
	return d, pos + strLen, nil
}

func decodeListOfLength(ctx context.Context, b []byte, pos, listLen int) (Element, int, error) {
	if listLen > len(b)-pos {
		return nil, -1, i18n.NewError(ctx, gemsgs.MsgRLPTruncated, pos, listLen-(len(b)-pos))
	}
	children, err := decodeChildren(ctx, b[pos:pos+listLen])
	if err != nil {
		return nil, -1, err
	}
	return children, pos + listLen, nil
}

func decodeChildren(ctx context.Context, b []byte) (List, error) {
	l := List{}
	pos := 0
	for pos < len(b) {
		el, newPos, err := decodeOne(ctx, b[pos:])
		if err != nil {
			return nil, err
		}
		l = append(l, el)
		pos += newPos
	}
	return l, nil
}

func decodeLength(ctx context.Context, b []byte, pos, lenOfLen int) (length, newPos int, err error) {
	if lenOfLen > maxLenOfLen {
		return -1, -1, i18n.NewError(ctx, gemsgs.MsgRLPOversizeLength, pos)
	}
	if lenOfLen > len(b)-pos {
		return -1, -1, i18n.NewError(ctx, gemsgs.MsgRLPTruncated, pos, lenOfLen-(len(b)-pos))
	}
	lenBytes := b[pos : pos+lenOfLen]
	if len(lenBytes) > 0 && lenBytes[0] == 0x00 {
		// A minimal encoding never has a leading zero in the length-of-length.
		return -1, -1, i18n.NewError(ctx, gemsgs.MsgRLPOversizeLength, pos)
	}
	var v uint64
	for _, bb := range lenBytes {
		v = v<<8 | uint64(bb)
	}
	if v > uint64(^uint32(0)) {
		return -1, -1, i18n.NewError(ctx, gemsgs.MsgRLPOversizeLength, pos)
	}
	return int(v), pos + lenOfLen, nil
}
