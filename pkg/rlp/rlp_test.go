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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarZeroIsEmptyString(t *testing.T) {
	assert.Equal(t, []byte{0x80}, WrapBigInt(big.NewInt(0)).Encode())
	assert.Equal(t, []byte{0x80}, WrapUint(0).Encode())
}

func TestSingleByteScalarsBelow0x80(t *testing.T) {
	assert.Equal(t, []byte{0x01}, WrapUint(1).Encode())
	assert.Equal(t, []byte{0x7f}, WrapUint(0x7f).Encode())
}

func TestSingleByteScalarsAtOrAbove0x80GainPrefix(t *testing.T) {
	assert.Equal(t, []byte{0x81, 0x80}, WrapUint(0x80).Encode())
	assert.Equal(t, []byte{0x81, 0xff}, WrapUint(0xff).Encode())
}

func TestShortStringEncoding(t *testing.T) {
	assert.Equal(t, []byte{0x83, 'd', 'o', 'g'}, Data("dog").Encode())
}

func TestEmptyStringEncoding(t *testing.T) {
	assert.Equal(t, []byte{0x80}, Data{}.Encode())
}

func TestLongStringEncoding(t *testing.T) {
	body := make([]byte, 56)
	for i := range body {
		body[i] = 'x'
	}
	enc := Data(body).Encode()
	assert.Equal(t, byte(0xb8), enc[0])
	assert.Equal(t, byte(56), enc[1])
	assert.Equal(t, body, enc[2:])
}

func TestEmptyListEncodesAsC0(t *testing.T) {
	assert.Equal(t, []byte{0xc0}, List{}.Encode())
}

func TestShortListEncoding(t *testing.T) {
	l := List{Data("cat"), Data("dog")}
	assert.Equal(t, []byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'}, l.Encode())
}

func TestRoundTripNestedLists(t *testing.T) {
	ctx := context.Background()
	l := List{Data{0x01}, List{Data{0x02}, Data{}}, Data("hello world")}
	encoded := l.Encode()
	decoded, err := DecodeExact(ctx, encoded)
	assert.NoError(t, err)
	assert.True(t, decoded.IsList())
	children := decoded.Children()
	assert.Len(t, children, 3)
	assert.Equal(t, Data{0x01}, children[0])
	assert.True(t, children[1].IsList())
	assert.Equal(t, Data("hello world"), children[2])
}

func TestDecodeTruncatedErrors(t *testing.T) {
	ctx := context.Background()
	_, _, err := Decode(ctx, []byte{0x83, 'd', 'o'})
	assert.Error(t, err)
}

func TestDecodeTrailingBytesErrors(t *testing.T) {
	ctx := context.Background()
	_, err := DecodeExact(ctx, []byte{0x80, 0x80})
	assert.Error(t, err)
}

func TestOptionalAbsentIsEmptyList(t *testing.T) {
	assert.Equal(t, []byte{0xc0}, WrapOptionalBigInt(false, nil).Encode())
	assert.Equal(t, []byte{0xc0}, WrapOptionalUint(false, 0).Encode())
}

func TestOptionalZeroIsNotAbsent(t *testing.T) {
	// nonce=0 encodes as [0x80] (a list of one element, the empty-bytes scalar),
	// distinct from nonce=absent which is 0xc0.
	present := WrapOptionalUint(true, 0).Encode()
	absent := WrapOptionalUint(false, 0).Encode()
	assert.Equal(t, []byte{0xc1, 0x80}, present)
	assert.Equal(t, []byte{0xc0}, absent)
	assert.NotEqual(t, present, absent)
}

func TestOptionalRoundTrip(t *testing.T) {
	ctx := context.Background()

	encoded := WrapOptionalBigInt(true, big.NewInt(42)).Encode()
	el, _, err := Decode(ctx, encoded)
	assert.NoError(t, err)
	v, err := UnwrapOptionalBigInt(ctx, "amount", el)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), v.Int64())

	encodedAbsent := WrapOptionalBigInt(false, nil).Encode()
	elAbsent, _, err := Decode(ctx, encodedAbsent)
	assert.NoError(t, err)
	vAbsent, err := UnwrapOptionalBigInt(ctx, "amount", elAbsent)
	assert.NoError(t, err)
	assert.Nil(t, vAbsent)
}

func TestUnwrapOptionalFixedRejectsWrongLength(t *testing.T) {
	ctx := context.Background()
	encoded := WrapOptionalBytes(true, []byte{0x01, 0x02, 0x03}).Encode()
	el, _, err := Decode(ctx, encoded)
	assert.NoError(t, err)
	_, _, err = UnwrapOptionalFixed(ctx, "recipient", el, 20)
	assert.Error(t, err)
}

func TestUnwrapOptionalWrongListLength(t *testing.T) {
	ctx := context.Background()
	// A 2-element "optional" wrapper is malformed.
	bad := List{Data{0x01}, Data{0x02}}
	_, _, err := UnwrapOptional(ctx, "nonce", bad)
	assert.Error(t, err)
}
