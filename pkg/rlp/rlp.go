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

// Package rlp implements the recursive length-prefix encoding used for all
// GoldenEra wire formats, plus the repository-specific "optional-as-list"
// convention layered on top of it (see Wrap*/Unwrap* in optional.go).
package rlp

import "math/big"

const (
	// [0x80] a string of 0-55 bytes is prefixed with 0x80+len.
	shortString byte = 0x80
	// [0xb7] a string longer than 55 bytes is prefixed with 0xb7+lenOfLen.
	longString byte = 0xb7
	// [0xc0] a list whose payload is 0-55 bytes is prefixed with 0xc0+len.
	shortList byte = 0xc0
	// [0xf7] a list whose payload is longer than 55 bytes is prefixed with 0xf7+lenOfLen.
	longList byte = 0xf7

	// maxLenOfLen bounds how many bytes we will ever trust as a length-of-length,
	// rejecting absurd prefixes before they drive a huge allocation.
	maxLenOfLen = 8
)

// Element is a single decoded (or about-to-be-encoded) RLP node: either a
// byte string (Data) or a list of child Elements (List).
type Element interface {
	IsList() bool
	Value() []byte
	Children() List
	Encode() []byte
}

// Data is an RLP byte-string element. Scalars are Data holding the minimal
// big-endian encoding of the value (zero encodes as empty Data).
type Data []byte

func (d Data) IsList() bool     { return false }
func (d Data) Value() []byte    { return d }
func (d Data) Children() List   { return nil }
func (d Data) Encode() []byte   { return encodeBytes(d, false) }
func (d Data) Int() *big.Int    { return new(big.Int).SetBytes(d) }
func (d Data) IsEmpty() bool    { return len(d) == 0 }

// List is an RLP list element: an ordered sequence of child Elements.
type List []Element

func (l List) IsList() bool   { return true }
func (l List) Value() []byte  { return nil }
func (l List) Children() List { return l }

func (l List) Encode() []byte {
	var body []byte
	for _, child := range l {
		body = append(body, child.Encode()...)
	}
	return encodeBytes(body, true)
}

// Raw wraps bytes that are already a complete RLP encoding (e.g. a payload's
// pre-encoded list) so they can be nested as a single child without being
// re-encoded as a byte string.
type Raw []byte

func (r Raw) IsList() bool   { return len(r) > 0 && r[0] >= shortList }
func (r Raw) Value() []byte  { return r }
func (r Raw) Children() List { return nil }
func (r Raw) Encode() []byte { return r }

// WrapUint encodes an unsigned 64-bit scalar per the minimal big-endian rule.
func WrapUint(v uint64) Data {
	return Data(new(big.Int).SetUint64(v).Bytes())
}

// WrapBigInt encodes an arbitrary-precision unsigned scalar.
func WrapBigInt(v *big.Int) Data {
	if v == nil {
		return Data{}
	}
	return Data(v.Bytes())
}

// WrapBytes wraps a raw byte string (not list-wrapped, not a scalar).
func WrapBytes(b []byte) Data {
	return Data(b)
}
