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

package getypes

import (
	"context"
	"encoding/hex"
	"encoding/json"
)

// Address is a 20-byte GoldenEra account/token address.
type Address [20]byte

// NativeToken is the all-zero address sentinel denoting the chain's native asset.
var NativeToken = Address{}

// NewAddress parses a 0x-prefixed (or bare) hex string into an Address.
func NewAddress(ctx context.Context, s string) (Address, error) {
	var a Address
	err := parseFixedHex(ctx, s, a[:])
	return a, err
}

// MustNewAddress panics on a malformed literal. Intended for constants/tests only.
func MustNewAddress(s string) Address {
	a, err := NewAddress(context.Background(), s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) IsNativeToken() bool {
	return a == NativeToken
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := NewAddress(context.Background(), s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
