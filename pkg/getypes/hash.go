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

// Hash is a 32-byte Keccak-256 digest (signing hash, canonical hash, or a
// referenceHash pointing at a BIP).
type Hash [32]byte

func NewHash(ctx context.Context, s string) (Hash, error) {
	var h Hash
	err := parseFixedHex(ctx, s, h[:])
	return h, err
}

func MustNewHash(s string) Hash {
	h, err := NewHash(context.Background(), s)
	if err != nil {
		panic(err)
	}
	return h
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) IsZero() bool {
	return h == Hash{}
}

func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := NewHash(context.Background(), s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
