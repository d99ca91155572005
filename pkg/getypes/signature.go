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
	"math/big"

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/GoldenEraGlobal/goldenera-tx-go/internal/gemsgs"
)

// Signature is the 65-byte Ethereum-style r(32)‖s(32)‖v(1) signature.
type Signature [65]byte

func NewSignature(ctx context.Context, s string) (Signature, error) {
	var sig Signature
	err := parseFixedHex(ctx, s, sig[:])
	return sig, err
}

// NewSignatureFromParts left-pads r and s into 32 bytes each and appends v.
func NewSignatureFromParts(r, s *big.Int, v byte) Signature {
	var sig Signature
	r.FillBytes(sig[0:32])
	s.FillBytes(sig[32:64])
	sig[64] = v
	return sig
}

func (s Signature) R() *big.Int {
	return new(big.Int).SetBytes(s[0:32])
}

func (s Signature) S() *big.Int {
	return new(big.Int).SetBytes(s[32:64])
}

func (s Signature) V() byte {
	return s[64]
}

func (s Signature) Bytes() []byte {
	return s[:]
}

func (s Signature) String() string {
	return "0x" + hex.EncodeToString(s[:])
}

func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Signature) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	parsed, err := NewSignature(context.Background(), str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// NewSignatureFromBytes validates the input is exactly 65 bytes before wrapping it.
func NewSignatureFromBytes(ctx context.Context, b []byte) (Signature, error) {
	var sig Signature
	if len(b) != 65 {
		return sig, i18n.NewError(ctx, gemsgs.MsgBadSignatureLength, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}
