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

// Package getypes holds the fixed-width byte primitives (Address, Hash,
// Signature) shared by the codec, signing and builder packages. Hex string
// forms are always lowercase and 0x-prefixed.
package getypes

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/GoldenEraGlobal/goldenera-tx-go/internal/gemsgs"
)

// parseFixedHex decodes a 0x-prefixed (or bare) hex string into exactly
// len(dst) bytes, copying into dst. Used by NewAddress/NewHash/NewSignature.
func parseFixedHex(ctx context.Context, s string, dst []byte) error {
	b, err := decodeHexString(ctx, s)
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return i18n.NewError(ctx, gemsgs.MsgHexWrongLength, len(dst), len(b))
	}
	copy(dst, b)
	return nil
}

func decodeHexString(ctx context.Context, s string) ([]byte, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(trimmed)%2 != 0 {
		return nil, i18n.NewError(ctx, gemsgs.MsgHexOddLength, s)
	}
	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, i18n.NewError(ctx, gemsgs.MsgHexInvalidChars, s)
	}
	return b, nil
}
