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

// Package amount converts between human-readable decimal token strings and
// wei, the unsigned integer unit carried on the wire. It is a convenience
// for callers (spec §6 "Amount utilities") and never consulted by the RLP
// codec or the signing pipeline.
package amount

import (
	"context"
	"math/big"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/shopspring/decimal"

	"github.com/GoldenEraGlobal/goldenera-tx-go/internal/gemsgs"
)

// WeiPerTokenDecimals is the single source of truth for the native-token decimal
// exponent (spec §9 Open Questions: 8 decimals is authoritative, not 9).
const WeiPerTokenDecimals = 8

var weiPerToken = decimal.New(1, WeiPerTokenDecimals)

// DecimalToWei converts a decimal token-amount string (e.g. "1.5") into wei,
// honoring the given number of fractional decimals (up to 18, per §6).
func DecimalToWei(ctx context.Context, s string, decimals uint8) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, i18n.NewError(ctx, gemsgs.MsgInvalidDecimalString, s)
	}
	if d.Sign() < 0 {
		return nil, i18n.NewError(ctx, gemsgs.MsgNegativeAmount, s)
	}
	if -d.Exponent() > int32(decimals) {
		return nil, i18n.NewError(ctx, gemsgs.MsgTooManyDecimals, s, decimals)
	}
	scale := decimal.New(1, int32(decimals))
	wei := d.Mul(scale)
	return wei.BigInt(), nil
}

// WeiToDecimal renders a wei amount as a decimal token-amount string.
func WeiToDecimal(wei *big.Int, decimals uint8) string {
	d := decimal.NewFromBigInt(wei, 0)
	scale := decimal.New(1, int32(decimals))
	return d.DivRound(scale, int32(decimals)).String()
}

// TokensToWei converts a whole/fractional native-token amount using the
// authoritative 8-decimal exponent.
func TokensToWei(ctx context.Context, s string) (*big.Int, error) {
	return DecimalToWei(ctx, s, WeiPerTokenDecimals)
}

// WeiToTokens renders wei as a native-token decimal string using the
// authoritative 8-decimal exponent.
func WeiToTokens(wei *big.Int) string {
	return WeiToDecimal(wei, WeiPerTokenDecimals)
}
