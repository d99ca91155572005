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

package payload

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/gecodes"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/getypes"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/rlp"
)

func roundTrip(t *testing.T, p Payload) Payload {
	ctx := context.Background()
	encoded := Encode(ctx, p)
	el, err := rlp.DecodeExact(ctx, encoded)
	require.NoError(t, err)
	decoded, err := Decode(ctx, el)
	require.NoError(t, err)
	return decoded
}

func TestAddressAliasAddRoundTrip(t *testing.T) {
	p := &AddressAliasAdd{
		Alias:   "treasury",
		Address: getypes.MustNewAddress("0x1111111111111111111111111111111111111111"),
	}
	decoded := roundTrip(t, p).(*AddressAliasAdd)
	assert.Equal(t, p.Alias, decoded.Alias)
	assert.Equal(t, p.Address, decoded.Address)
	assert.Equal(t, gecodes.PayloadAddressAliasAdd, decoded.Type())
}

func TestTokenMintRoundTrip(t *testing.T) {
	p := &TokenMint{
		TokenAddress: getypes.MustNewAddress("0x3333333333333333333333333333333333333333"),
		Recipient:    getypes.MustNewAddress("0x4444444444444444444444444444444444444444"),
		Amount:       big.NewInt(1000000),
	}
	decoded := roundTrip(t, p).(*TokenMint)
	assert.Equal(t, p.TokenAddress, decoded.TokenAddress)
	assert.Equal(t, p.Recipient, decoded.Recipient)
	assert.Equal(t, 0, p.Amount.Cmp(decoded.Amount))
}

func TestTokenCreateRoundTripWithOptionalFields(t *testing.T) {
	website := "https://example.test"
	p := &TokenCreate{
		Name:             "TestToken",
		SmallestUnitName: "TT",
		NumberOfDecimals: 9,
		WebsiteUrl:       &website,
		MaxSupply:        big.NewInt(42),
		UserBurnable:     true,
	}
	decoded := roundTrip(t, p).(*TokenCreate)
	assert.Equal(t, p.Name, decoded.Name)
	assert.Equal(t, p.SmallestUnitName, decoded.SmallestUnitName)
	assert.Equal(t, p.NumberOfDecimals, decoded.NumberOfDecimals)
	require.NotNil(t, decoded.WebsiteUrl)
	assert.Equal(t, website, *decoded.WebsiteUrl)
	assert.Nil(t, decoded.LogoUrl)
	assert.True(t, decoded.UserBurnable)
}

func TestVoteRoundTripAndVoteKind(t *testing.T) {
	p := &Vote{VoteType: gecodes.VoteApproval}
	decoded := roundTrip(t, p).(*Vote)
	assert.Equal(t, gecodes.VoteApproval, decoded.VoteType)

	var _ VoteKind = p
	var _ VoteKind = decoded
}

func TestNetworkParamsSetOmittedFieldsDecodeAsNil(t *testing.T) {
	p := &NetworkParamsSet{
		BlockReward:  big.NewInt(50),
		MinTxBaseFee: big.NewInt(10000),
	}
	decoded := roundTrip(t, p).(*NetworkParamsSet)
	require.NotNil(t, decoded.BlockReward)
	assert.Equal(t, 0, p.BlockReward.Cmp(decoded.BlockReward))
	assert.Nil(t, decoded.BlockRewardPoolAddress)
	assert.Nil(t, decoded.TargetMiningTimeMs)
}

func TestDecodeRejectsUnknownPayloadCode(t *testing.T) {
	ctx := context.Background()
	list := rlp.List{rlp.WrapUint(250)}
	_, err := Decode(ctx, list)
	assert.Error(t, err)
}

func TestDecodeRejectsReservedPayloadCode(t *testing.T) {
	ctx := context.Background()
	list := rlp.List{rlp.WrapUint(uint64(gecodes.PayloadValidatorAdd))}
	_, err := Decode(ctx, list)
	assert.Error(t, err)
}
