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

// Package vectors builds the six named seed scenarios of spec §8, each
// signed with a key derived through pkg/seed from a literal BIP-39
// mnemonic. The package tests check them for self-consistency (round-trip
// and determinism); no reference-implementation bytes are embedded to
// compare them against.
package vectors

import (
	"context"
	"math/big"

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/GoldenEraGlobal/goldenera-tx-go/internal/gemsgs"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/amount"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/builder"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/gecodes"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/getx"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/getypes"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/payload"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/secp256k1"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/seed"
)

type keyPair = *secp256k1.KeyPair

// Mnemonic is the literal BIP-39 phrase spec §8 fixes for every scenario.
const Mnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// BaseTimestampMs is the first scenario's per-test monotonic timestamp.
const BaseTimestampMs = 1702200000000

// Scenario names, exactly as spec §8 lists them.
const (
	SimpleTransfer        = "simple_transfer"
	TransferWithMessage   = "transfer_with_message"
	BIPTokenMint          = "bip_token_mint"
	BIPTokenCreate        = "bip_token_create"
	BIPVoteApproval       = "bip_vote_approval"
	BIPNetworkParamsSet   = "bip_network_params_set"
)

// Names lists every scenario in spec order.
var Names = []string{
	SimpleTransfer,
	TransferWithMessage,
	BIPTokenMint,
	BIPTokenCreate,
	BIPVoteApproval,
	BIPNetworkParamsSet,
}

// Build constructs and signs the named scenario, deriving its signing key
// from account index 0 of the literal mnemonic.
func Build(ctx context.Context, name string) (*getx.Tx, error) {
	s, err := seed.SeedFromMnemonic(ctx, Mnemonic, "")
	if err != nil {
		return nil, err
	}
	kp, err := seed.DeriveKeyPair(ctx, s, 0)
	if err != nil {
		return nil, err
	}

	switch name {
	case SimpleTransfer:
		return buildSimpleTransfer(ctx, kp)
	case TransferWithMessage:
		return buildTransferWithMessage(ctx, kp)
	case BIPTokenMint:
		return buildBIPTokenMint(ctx, kp)
	case BIPTokenCreate:
		return buildBIPTokenCreate(ctx, kp)
	case BIPVoteApproval:
		return buildBIPVoteApproval(ctx, kp)
	case BIPNetworkParamsSet:
		return buildBIPNetworkParamsSet(ctx, kp)
	default:
		return nil, i18n.NewError(ctx, gemsgs.MsgUnknownScenario, name)
	}
}

func buildSimpleTransfer(ctx context.Context, kp keyPair) (*getx.Tx, error) {
	amt, err := amount.TokensToWei(ctx, "100")
	if err != nil {
		return nil, err
	}
	fee, err := amount.DecimalToWei(ctx, "0.001", amount.WeiPerTokenDecimals)
	if err != nil {
		return nil, err
	}
	recipient := getypes.MustNewAddress("0x1111111111111111111111111111111111111111")

	return builder.New(gecodes.TxTypeTransfer, gecodes.NetworkMainnet).
		Timestamp(BaseTimestampMs).
		Nonce(1).
		Recipient(recipient).
		Amount(amt).
		Fee(fee).
		Sign(ctx, kp)
}

func buildTransferWithMessage(ctx context.Context, kp keyPair) (*getx.Tx, error) {
	amt, err := amount.TokensToWei(ctx, "1.5")
	if err != nil {
		return nil, err
	}
	fee, err := amount.TokensToWei(ctx, "1")
	if err != nil {
		return nil, err
	}
	recipient := getypes.MustNewAddress("0x2222222222222222222222222222222222222222")

	return builder.New(gecodes.TxTypeTransfer, gecodes.NetworkTestnet).
		Timestamp(BaseTimestampMs + 1).
		Nonce(42).
		Recipient(recipient).
		Amount(amt).
		Fee(fee).
		Message([]byte("Hello GoldenEra!")).
		Sign(ctx, kp)
}

func buildBIPTokenMint(ctx context.Context, kp keyPair) (*getx.Tx, error) {
	mintAmount, err := amount.TokensToWei(ctx, "1000000")
	if err != nil {
		return nil, err
	}
	fee, err := amount.DecimalToWei(ctx, "0.01", amount.WeiPerTokenDecimals)
	if err != nil {
		return nil, err
	}
	p := &payload.TokenMint{
		TokenAddress: getypes.MustNewAddress("0x3333333333333333333333333333333333333333"),
		Recipient:    getypes.MustNewAddress("0x4444444444444444444444444444444444444444"),
		Amount:       mintAmount,
	}

	return builder.New(gecodes.TxTypeBIPCreate, gecodes.NetworkMainnet).
		Timestamp(BaseTimestampMs + 2).
		Nonce(10).
		Payload(p).
		Fee(fee).
		Sign(ctx, kp)
}

func buildBIPTokenCreate(ctx context.Context, kp keyPair) (*getx.Tx, error) {
	maxSupply, err := amount.DecimalToWei(ctx, "1000000000", 9)
	if err != nil {
		return nil, err
	}
	website := "https://testtoken.example"
	logo := "https://testtoken.example/logo.png"
	p := &payload.TokenCreate{
		Name:             "TestToken",
		SmallestUnitName: "TT",
		NumberOfDecimals: 9,
		WebsiteUrl:       &website,
		LogoUrl:          &logo,
		MaxSupply:        maxSupply,
		UserBurnable:     true,
	}

	return builder.New(gecodes.TxTypeBIPCreate, gecodes.NetworkMainnet).
		Timestamp(BaseTimestampMs + 3).
		Payload(p).
		Fee(big.NewInt(0)).
		Sign(ctx, kp)
}

func buildBIPVoteApproval(ctx context.Context, kp keyPair) (*getx.Tx, error) {
	fee, err := amount.DecimalToWei(ctx, "0.001", amount.WeiPerTokenDecimals)
	if err != nil {
		return nil, err
	}
	referenceHash := getypes.MustNewHash("0xabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcd")
	p := &payload.Vote{VoteType: gecodes.VoteApproval}

	return builder.New(gecodes.TxTypeBIPVote, gecodes.NetworkMainnet).
		Timestamp(BaseTimestampMs + 4).
		Nonce(100).
		Payload(p).
		ReferenceHash(referenceHash).
		Fee(fee).
		Sign(ctx, kp)
}

func buildBIPNetworkParamsSet(ctx context.Context, kp keyPair) (*getx.Tx, error) {
	blockReward, err := amount.TokensToWei(ctx, "50")
	if err != nil {
		return nil, err
	}
	minTxBaseFee := big.NewInt(10000)
	minTxByteFee := big.NewInt(1000)
	p := &payload.NetworkParamsSet{
		BlockReward:  blockReward,
		MinTxBaseFee: minTxBaseFee,
		MinTxByteFee: minTxByteFee,
	}

	return builder.New(gecodes.TxTypeBIPCreate, gecodes.NetworkMainnet).
		Timestamp(BaseTimestampMs + 5).
		Payload(p).
		Fee(big.NewInt(0)).
		Sign(ctx, kp)
}
