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

	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/gecodes"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/getypes"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/rlp"
)

func boolScalar(b bool) rlp.Data {
	if b {
		return rlp.WrapUint(1)
	}
	return rlp.WrapUint(0)
}

// AddressAliasAdd registers a human-readable alias for an address. Note the
// field order - alias before address - is normative for the wire encoding.
type AddressAliasAdd struct {
	Alias   string
	Address getypes.Address
}

func (p *AddressAliasAdd) Type() gecodes.PayloadType { return gecodes.PayloadAddressAliasAdd }

func (p *AddressAliasAdd) Encode(_ context.Context) rlp.List {
	return rlp.List{
		rlp.WrapUint(uint64(p.Type())),
		rlp.WrapBytes([]byte(p.Alias)),
		rlp.WrapBytes(p.Address.Bytes()),
	}
}

func decodeAddressAliasAdd(ctx context.Context, rest []rlp.Element) (Payload, error) {
	alias, err := mandatoryString(ctx, rest, 0, "alias")
	if err != nil {
		return nil, err
	}
	addrBytes, err := mandatoryFixed(ctx, rest, 1, "address", 20)
	if err != nil {
		return nil, err
	}
	p := &AddressAliasAdd{Alias: alias}
	copy(p.Address[:], addrBytes)
	return p, nil
}

// AddressAliasRemove removes a previously registered alias.
type AddressAliasRemove struct {
	Alias string
}

func (p *AddressAliasRemove) Type() gecodes.PayloadType { return gecodes.PayloadAddressAliasRemove }

func (p *AddressAliasRemove) Encode(_ context.Context) rlp.List {
	return rlp.List{
		rlp.WrapUint(uint64(p.Type())),
		rlp.WrapBytes([]byte(p.Alias)),
	}
}

func decodeAddressAliasRemove(ctx context.Context, rest []rlp.Element) (Payload, error) {
	alias, err := mandatoryString(ctx, rest, 0, "alias")
	if err != nil {
		return nil, err
	}
	return &AddressAliasRemove{Alias: alias}, nil
}

// AuthorityAdd grants network-authority status to an address.
type AuthorityAdd struct {
	AuthorityAddress getypes.Address
}

func (p *AuthorityAdd) Type() gecodes.PayloadType { return gecodes.PayloadAuthorityAdd }

func (p *AuthorityAdd) Encode(_ context.Context) rlp.List {
	return rlp.List{
		rlp.WrapUint(uint64(p.Type())),
		rlp.WrapBytes(p.AuthorityAddress.Bytes()),
	}
}

func decodeAuthorityAdd(ctx context.Context, rest []rlp.Element) (Payload, error) {
	addr, err := mandatoryAddress(ctx, rest, 0, "authorityAddress")
	if err != nil {
		return nil, err
	}
	return &AuthorityAdd{AuthorityAddress: addr}, nil
}

// AuthorityRemove revokes network-authority status from an address.
type AuthorityRemove struct {
	AuthorityAddress getypes.Address
}

func (p *AuthorityRemove) Type() gecodes.PayloadType { return gecodes.PayloadAuthorityRemove }

func (p *AuthorityRemove) Encode(_ context.Context) rlp.List {
	return rlp.List{
		rlp.WrapUint(uint64(p.Type())),
		rlp.WrapBytes(p.AuthorityAddress.Bytes()),
	}
}

func decodeAuthorityRemove(ctx context.Context, rest []rlp.Element) (Payload, error) {
	addr, err := mandatoryAddress(ctx, rest, 0, "authorityAddress")
	if err != nil {
		return nil, err
	}
	return &AuthorityRemove{AuthorityAddress: addr}, nil
}

// NetworkParamsSet updates one or more consensus parameters. Every field is
// independently optional; omitted parameters encode as empty lists and
// decode back to nil/absent.
type NetworkParamsSet struct {
	BlockReward            *big.Int
	BlockRewardPoolAddress *getypes.Address
	TargetMiningTimeMs     *uint64
	AsertHalfLifeBlocks    *uint64
	MinDifficulty          *big.Int
	MinTxBaseFee           *big.Int
	MinTxByteFee           *big.Int
}

func (p *NetworkParamsSet) Type() gecodes.PayloadType { return gecodes.PayloadNetworkParamsSet }

func (p *NetworkParamsSet) Encode(_ context.Context) rlp.List {
	return rlp.List{
		rlp.WrapUint(uint64(p.Type())),
		rlp.WrapOptionalBigInt(p.BlockReward != nil, p.BlockReward),
		rlp.WrapOptionalBytes(p.BlockRewardPoolAddress != nil, addrBytesOrNil(p.BlockRewardPoolAddress)),
		rlp.WrapOptionalUint(p.TargetMiningTimeMs != nil, uintOrZero(p.TargetMiningTimeMs)),
		rlp.WrapOptionalUint(p.AsertHalfLifeBlocks != nil, uintOrZero(p.AsertHalfLifeBlocks)),
		rlp.WrapOptionalBigInt(p.MinDifficulty != nil, p.MinDifficulty),
		rlp.WrapOptionalBigInt(p.MinTxBaseFee != nil, p.MinTxBaseFee),
		rlp.WrapOptionalBigInt(p.MinTxByteFee != nil, p.MinTxByteFee),
	}
}

func addrBytesOrNil(a *getypes.Address) []byte {
	if a == nil {
		return nil
	}
	return a.Bytes()
}

func uintOrZero(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v
}

func decodeNetworkParamsSet(ctx context.Context, rest []rlp.Element) (Payload, error) {
	p := &NetworkParamsSet{}

	blockReward, err := optionalField(ctx, rest, 0, "blockReward")
	if err != nil {
		return nil, err
	}
	if p.BlockReward, err = rlp.UnwrapOptionalBigInt(ctx, "blockReward", blockReward); err != nil {
		return nil, err
	}

	poolAddrEl, err := optionalField(ctx, rest, 1, "blockRewardPoolAddress")
	if err != nil {
		return nil, err
	}
	poolAddrBytes, present, err := rlp.UnwrapOptionalFixed(ctx, "blockRewardPoolAddress", poolAddrEl, 20)
	if err != nil {
		return nil, err
	}
	if present {
		var a getypes.Address
		copy(a[:], poolAddrBytes)
		p.BlockRewardPoolAddress = &a
	}

	targetMiningEl, err := optionalField(ctx, rest, 2, "targetMiningTimeMs")
	if err != nil {
		return nil, err
	}
	if v, present, err := rlp.UnwrapOptionalUint(ctx, "targetMiningTimeMs", targetMiningEl); err != nil {
		return nil, err
	} else if present {
		p.TargetMiningTimeMs = &v
	}

	asertEl, err := optionalField(ctx, rest, 3, "asertHalfLifeBlocks")
	if err != nil {
		return nil, err
	}
	if v, present, err := rlp.UnwrapOptionalUint(ctx, "asertHalfLifeBlocks", asertEl); err != nil {
		return nil, err
	} else if present {
		p.AsertHalfLifeBlocks = &v
	}

	minDiffEl, err := optionalField(ctx, rest, 4, "minDifficulty")
	if err != nil {
		return nil, err
	}
	if p.MinDifficulty, err = rlp.UnwrapOptionalBigInt(ctx, "minDifficulty", minDiffEl); err != nil {
		return nil, err
	}

	minBaseFeeEl, err := optionalField(ctx, rest, 5, "minTxBaseFee")
	if err != nil {
		return nil, err
	}
	if p.MinTxBaseFee, err = rlp.UnwrapOptionalBigInt(ctx, "minTxBaseFee", minBaseFeeEl); err != nil {
		return nil, err
	}

	minByteFeeEl, err := optionalField(ctx, rest, 6, "minTxByteFee")
	if err != nil {
		return nil, err
	}
	if p.MinTxByteFee, err = rlp.UnwrapOptionalBigInt(ctx, "minTxByteFee", minByteFeeEl); err != nil {
		return nil, err
	}

	return p, nil
}

// TokenBurn destroys tokens from an account's balance.
type TokenBurn struct {
	TokenAddress getypes.Address
	Sender       getypes.Address
	Amount       *big.Int
}

func (p *TokenBurn) Type() gecodes.PayloadType { return gecodes.PayloadTokenBurn }

func (p *TokenBurn) Encode(_ context.Context) rlp.List {
	return rlp.List{
		rlp.WrapUint(uint64(p.Type())),
		rlp.WrapBytes(p.TokenAddress.Bytes()),
		rlp.WrapBytes(p.Sender.Bytes()),
		rlp.WrapBigInt(p.Amount),
	}
}

func decodeTokenBurn(ctx context.Context, rest []rlp.Element) (Payload, error) {
	token, err := mandatoryAddress(ctx, rest, 0, "tokenAddress")
	if err != nil {
		return nil, err
	}
	sender, err := mandatoryAddress(ctx, rest, 1, "sender")
	if err != nil {
		return nil, err
	}
	amount, err := mandatoryBigInt(ctx, rest, 2, "amount")
	if err != nil {
		return nil, err
	}
	return &TokenBurn{TokenAddress: token, Sender: sender, Amount: amount}, nil
}

// TokenCreate mints a brand-new token class.
type TokenCreate struct {
	Name             string
	SmallestUnitName string
	NumberOfDecimals uint8
	WebsiteUrl       *string
	LogoUrl          *string
	MaxSupply        *big.Int
	UserBurnable     bool
}

func (p *TokenCreate) Type() gecodes.PayloadType { return gecodes.PayloadTokenCreate }

func (p *TokenCreate) Encode(_ context.Context) rlp.List {
	return rlp.List{
		rlp.WrapUint(uint64(p.Type())),
		rlp.WrapBytes([]byte(p.Name)),
		rlp.WrapBytes([]byte(p.SmallestUnitName)),
		rlp.WrapUint(uint64(p.NumberOfDecimals)),
		rlp.WrapOptionalBytes(p.WebsiteUrl != nil, strBytesOrNil(p.WebsiteUrl)),
		rlp.WrapOptionalBytes(p.LogoUrl != nil, strBytesOrNil(p.LogoUrl)),
		rlp.WrapOptionalBigInt(p.MaxSupply != nil, p.MaxSupply),
		boolScalar(p.UserBurnable),
	}
}

func strBytesOrNil(s *string) []byte {
	if s == nil {
		return nil
	}
	return []byte(*s)
}

func decodeTokenCreate(ctx context.Context, rest []rlp.Element) (Payload, error) {
	name, err := mandatoryString(ctx, rest, 0, "name")
	if err != nil {
		return nil, err
	}
	unitName, err := mandatoryString(ctx, rest, 1, "smallestUnitName")
	if err != nil {
		return nil, err
	}
	decimals, err := mandatoryUint8(ctx, rest, 2, "numberOfDecimals")
	if err != nil {
		return nil, err
	}

	p := &TokenCreate{Name: name, SmallestUnitName: unitName, NumberOfDecimals: decimals}

	websiteEl, err := optionalField(ctx, rest, 3, "websiteUrl")
	if err != nil {
		return nil, err
	}
	if b, err := rlp.UnwrapOptionalBytes(ctx, "websiteUrl", websiteEl); err != nil {
		return nil, err
	} else if b != nil {
		s := string(b)
		p.WebsiteUrl = &s
	}

	logoEl, err := optionalField(ctx, rest, 4, "logoUrl")
	if err != nil {
		return nil, err
	}
	if b, err := rlp.UnwrapOptionalBytes(ctx, "logoUrl", logoEl); err != nil {
		return nil, err
	} else if b != nil {
		s := string(b)
		p.LogoUrl = &s
	}

	maxSupplyEl, err := optionalField(ctx, rest, 5, "maxSupply")
	if err != nil {
		return nil, err
	}
	if p.MaxSupply, err = rlp.UnwrapOptionalBigInt(ctx, "maxSupply", maxSupplyEl); err != nil {
		return nil, err
	}

	userBurnable, err := mandatoryBool(ctx, rest, 6, "userBurnable")
	if err != nil {
		return nil, err
	}
	p.UserBurnable = userBurnable

	return p, nil
}

// TokenMint creates new supply of an existing token into a recipient's balance.
type TokenMint struct {
	TokenAddress getypes.Address
	Recipient    getypes.Address
	Amount       *big.Int
}

func (p *TokenMint) Type() gecodes.PayloadType { return gecodes.PayloadTokenMint }

func (p *TokenMint) Encode(_ context.Context) rlp.List {
	return rlp.List{
		rlp.WrapUint(uint64(p.Type())),
		rlp.WrapBytes(p.TokenAddress.Bytes()),
		rlp.WrapBytes(p.Recipient.Bytes()),
		rlp.WrapBigInt(p.Amount),
	}
}

func decodeTokenMint(ctx context.Context, rest []rlp.Element) (Payload, error) {
	token, err := mandatoryAddress(ctx, rest, 0, "tokenAddress")
	if err != nil {
		return nil, err
	}
	recipient, err := mandatoryAddress(ctx, rest, 1, "recipient")
	if err != nil {
		return nil, err
	}
	amount, err := mandatoryBigInt(ctx, rest, 2, "amount")
	if err != nil {
		return nil, err
	}
	return &TokenMint{TokenAddress: token, Recipient: recipient, Amount: amount}, nil
}

// TokenUpdate changes the mutable metadata of an existing token.
type TokenUpdate struct {
	TokenAddress     getypes.Address
	Name             *string
	SmallestUnitName *string
	WebsiteUrl       *string
	LogoUrl          *string
}

func (p *TokenUpdate) Type() gecodes.PayloadType { return gecodes.PayloadTokenUpdate }

func (p *TokenUpdate) Encode(_ context.Context) rlp.List {
	return rlp.List{
		rlp.WrapUint(uint64(p.Type())),
		rlp.WrapBytes(p.TokenAddress.Bytes()),
		rlp.WrapOptionalBytes(p.Name != nil, strBytesOrNil(p.Name)),
		rlp.WrapOptionalBytes(p.SmallestUnitName != nil, strBytesOrNil(p.SmallestUnitName)),
		rlp.WrapOptionalBytes(p.WebsiteUrl != nil, strBytesOrNil(p.WebsiteUrl)),
		rlp.WrapOptionalBytes(p.LogoUrl != nil, strBytesOrNil(p.LogoUrl)),
	}
}

func decodeTokenUpdate(ctx context.Context, rest []rlp.Element) (Payload, error) {
	token, err := mandatoryAddress(ctx, rest, 0, "tokenAddress")
	if err != nil {
		return nil, err
	}
	p := &TokenUpdate{TokenAddress: token}

	for idx, target := range []**string{&p.Name, &p.SmallestUnitName, &p.WebsiteUrl, &p.LogoUrl} {
		names := []string{"name", "smallestUnitName", "websiteUrl", "logoUrl"}
		el, err := optionalField(ctx, rest, idx+1, names[idx])
		if err != nil {
			return nil, err
		}
		b, err := rlp.UnwrapOptionalBytes(ctx, names[idx], el)
		if err != nil {
			return nil, err
		}
		if b != nil {
			s := string(b)
			*target = &s
		}
	}

	return p, nil
}

// Vote carries the caller's position (approve/disapprove) on a BIP.
type Vote struct {
	VoteType gecodes.VoteType
}

func (p *Vote) Type() gecodes.PayloadType { return gecodes.PayloadVote }

func (p *Vote) isVote() {}

func (p *Vote) Encode(_ context.Context) rlp.List {
	return rlp.List{
		rlp.WrapUint(uint64(p.Type())),
		rlp.WrapUint(uint64(p.VoteType)),
	}
}

func decodeVote(ctx context.Context, rest []rlp.Element) (Payload, error) {
	d, err := mandatoryData(ctx, rest, 0, "voteType")
	if err != nil {
		return nil, err
	}
	vt := gecodes.VoteType(d.Int().Uint64())
	if !vt.Valid() {
		return nil, errUnknownVoteCode(ctx, int(vt))
	}
	return &Vote{VoteType: vt}, nil
}
