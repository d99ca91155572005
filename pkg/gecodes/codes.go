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

// Package gecodes holds the stable numeric codes for the closed enums used
// throughout the transaction and payload wire formats. Codes are part of the
// wire format and must never be renumbered.
package gecodes

// Network identifies which GoldenEra network a transaction targets.
type Network uint8

const (
	NetworkMainnet Network = 0
	NetworkTestnet Network = 1
)

func (n Network) String() string {
	switch n {
	case NetworkMainnet:
		return "MAINNET"
	case NetworkTestnet:
		return "TESTNET"
	default:
		return "UNKNOWN"
	}
}

func (n Network) Valid() bool {
	return n == NetworkMainnet || n == NetworkTestnet
}

// TxVersion selects the outer transaction encoding.
type TxVersion uint8

const (
	TxVersionV1 TxVersion = 1
)

func (v TxVersion) Valid() bool {
	return v == TxVersionV1
}

// TxType identifies the logical kind of a transaction.
type TxType uint8

const (
	TxTypeTransfer  TxType = 0
	TxTypeBIPCreate TxType = 1
	TxTypeBIPVote   TxType = 2
)

func (t TxType) String() string {
	switch t {
	case TxTypeTransfer:
		return "TRANSFER"
	case TxTypeBIPCreate:
		return "BIP_CREATE"
	case TxTypeBIPVote:
		return "BIP_VOTE"
	default:
		return "UNKNOWN"
	}
}

func (t TxType) Valid() bool {
	switch t {
	case TxTypeTransfer, TxTypeBIPCreate, TxTypeBIPVote:
		return true
	default:
		return false
	}
}

// PayloadType is the stable numeric tag identifying a BIP payload variant.
// Codes are stable across transaction versions. Codes 10/11 are reserved for
// VALIDATOR_ADD/VALIDATOR_REMOVE: factories may exist upstream, but no
// encoder/decoder arm is defined here (see pkg/payload).
type PayloadType uint8

const (
	PayloadAddressAliasAdd    PayloadType = 0
	PayloadAddressAliasRemove PayloadType = 1
	PayloadAuthorityAdd       PayloadType = 2
	PayloadAuthorityRemove    PayloadType = 3
	PayloadNetworkParamsSet   PayloadType = 4
	PayloadTokenBurn          PayloadType = 5
	PayloadTokenCreate        PayloadType = 6
	PayloadTokenMint          PayloadType = 7
	PayloadTokenUpdate        PayloadType = 8
	PayloadVote               PayloadType = 9

	// Reserved, no handler: see spec Open Questions.
	PayloadValidatorAdd    PayloadType = 10
	PayloadValidatorRemove PayloadType = 11
)

func (p PayloadType) String() string {
	switch p {
	case PayloadAddressAliasAdd:
		return "ADDRESS_ALIAS_ADD"
	case PayloadAddressAliasRemove:
		return "ADDRESS_ALIAS_REMOVE"
	case PayloadAuthorityAdd:
		return "AUTHORITY_ADD"
	case PayloadAuthorityRemove:
		return "AUTHORITY_REMOVE"
	case PayloadNetworkParamsSet:
		return "NETWORK_PARAMS_SET"
	case PayloadTokenBurn:
		return "TOKEN_BURN"
	case PayloadTokenCreate:
		return "TOKEN_CREATE"
	case PayloadTokenMint:
		return "TOKEN_MINT"
	case PayloadTokenUpdate:
		return "TOKEN_UPDATE"
	case PayloadVote:
		return "VOTE"
	case PayloadValidatorAdd:
		return "VALIDATOR_ADD"
	case PayloadValidatorRemove:
		return "VALIDATOR_REMOVE"
	default:
		return "UNKNOWN"
	}
}

// Reserved reports whether the code is a recognized-but-unhandled reservation.
func (p PayloadType) Reserved() bool {
	return p == PayloadValidatorAdd || p == PayloadValidatorRemove
}

// VoteType is the value carried by a VOTE payload.
type VoteType uint8

const (
	VoteDisapproval VoteType = 0
	VoteApproval    VoteType = 1
)

func (v VoteType) String() string {
	switch v {
	case VoteDisapproval:
		return "DISAPPROVAL"
	case VoteApproval:
		return "APPROVAL"
	default:
		return "UNKNOWN"
	}
}

func (v VoteType) Valid() bool {
	return v == VoteDisapproval || v == VoteApproval
}
