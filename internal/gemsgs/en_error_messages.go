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

package gemsgs

import "github.com/hyperledger/firefly-common/pkg/i18n"

var ffe = i18n.FFE

//revive:disable
var (
	// Hex
	MsgHexOddLength    = ffe("GE10001", "Hex string has an odd number of characters: %s")
	MsgHexInvalidChars = ffe("GE10002", "Hex string contains non-hex characters: %s")
	MsgHexWrongLength  = ffe("GE10003", "Hex value must be %d bytes, got %d")

	// Codec-frame (RLP)
	MsgRLPTruncated        = ffe("GE10010", "RLP data truncated at position %d (need %d more bytes)")
	MsgRLPOversizeLength   = ffe("GE10011", "RLP length prefix too large to decode (pos=%d)")
	MsgRLPExpectedList     = ffe("GE10012", "Expected an RLP list, found a byte string")
	MsgRLPExpectedData     = ffe("GE10013", "Expected an RLP byte string, found a list")
	MsgRLPWrongFieldLength = ffe("GE10014", "Field '%s' must decode to %d bytes, got %d")
	MsgRLPWrongListLength  = ffe("GE10015", "Optional-as-list wrapper for '%s' must have 0 or 1 elements, got %d")
	MsgRLPTrailingBytes    = ffe("GE10016", "Unexpected trailing bytes after RLP element (%d bytes remain)")

	// Codec-semantic
	MsgUnknownTxVersion      = ffe("GE10020", "Unknown transaction version: %d")
	MsgUnknownTxType         = ffe("GE10021", "Unknown transaction type: %d")
	MsgUnknownPayloadCode    = ffe("GE10022", "Unknown payload type code: %d")
	MsgUnknownVoteCode       = ffe("GE10023", "Unknown vote type code: %d")
	MsgUnknownNetwork        = ffe("GE10024", "Unknown network code: %d")
	MsgReservedPayloadCode   = ffe("GE10025", "Payload type code %d is reserved and has no decoder")

	// Crypto
	MsgKeyOutOfRange       = ffe("GE10030", "Private key is out of secp256k1 curve order range")
	MsgBadSignatureLength  = ffe("GE10031", "Signature must be exactly 65 bytes, got %d")
	MsgBadRecoveryParity   = ffe("GE10032", "Signature 'v' must be 27 or 28, got %d")
	MsgBadSignatureR       = ffe("GE10033", "Signature 'r' is out of range")
	MsgBadSignatureS       = ffe("GE10034", "Signature 's' is out of range (must be <= n/2, low-S form)")
	MsgSigningFailed       = ffe("GE10035", "Signing operation failed: %s")
	MsgRecoveryFailed      = ffe("GE10036", "Public key recovery failed: %s")

	// Builder
	MsgMissingField          = ffe("GE10040", "Missing required field '%s' for transaction type %s")
	MsgFieldNotAllowed       = ffe("GE10041", "Field '%s' is not allowed for transaction type %s")
	MsgInvalidFixedWidthHex  = ffe("GE10042", "Invalid fixed-width value for field '%s': %s")
	MsgPayloadKindMismatch   = ffe("GE10043", "Transaction type %s requires payload kind %s, got %s")
	MsgReferenceHashRequired = ffe("GE10044", "BIP_VOTE transactions require a referenceHash")

	// Amount utilities
	MsgInvalidDecimalString = ffe("GE10050", "Invalid decimal amount string: %s")
	MsgNegativeAmount       = ffe("GE10051", "Amount must not be negative: %s")
	MsgTooManyDecimals      = ffe("GE10052", "Amount '%s' has more fractional digits than %d configured decimals")

	// Seed / derivation adapter
	MsgInvalidMnemonic  = ffe("GE10060", "Invalid BIP-39 mnemonic: %s")
	MsgDerivationFailed = ffe("GE10061", "BIP-32 key derivation failed: %s")

	// Vectors tool
	MsgUnknownScenario = ffe("GE10070", "Unknown seed scenario: %s")
)
