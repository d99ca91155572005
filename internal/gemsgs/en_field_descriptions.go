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

import (
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffm = func(key, translation string) i18n.MessageKey {
	return i18n.FFM(language.AmericanEnglish, key, translation)
}

//revive:disable
var (
	FieldTxNonce         = ffm("Tx.nonce", "Sender sequence number. Optional - omit for BIP_CREATE/BIP_VOTE transactions that do not spend from a nonce-tracked balance")
	FieldTxRecipient     = ffm("Tx.recipient", "20-byte recipient address. Required for TRANSFER")
	FieldTxTokenAddress  = ffm("Tx.tokenAddress", "20-byte token address, or the all-zero NATIVE_TOKEN sentinel for native transfers")
	FieldTxAmount        = ffm("Tx.amount", "Unsigned big-integer amount in wei")
	FieldTxFee           = ffm("Tx.fee", "Unsigned big-integer fee in wei. Always present, defaults to zero")
	FieldTxMessage       = ffm("Tx.message", "Arbitrary message bytes attached to a TRANSFER")
	FieldTxPayload       = ffm("Tx.payload", "Tagged-variant BIP payload. Required for BIP_CREATE and BIP_VOTE")
	FieldTxReferenceHash = ffm("Tx.referenceHash", "32-byte hash of the BIP being voted on. Required for BIP_VOTE")
)
