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

package gecodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkValidAndString(t *testing.T) {
	assert.True(t, NetworkMainnet.Valid())
	assert.True(t, NetworkTestnet.Valid())
	assert.False(t, Network(99).Valid())
	assert.Equal(t, "MAINNET", NetworkMainnet.String())
	assert.Equal(t, "UNKNOWN", Network(99).String())
}

func TestTxVersionValid(t *testing.T) {
	assert.True(t, TxVersionV1.Valid())
	assert.False(t, TxVersion(0).Valid())
	assert.False(t, TxVersion(2).Valid())
}

func TestTxTypeValidAndString(t *testing.T) {
	assert.True(t, TxTypeTransfer.Valid())
	assert.True(t, TxTypeBIPCreate.Valid())
	assert.True(t, TxTypeBIPVote.Valid())
	assert.False(t, TxType(99).Valid())
	assert.Equal(t, "BIP_VOTE", TxTypeBIPVote.String())
}

func TestPayloadTypeReserved(t *testing.T) {
	assert.True(t, PayloadValidatorAdd.Reserved())
	assert.True(t, PayloadValidatorRemove.Reserved())
	assert.False(t, PayloadTokenMint.Reserved())
	assert.Equal(t, "TOKEN_MINT", PayloadTokenMint.String())
	assert.Equal(t, "UNKNOWN", PayloadType(200).String())
}

func TestVoteTypeValidAndString(t *testing.T) {
	assert.True(t, VoteApproval.Valid())
	assert.True(t, VoteDisapproval.Valid())
	assert.False(t, VoteType(2).Valid())
	assert.Equal(t, "APPROVAL", VoteApproval.String())
}
