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

package builder

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GoldenEraGlobal/goldenera-tx-go/mocks/secp256k1mocks"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/gecodes"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/getypes"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/payload"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/secp256k1"
)

func TestTransferRequiresRecipient(t *testing.T) {
	ctx := context.Background()
	kp, err := secp256k1.GenerateKeyPair()
	require.NoError(t, err)

	b := New(gecodes.TxTypeTransfer, gecodes.NetworkMainnet).Amount(big.NewInt(100))
	_, err = b.Sign(ctx, kp)
	assert.Error(t, err)
}

func TestTransferDefaultsTokenAddressToNative(t *testing.T) {
	ctx := context.Background()
	kp, err := secp256k1.GenerateKeyPair()
	require.NoError(t, err)

	recipient := getypes.MustNewAddress("0x1111111111111111111111111111111111111111")
	tx, err := New(gecodes.TxTypeTransfer, gecodes.NetworkMainnet).
		Recipient(recipient).
		Amount(big.NewInt(100)).
		Sign(ctx, kp)
	require.NoError(t, err)
	assert.True(t, tx.TokenAddress.IsNativeToken())
	assert.Equal(t, kp.Address, tx.Sender)
}

func TestBIPCreateRejectsAmount(t *testing.T) {
	ctx := context.Background()
	kp, err := secp256k1.GenerateKeyPair()
	require.NoError(t, err)

	p := &payload.TokenMint{
		TokenAddress: getypes.MustNewAddress("0x3333333333333333333333333333333333333333"),
		Recipient:    getypes.MustNewAddress("0x4444444444444444444444444444444444444444"),
		Amount:       big.NewInt(1000000),
	}
	b := New(gecodes.TxTypeBIPCreate, gecodes.NetworkMainnet).
		Payload(p).
		Amount(big.NewInt(1))
	_, err = b.Sign(ctx, kp)
	assert.Error(t, err)
}

func TestBIPVoteRequiresReferenceHashAndVoteKind(t *testing.T) {
	ctx := context.Background()
	kp, err := secp256k1.GenerateKeyPair()
	require.NoError(t, err)

	// Wrong payload kind.
	wrongKind := &payload.AuthorityAdd{AuthorityAddress: getypes.MustNewAddress("0x2222222222222222222222222222222222222222")}
	_, err = New(gecodes.TxTypeBIPVote, gecodes.NetworkMainnet).
		Payload(wrongKind).
		ReferenceHash(getypes.MustNewHash("0xabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcd")).
		Sign(ctx, kp)
	assert.Error(t, err)

	// Missing referenceHash.
	vote := &payload.Vote{VoteType: gecodes.VoteApproval}
	_, err = New(gecodes.TxTypeBIPVote, gecodes.NetworkMainnet).
		Payload(vote).
		Sign(ctx, kp)
	assert.Error(t, err)

	// Valid.
	tx, err := New(gecodes.TxTypeBIPVote, gecodes.NetworkMainnet).
		Payload(vote).
		ReferenceHash(getypes.MustNewHash("0xabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcd")).
		Sign(ctx, kp)
	require.NoError(t, err)
	assert.NotNil(t, tx.Signature)
}

func TestSignDelegatesToProvidedSigner(t *testing.T) {
	ctx := context.Background()
	recipient := getypes.MustNewAddress("0x1111111111111111111111111111111111111111")
	expectedSender := getypes.MustNewAddress("0x5555555555555555555555555555555555555555")
	expectedSig := getypes.NewSignatureFromParts(big.NewInt(1), big.NewInt(2), 27)

	signer := secp256k1mocks.NewSigner(t)
	signer.On("Sign", ctx, mock.AnythingOfType("getypes.Hash")).Return(&expectedSig, nil)
	signer.On("SignerAddress").Return(expectedSender)

	tx, err := New(gecodes.TxTypeTransfer, gecodes.NetworkMainnet).
		Recipient(recipient).
		Amount(big.NewInt(100)).
		Sign(ctx, signer)
	require.NoError(t, err)
	assert.Equal(t, expectedSender, tx.Sender)
	assert.Equal(t, expectedSig.Bytes(), tx.Signature.Bytes())
}
