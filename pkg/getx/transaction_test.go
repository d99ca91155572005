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

package getx

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/gecodes"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/getypes"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/secp256k1"
)

func simpleUnsignedTx() *Tx {
	nonce := uint64(1)
	recipient := getypes.MustNewAddress("0x1111111111111111111111111111111111111111")
	return &Tx{
		Version:   gecodes.TxVersionV1,
		Timestamp: 1702200000000,
		Type:      gecodes.TxTypeTransfer,
		Network:   gecodes.NetworkMainnet,
		Nonce:     &nonce,
		Recipient: &recipient,
		Amount:    big.NewInt(100),
		Fee:       big.NewInt(100000),
	}
}

func TestEncodeDecodeRoundTripUnsigned(t *testing.T) {
	ctx := context.Background()
	tx := simpleUnsignedTx()

	encoded, err := EncodeTx(tx, false)
	require.NoError(t, err)

	decoded, err := DecodeTx(ctx, encoded)
	require.NoError(t, err)
	assert.Equal(t, tx.Timestamp, decoded.Timestamp)
	assert.Equal(t, tx.Type, decoded.Type)
	assert.Equal(t, *tx.Nonce, *decoded.Nonce)
	assert.Equal(t, tx.Recipient.String(), decoded.Recipient.String())
	assert.Equal(t, tx.Amount.String(), decoded.Amount.String())
	assert.Equal(t, tx.Fee.String(), decoded.Fee.String())
}

func TestSignAndDecodeRecoversSenderHashAndSize(t *testing.T) {
	ctx := context.Background()
	kp, err := secp256k1.GenerateKeyPair()
	require.NoError(t, err)

	tx := simpleUnsignedTx()
	signingHash, err := HashForSigning(ctx, tx)
	require.NoError(t, err)

	sig, err := secp256k1.Sign(ctx, kp, signingHash)
	require.NoError(t, err)
	tx.Signature = sig

	encoded, err := EncodeTx(tx, true)
	require.NoError(t, err)

	size, err := SizeTx(tx)
	require.NoError(t, err)
	assert.EqualValues(t, len(encoded), size)

	decoded, err := DecodeTx(ctx, encoded)
	require.NoError(t, err)
	assert.Equal(t, kp.Address, decoded.Sender)
	assert.EqualValues(t, len(encoded), decoded.Size)

	canonicalHash, err := HashTx(ctx, tx)
	require.NoError(t, err)
	assert.Equal(t, canonicalHash, decoded.CanonicalHash)
	assert.NotEqual(t, signingHash, canonicalHash)
}

func TestSigningHashStableAcrossSignature(t *testing.T) {
	ctx := context.Background()
	tx1 := simpleUnsignedTx()
	tx2 := simpleUnsignedTx()

	h1, err := HashForSigning(ctx, tx1)
	require.NoError(t, err)
	h2, err := HashForSigning(ctx, tx2)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestDecodeUnknownVersionRejected(t *testing.T) {
	ctx := context.Background()
	tx := simpleUnsignedTx()
	tx.Version = 99

	encoded, err := EncodeTx(tx, false)
	require.NoError(t, err)

	_, err = DecodeTx(ctx, encoded)
	assert.Error(t, err)
}

func TestDecodeRejectsWrongOuterListLength(t *testing.T) {
	ctx := context.Background()
	_, err := DecodeTx(ctx, []byte{0xc1, 0x80})
	assert.Error(t, err)
}

func TestAmountAbsentForBIPCreate(t *testing.T) {
	tx := &Tx{
		Version:   gecodes.TxVersionV1,
		Timestamp: 1702200000000,
		Type:      gecodes.TxTypeBIPCreate,
		Network:   gecodes.NetworkMainnet,
		Fee:       big.NewInt(0),
	}
	fields, err := tx.buildFields(context.Background())
	require.NoError(t, err)
	// amount is index 7, should encode as the absent empty list.
	assert.Equal(t, []byte{0xc0}, fields[7].Encode())
}
