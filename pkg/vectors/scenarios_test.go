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

package vectors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/getx"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/payload"
)

func TestAllScenariosBuildAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	for _, name := range Names {
		name := name
		t.Run(name, func(t *testing.T) {
			tx, err := Build(ctx, name)
			require.NoError(t, err)
			require.NotNil(t, tx.Signature)

			encoded, err := getx.EncodeTx(tx, true)
			require.NoError(t, err)

			decoded, err := getx.DecodeTx(ctx, encoded)
			require.NoError(t, err)
			assert.Equal(t, tx.Sender, decoded.Sender)
			assert.Equal(t, tx.CanonicalHash, decoded.CanonicalHash)
			assert.EqualValues(t, len(encoded), decoded.Size)
		})
	}
}

func TestBIPTokenMintOuterAmountAbsent(t *testing.T) {
	ctx := context.Background()
	tx, err := Build(ctx, BIPTokenMint)
	require.NoError(t, err)
	assert.Nil(t, tx.Amount)
}

func TestTransferWithMessageRoundTripsMessageBytes(t *testing.T) {
	ctx := context.Background()
	tx, err := Build(ctx, TransferWithMessage)
	require.NoError(t, err)

	encoded, err := getx.EncodeTx(tx, true)
	require.NoError(t, err)
	decoded, err := getx.DecodeTx(ctx, encoded)
	require.NoError(t, err)
	assert.Equal(t, "Hello GoldenEra!", string(decoded.Message))
}

func TestBIPNetworkParamsSetOmittedFieldsAbsent(t *testing.T) {
	ctx := context.Background()
	tx, err := Build(ctx, BIPNetworkParamsSet)
	require.NoError(t, err)

	encoded, err := getx.EncodeTx(tx, true)
	require.NoError(t, err)
	decoded, err := getx.DecodeTx(ctx, encoded)
	require.NoError(t, err)

	assert.Equal(t, "NETWORK_PARAMS_SET", decoded.Payload.Type().String())
	p, ok := decoded.Payload.(*payload.NetworkParamsSet)
	require.True(t, ok)
	assert.Nil(t, p.BlockRewardPoolAddress)
	assert.Nil(t, p.TargetMiningTimeMs)
	assert.Nil(t, p.AsertHalfLifeBlocks)
	assert.Nil(t, p.MinDifficulty)
}

func TestUnknownScenarioRejected(t *testing.T) {
	ctx := context.Background()
	_, err := Build(ctx, "does_not_exist")
	assert.Error(t, err)
}

func TestScenariosAreDeterministic(t *testing.T) {
	ctx := context.Background()
	tx1, err := Build(ctx, SimpleTransfer)
	require.NoError(t, err)
	tx2, err := Build(ctx, SimpleTransfer)
	require.NoError(t, err)
	assert.Equal(t, tx1.Signature.Bytes(), tx2.Signature.Bytes())
}
