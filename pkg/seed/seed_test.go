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

package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestSeedFromMnemonicIsDeterministic(t *testing.T) {
	ctx := context.Background()
	s1, err := SeedFromMnemonic(ctx, testMnemonic, "")
	require.NoError(t, err)
	s2, err := SeedFromMnemonic(ctx, testMnemonic, "")
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
	assert.Len(t, s1, 64)
}

func TestSeedFromMnemonicRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	_, err := SeedFromMnemonic(ctx, "not a real mnemonic phrase at all", "")
	assert.Error(t, err)
}

func TestDeriveKeyPairIsDeterministic(t *testing.T) {
	ctx := context.Background()
	s, err := SeedFromMnemonic(ctx, testMnemonic, "")
	require.NoError(t, err)

	kp1, err := DeriveKeyPair(ctx, s, 0)
	require.NoError(t, err)
	kp2, err := DeriveKeyPair(ctx, s, 0)
	require.NoError(t, err)
	assert.Equal(t, kp1.Address, kp2.Address)

	kp3, err := DeriveKeyPair(ctx, s, 1)
	require.NoError(t, err)
	assert.NotEqual(t, kp1.Address, kp3.Address)
}
