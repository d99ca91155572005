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

package amount

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensToWei(t *testing.T) {
	ctx := context.Background()
	wei, err := TokensToWei(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(100*1e8), wei)
}

func TestTokensToWeiFractional(t *testing.T) {
	ctx := context.Background()
	wei, err := TokensToWei(ctx, "1.5")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(150000000), wei)
}

func TestTokensToWeiRejectsNegative(t *testing.T) {
	ctx := context.Background()
	_, err := TokensToWei(ctx, "-1")
	assert.Error(t, err)
}

func TestTokensToWeiRejectsExcessDecimals(t *testing.T) {
	ctx := context.Background()
	_, err := DecimalToWei(ctx, "1.123456789", 8)
	assert.Error(t, err)
}

func TestWeiToTokensRoundTrip(t *testing.T) {
	wei := big.NewInt(150000000)
	assert.Equal(t, "1.5", WeiToTokens(wei))
}
