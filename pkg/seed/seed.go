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

// Package seed adapts BIP-39 mnemonic phrases and BIP-32/44 hierarchical
// derivation into GoldenEra key pairs, along the fixed path
// m/44'/60'/0'/0/{index}. It is an external-collaborator wrapper (spec §6):
// nothing in the codec or signing pipeline consults it, it only produces
// the private keys behind the §8 seed scenarios.
package seed

import (
	"context"
	"fmt"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"

	"github.com/GoldenEraGlobal/goldenera-tx-go/internal/gemsgs"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/secp256k1"
)

const coinType = 60

// SeedFromMnemonic validates and expands a BIP-39 mnemonic into its 64-byte
// seed, combined with an optional passphrase.
func SeedFromMnemonic(ctx context.Context, mnemonic, passphrase string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, i18n.NewError(ctx, gemsgs.MsgInvalidMnemonic, mnemonic)
	}
	return bip39.NewSeed(mnemonic, passphrase), nil
}

// DeriveKeyPair derives the secp256k1 key pair at m/44'/60'/0'/0/{index}.
func DeriveKeyPair(ctx context.Context, seed []byte, account uint32) (*secp256k1.KeyPair, error) {
	child, err := deriveChild(seed, account)
	if err != nil {
		return nil, i18n.NewError(ctx, gemsgs.MsgDerivationFailed, err.Error())
	}
	return secp256k1.NewKeyPairFromBytes(ctx, child.Key)
}

func deriveChild(seed []byte, index uint32) (*bip32.Key, error) {
	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("master key: %w", err)
	}

	purpose, err := masterKey.NewChildKey(bip32.FirstHardenedChild + 44)
	if err != nil {
		return nil, fmt.Errorf("derive purpose: %w", err)
	}

	coin, err := purpose.NewChildKey(bip32.FirstHardenedChild + coinType)
	if err != nil {
		return nil, fmt.Errorf("derive coin: %w", err)
	}

	account, err := coin.NewChildKey(bip32.FirstHardenedChild + 0)
	if err != nil {
		return nil, fmt.Errorf("derive account: %w", err)
	}

	change, err := account.NewChildKey(0)
	if err != nil {
		return nil, fmt.Errorf("derive change: %w", err)
	}

	child, err := change.NewChildKey(index)
	if err != nil {
		return nil, fmt.Errorf("derive child: %w", err)
	}

	return child, nil
}
