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

// Package signerconfig declares the root configuration keys for the
// vectors CLI (cmd/), following the ffc = config.AddRootKey pattern.
// The keys are registered and listed by "showconfig"; the vectors command
// does not read them (each scenario fixes its own network, the key comes
// from the package's literal mnemonic at index 0, and the output file is
// taken from the --output flag).
package signerconfig

import (
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/spf13/viper"
)

var ffc = config.AddRootKey

var (
	// VectorsNetwork is the network key (MAINNET or TESTNET, default MAINNET).
	VectorsNetwork = ffc("vectors.network")
	// VectorsMnemonic is the BIP-39 mnemonic phrase key.
	VectorsMnemonic = ffc("vectors.mnemonic")
	// VectorsAccount is the derivation index key (default 0).
	VectorsAccount = ffc("vectors.account")
	// VectorsOutputFile is the output file key.
	VectorsOutputFile = ffc("vectors.outputFile")
)

func setDefaults() {
	viper.SetDefault(string(VectorsNetwork), "MAINNET")
	viper.SetDefault(string(VectorsAccount), 0)
}

func Reset() {
	config.RootConfigReset(setDefaults)
}
