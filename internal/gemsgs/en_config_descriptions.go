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

var ffc = i18n.FFC

//revive:disable
var (
	ConfigVectorsNetwork    = ffc("config.vectors.network", "Network key: mainnet / testnet. Not read by the vectors command, whose scenarios fix their own network", "string")
	ConfigVectorsMnemonic   = ffc("config.vectors.mnemonic", "BIP-39 mnemonic key. Not read by the vectors command, which uses its built-in mnemonic", "string")
	ConfigVectorsAccount    = ffc("config.vectors.account", "Derivation index key for m/44'/60'/0'/0/{index}. Not read by the vectors command, which uses index 0", "number")
	ConfigVectorsOutputFile = ffc("config.vectors.outputFile", "Output file key. Not read by the vectors command, which takes its output file from --output", "string")
)
