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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoldenEraGlobal/goldenera-tx-go/internal/signerconfig"
)

func configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "showconfig",
		Short: "Print the configuration root keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			initConfig()
			for _, key := range []string{
				string(signerconfig.VectorsNetwork),
				string(signerconfig.VectorsMnemonic),
				string(signerconfig.VectorsAccount),
				string(signerconfig.VectorsOutputFile),
			} {
				fmt.Println(key)
			}
			return nil
		},
	}
}
