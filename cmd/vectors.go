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
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/spf13/cobra"

	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/getx"
	"github.com/GoldenEraGlobal/goldenera-tx-go/pkg/vectors"
)

type vectorOutput struct {
	Scenario      string `json:"scenario"`
	Encoded       string `json:"encoded"`
	SigningHash   string `json:"signingHash"`
	CanonicalHash string `json:"canonicalHash"`
	Sender        string `json:"sender"`
	Signature     string `json:"signature"`
	Size          uint32 `json:"size"`
}

func vectorsCommand() *cobra.Command {
	var outputFile string
	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "Regenerate the golden byte-vectors for the six named seed scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newContext()
			if err != nil {
				return err
			}

			results := make([]vectorOutput, 0, len(vectors.Names))
			for _, name := range vectors.Names {
				tx, err := vectors.Build(ctx, name)
				if err != nil {
					return err
				}
				encoded, err := getx.EncodeTx(tx, true)
				if err != nil {
					return err
				}
				signingHash, err := getx.HashForSigning(ctx, tx)
				if err != nil {
					return err
				}
				results = append(results, vectorOutput{
					Scenario:      name,
					Encoded:       "0x" + hex.EncodeToString(encoded),
					SigningHash:   signingHash.String(),
					CanonicalHash: tx.CanonicalHash.String(),
					Sender:        tx.Sender.String(),
					Signature:     tx.Signature.String(),
					Size:          tx.Size,
				})
			}

			out, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return err
			}

			if outputFile == "" {
				fmt.Println(string(out))
				return nil
			}
			log.L(ctx).Infof("Writing %d vectors to %s", len(results), outputFile)
			return os.WriteFile(outputFile, out, 0644)
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
