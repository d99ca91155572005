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

// Package cmd implements the "govectors" command line tool: a thin CLI
// wrapper over pkg/vectors and pkg/getx used to regenerate the golden
// byte-vectors described in spec §8 and to print its configuration keys.
// It has no commands to sign, encode or decode arbitrary transactions.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/GoldenEraGlobal/goldenera-tx-go/internal/signerconfig"
)

var rootCmd = &cobra.Command{
	Use:   "govectors",
	Short: "GoldenEra transaction codec and vectors tool",
	Long:  ``,
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(configCommand())
	rootCmd.AddCommand(vectorsCommand())
}

func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	signerconfig.Reset()
}

func newContext() (context.Context, error) {
	initConfig()
	err := config.ReadConfig("govectors", cfgFile)

	ctx := context.Background()
	ctx = log.WithLogger(ctx, logrus.WithField("pid", fmt.Sprintf("%d", os.Getpid())))
	ctx = log.WithLogger(ctx, logrus.WithField("prefix", "govectors"))
	config.SetupLogging(ctx)

	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgConfigFailed)
	}
	return ctx, nil
}
