// perch
// (C) 2025, Deutsche Telekom IT GmbH
//
// Deutsche Telekom IT GmbH and all other contributors /
// copyright owners license this file to you under the Apache
// License, Version 2.0 (the "License"); you may not use this
// file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/perchdash/perch/internal/logger"
	"github.com/perchdash/perch/pkg/config"
	"github.com/perchdash/perch/pkg/perch"
)

// NewCmdRun creates a new run command
func NewCmdRun() *cobra.Command {
	flagMapping := config.RunFlagsNameMapping{
		ApiAddress:   "apiAddress",
		ServicesFile: "servicesFile",
	}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run perch",
		Long:  `Perch will be started with the provided configuration`,
		Run:   run(&flagMapping),
	}

	NewFlag(flagMapping.ApiAddress, flagMapping.ApiAddress).String().
		Bind(cmd, ":8080", "api: The address the server is listening on")
	NewFlag(flagMapping.ServicesFile, flagMapping.ServicesFile).StringP("c").
		Bind(cmd, "config.yaml", "The path to the file to read the services config from")

	return cmd
}

// run is the entry point to start the perch
func run(fm *config.RunFlagsNameMapping) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		log := logger.NewLogger()
		ctx := logger.IntoContext(context.Background(), log)

		cfg := config.NewConfig()
		cfg.SetApiAddress(viper.GetString(fm.ApiAddress))

		services, err := config.Load(ctx, viper.GetString(fm.ServicesFile))
		if err != nil {
			log.Error("Error while loading the services config", "error", err)
			panic(err)
		}
		cfg.Services = services

		if err = cfg.Validate(ctx, fm); err != nil {
			log.Error("Error while validating the config", "error", err)
			panic(err)
		}

		p, err := perch.New(cfg)
		if err != nil {
			log.Error("Error while creating perch", "error", err)
			panic(err)
		}

		log.Info("Running perch")
		if err = p.Run(ctx); err != nil {
			panic(err)
		}
	}
}
