// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/larsclaussen/core-models/pkg/db/future"
	"github.com/larsclaussen/core-models/pkg/db/legacy"
	"github.com/larsclaussen/core-models/pkg/log"
	"github.com/larsclaussen/core-models/pkg/migration"
)

func init() {
	rootCmd.AddCommand(migrate())
}

func migrate() *cobra.Command {
	var (
		verbose    bool
		jsonLog    bool
		template   string
		spatialite string
	)

	cmd := &cobra.Command{
		Use:     "migrate",
		Short:   "Copies the legacy model into the template database",
		Version: Version,
		Run: func(cmd *cobra.Command, args []string) {
			log.Init(ServiceName, Version, jsonLog, verbose)

			params, err := legacy.ConnectionParamsFromEnv()
			if err != nil {
				log.WithError(err).Fatal("Failed to read database connection params.")
			}

			source, err := legacy.ConnectReadOnly(params)
			if err != nil {
				log.WithError(err).Fatal("Failed to establish source database connection.")
			}

			var opts []future.Option
			if spatialite != "" {
				opts = append(opts, future.WithSpatialite(spatialite))
			}
			dest, err := future.Connect(template, opts...)
			if err != nil {
				log.WithError(err).Fatal("Failed to open template database.")
			}

			summary, err := migration.New(source, dest).Run(cmd.Context())
			if err != nil {
				log.WithError(err).WithField("runID", summary.RunID).Fatal("Migration run failed.")
			}
			log.WithField("runID", summary.RunID).WithField("copied", summary.Copied).Info("Migration run succeeded.")
		},
	}

	cmd.Flags().BoolVar(&verbose, "verbose", false, "Toggle verbose logging (debug level)")
	cmd.Flags().BoolVar(&jsonLog, "json-log", true, "Toggle JSON logging")
	cmd.Flags().StringVar(&template, "template", "threedi_model_template.sqlite", "Path of the template database to write")
	cmd.Flags().StringVar(&spatialite, "spatialite", "", "SpatiaLite module to load, e.g. mod_spatialite")

	return cmd
}
