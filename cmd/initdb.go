// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/larsclaussen/core-models/pkg/db/future"
	"github.com/larsclaussen/core-models/pkg/log"
)

func init() {
	rootCmd.AddCommand(initdb())
}

func initdb() *cobra.Command {
	var (
		verbose    bool
		jsonLog    bool
		template   string
		spatialite string
	)

	cmd := &cobra.Command{
		Use:     "initdb",
		Short:   "Initializes an empty template database",
		Version: Version,
		Run: func(cmd *cobra.Command, args []string) {
			log.Init(ServiceName, Version, jsonLog, verbose)

			var opts []future.Option
			if spatialite != "" {
				opts = append(opts, future.WithSpatialite(spatialite))
			}
			conn, err := future.Connect(template, opts...)
			if err != nil {
				log.WithError(err).Fatal("Failed to open template database.")
			}

			if err := future.InitSchema(conn); err != nil {
				log.WithError(err).Fatal("Failed to initialize template schema.")
			}
			log.WithField("template", template).Info("Template database initialized.")
		},
	}

	cmd.Flags().BoolVar(&verbose, "verbose", false, "Toggle verbose logging (debug level)")
	cmd.Flags().BoolVar(&jsonLog, "json-log", true, "Toggle JSON logging")
	cmd.Flags().StringVar(&template, "template", "threedi_model_template.sqlite", "Path of the template database to create")
	cmd.Flags().StringVar(&spatialite, "spatialite", "", "SpatiaLite module to load, e.g. mod_spatialite")

	return cmd
}
