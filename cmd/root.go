// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package cmd

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/larsclaussen/core-models/pkg/log"
)

var (
	// ServiceName is the name we use for tracing/logging
	ServiceName = "core-models"
	// Version of this service - set during build
	Version = ""
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   ServiceName,
	Short: "Hydraulic model schema tools",
}

func Execute() {
	// A missing .env file is fine, the environment may be set directly.
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.WithError(err).Error("Failed to execute command.")
		os.Exit(1)
	}
}
