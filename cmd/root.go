// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	userID       string
	accessToken  string
	httpEndpoint string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "glassworks",
	Short: "Glassworks Service",
	Long:  `Glassworks Service runs the multi-tenant glass shop API and its maintenance tasks.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpEndpoint, "http-endpoint", "localhost:8080", "HTTP server endpoint (e.g. http://localhost:8080)")
	rootCmd.PersistentFlags().StringVar(&userID, "user-id", "", "Identity subject sent in the trusted identity header")
	rootCmd.PersistentFlags().StringVar(&accessToken, "token", "", "Bearer access token, see the token command")
}

func getClient() *apiClient {
	return newAPIClient(httpEndpoint, userID, accessToken)
}
