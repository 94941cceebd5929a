// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/datamigrations"
)

var dataMigrateCmd = &cobra.Command{
	Use:   "data-migrate",
	Short: "List and apply per tenant data migrations",
}

var listDataMigrationsCmd = &cobra.Command{
	Use:   "list",
	Short: "Show which data migrations a tenant has applied",
	RunE: func(cmd *cobra.Command, args []string) error {
		tenantID, _ := cmd.Flags().GetString("tenant")
		format, _ := cmd.Flags().GetString("format")

		a, runner, err := newDataMigrationRunner(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		statuses, err := runner.List(cmd.Context(), tenantID)
		if err != nil {
			return err
		}

		if format == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(statuses)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tAPPLIED\tDESCRIPTION")
		for _, s := range statuses {
			fmt.Fprintf(w, "%s\t%v\t%s\n", s.Name, s.Applied, s.Description)
		}
		return w.Flush()
	},
}

var runDataMigrationCmd = &cobra.Command{
	Use:   "run [name]",
	Short: "Apply one data migration to a tenant, re-running is a no-op",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tenantID, _ := cmd.Flags().GetString("tenant")
		format, _ := cmd.Flags().GetString("format")

		a, runner, err := newDataMigrationRunner(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		result, err := runner.Run(cmd.Context(), args[0], tenantID)
		if err != nil {
			return err
		}

		if format == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
		}

		if result.Skipped {
			fmt.Printf("%s already applied to tenant %s\n", result.Name, result.TenantID)
			return nil
		}

		fmt.Printf("%s applied to tenant %s, %d rows changed\n", result.Name, result.TenantID, result.Changed)
		return nil
	},
}

func newDataMigrationRunner(cmd *cobra.Command) (*app, *datamigrations.Runner, error) {
	a, err := newApp(cmd.Context())
	if err != nil {
		return nil, nil, err
	}

	runner := datamigrations.NewRunner(
		datamigrations.Builtin(a.storage),
		a.storage,
		audit.NewAuditor(a.storage, a.tracer, a.monitor, a.logger),
		a.db,
		a.tracer,
		a.monitor,
		a.logger,
	)

	return a, runner, nil
}

func init() {
	rootCmd.AddCommand(dataMigrateCmd)
	dataMigrateCmd.AddCommand(listDataMigrationsCmd)
	dataMigrateCmd.AddCommand(runDataMigrationCmd)

	dataMigrateCmd.PersistentFlags().String("tenant", "", "Target tenant id")
	dataMigrateCmd.PersistentFlags().StringP("format", "f", "text", "Output format (text or json)")
	_ = dataMigrateCmd.MarkPersistentFlagRequired("tenant")
}
