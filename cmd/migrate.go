// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/glassworks-service/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long:  "Manage the database schema. The DSN defaults to the DSN environment variable.",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending schema migration",
	Args:  cobra.NoArgs,
	RunE: withProvider(func(ctx context.Context, p *goose.Provider, format string, out io.Writer, _ []string) error {
		results, err := p.Up(ctx)
		if err != nil {
			return err
		}
		return printResults(out, format, results)
	}),
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [version]",
	Short: "Roll back the last migration, or every migration above version",
	Args:  cobra.MaximumNArgs(1),
	RunE: withProvider(func(ctx context.Context, p *goose.Provider, format string, out io.Writer, args []string) error {
		if len(args) == 0 {
			result, err := p.Down(ctx)
			if err != nil {
				return err
			}
			return printResults(out, format, []*goose.MigrationResult{result})
		}

		version, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || version < 0 {
			return fmt.Errorf("invalid version number: %q", args[0])
		}

		results, err := p.DownTo(ctx, version)
		if err != nil {
			return err
		}
		return printResults(out, format, results)
	}),
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List schema migrations and when they were applied",
	Args:  cobra.NoArgs,
	RunE: withProvider(func(ctx context.Context, p *goose.Provider, format string, out io.Writer, _ []string) error {
		statuses, err := p.Status(ctx)
		if err != nil {
			return err
		}

		if format == "json" {
			return json.NewEncoder(out).Encode(statuses)
		}

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "VERSION\tAPPLIED AT\tSOURCE")
		for _, s := range statuses {
			appliedAt := "pending"
			if s.State == goose.StateApplied {
				appliedAt = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", s.Source.Version, appliedAt, s.Source.Path)
		}
		return w.Flush()
	}),
}

var migrateCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Fail when schema migrations are pending",
	Args:  cobra.NoArgs,
	RunE: withProvider(func(ctx context.Context, p *goose.Provider, format string, out io.Writer, _ []string) error {
		pending, err := p.HasPending(ctx)
		if err != nil {
			return fmt.Errorf("failed to check pending migrations: %w", err)
		}

		current, err := p.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}

		if format == "json" {
			status := "ok"
			if pending {
				status = "pending"
			}
			return json.NewEncoder(out).Encode(map[string]interface{}{"status": status, "version": current})
		}

		if pending {
			return fmt.Errorf("migrations are pending: current version %d", current)
		}

		fmt.Fprintf(out, "Database is up to date (version %d)\n", current)
		return nil
	}),
}

type migrateFunc func(ctx context.Context, p *goose.Provider, format string, out io.Writer, args []string) error

func withProvider(fn migrateFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		dsn, _ := cmd.Flags().GetString("dsn")
		format, _ := cmd.Flags().GetString("format")

		db, err := openDB(cmd.Context(), dsn)
		if err != nil {
			return err
		}
		defer db.Close()

		var opts []goose.ProviderOption
		if format == "json" {
			opts = append(opts, goose.WithLogger(goose.NopLogger()))
		}

		provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
		if err != nil {
			return fmt.Errorf("failed to create goose provider: %w", err)
		}

		return fn(cmd.Context(), provider, format, cmd.OutOrStdout(), args)
	}
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("no DSN given, set --dsn or the DSN environment variable")
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return db, nil
}

func printResults(out io.Writer, format string, results []*goose.MigrationResult) error {
	if results == nil {
		results = []*goose.MigrationResult{}
	}

	if format == "json" {
		return json.NewEncoder(out).Encode(map[string]interface{}{"applied": results})
	}

	for _, r := range results {
		fmt.Fprintf(out, "%s %d (%s)\n", r.Direction, r.Source.Version, r.Duration)
	}
	return nil
}

func init() {
	migrateCmd.PersistentFlags().String("dsn", os.Getenv("DSN"), "PostgreSQL DSN connection string")
	migrateCmd.PersistentFlags().StringP("format", "f", "text", "Output format (text or json)")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd, migrateCheckCmd)
	rootCmd.AddCommand(migrateCmd)
}
