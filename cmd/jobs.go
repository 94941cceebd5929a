// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/glassworks-service/pkg/jobs"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Run scheduled maintenance jobs by hand",
}

var runJobCmd = &cobra.Command{
	Use:       "run [" + jobs.PrintMonitor + "|" + jobs.PrintCleanup + "]",
	Short:     "Run one job once, honouring the cluster wide job lock",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{jobs.PrintMonitor, jobs.PrintCleanup},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		svc, err := a.services()
		if err != nil {
			return err
		}

		affected, ran, err := a.scheduler(svc).RunOnce(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("job %s failed: %w", args[0], err)
		}

		if !ran {
			fmt.Printf("Job %s is running elsewhere, skipped\n", args[0])
			return nil
		}

		fmt.Printf("Job %s done, %d print jobs affected\n", args[0], affected)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(runJobCmd)
}
