// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package jobs

import (
	"context"
	"time"
)

// PrintJobsConfig tunes the two print job sweeps.
type PrintJobsConfig struct {
	MonitorInterval time.Duration
	StuckThreshold  time.Duration
	CleanupHourUTC  int
	Retention       time.Duration
}

// PrintJobs returns the stuck job monitor and the daily cleanup.
func PrintJobs(sweeper SweeperInterface, cfg PrintJobsConfig) []Job {
	return []Job{
		{
			Name:     PrintMonitor,
			Schedule: Every(cfg.MonitorInterval),
			Timeout:  cfg.MonitorInterval,
			Run: func(ctx context.Context) (int, error) {
				return sweeper.MonitorStuck(ctx, cfg.StuckThreshold)
			},
		},
		{
			Name:     PrintCleanup,
			Schedule: DailyAt{Hour: cfg.CleanupHourUTC},
			Timeout:  time.Hour,
			Run: func(ctx context.Context) (int, error) {
				return sweeper.CleanupOld(ctx, cfg.Retention)
			},
		},
	}
}
