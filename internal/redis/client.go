// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package redis builds the shared Redis client used by locks and rate limits.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
)

const pingTimeout = 5 * time.Second

// NewClient parses url and checks the server answers.
func NewClient(ctx context.Context, url string, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolTimeout = 30 * time.Second
	opts.ConnMaxIdleTime = 5 * time.Minute

	client := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		setAvailability(monitor, logger, 0)
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	setAvailability(monitor, logger, 1)
	return client, nil
}

func setAvailability(monitor monitoring.MonitorInterface, logger logging.LoggerInterface, v float64) {
	if err := monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, v); err != nil {
		logger.Debugf("failed to set redis availability metric: %v", err)
	}
}
