// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	goredis "github.com/redis/go-redis/v9"

	"github.com/canonical/glassworks-service/internal/config"
	"github.com/canonical/glassworks-service/internal/db"
	"github.com/canonical/glassworks-service/internal/kratos"
	"github.com/canonical/glassworks-service/internal/locking"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring/prometheus"
	"github.com/canonical/glassworks-service/internal/redis"
	"github.com/canonical/glassworks-service/internal/storage"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/version"
	"github.com/canonical/glassworks-service/pkg/jobs"
	"github.com/canonical/glassworks-service/pkg/web"
)

const serviceName = "glassworks-service"

// app bundles the dependencies every long running command needs.
type app struct {
	specs   *config.EnvSpec
	logger  *logging.Logger
	monitor *prometheus.Monitor
	tracer  *tracing.Tracer
	db      *db.DBClient
	storage *storage.Storage
	redis   *goredis.Client
}

func newApp(ctx context.Context) (*app, error) {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	logger := logging.NewLoggerWithConfig(logging.Config{Level: specs.LogLevel, File: specs.LogFile})
	monitor := prometheus.NewMonitor(serviceName, logger)
	tracer := tracing.NewTracer(&tracing.Config{
		Enabled:        specs.TracingEnabled,
		GRPCEndpoint:   specs.OtelGRPCEndpoint,
		HTTPEndpoint:   specs.OtelHTTPEndpoint,
		SampleRatio:    specs.TracingSampleRatio,
		ServiceVersion: version.Version,
		Logger:         logger,
	})

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TxTimeout:       specs.DBTxTimeout,
			TracingEnabled:  specs.TracingEnabled,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}

	a := &app{
		specs:   specs,
		logger:  logger,
		monitor: monitor,
		tracer:  tracer,
		db:      dbClient,
		storage: storage.NewStorage(dbClient, tracer, monitor, logger),
	}

	if specs.RedisURL != "" {
		client, err := redis.NewClient(ctx, specs.RedisURL, monitor, logger)
		if err != nil {
			// the rate limiter and job locks degrade to process local state
			logger.Errorf("redis unavailable, using process local state: %v", err)
		} else {
			a.redis = client
		}
	}

	return a, nil
}

func (a *app) services() (*web.Services, error) {
	identities := kratos.NewClient(a.specs.KratosAdminURL, a.specs.KratosIdentitySchema, a.tracer, a.monitor, a.logger)

	return web.NewServices(
		web.ServicesConfig{
			FileURLSecret:        a.specs.FileURLSecret,
			PublicBaseURL:        a.specs.PublicBaseURL,
			MaxUploadBytes:       a.specs.MaxUploadBytes,
			RecoveryLinkLifetime: a.specs.RecoveryLinkLifetime,
		},
		a.storage,
		a.db,
		identities,
		a.tracer,
		a.monitor,
		a.logger,
	)
}

func (a *app) scheduler(svc *web.Services) *jobs.Scheduler {
	var locker jobs.LockerInterface = locking.NewLocalLocker()
	if a.redis != nil {
		locker = locking.NewRedisLocker(a.redis, a.tracer, a.monitor, a.logger)
	}

	printJobs := jobs.PrintJobs(svc.PrintJobs, jobs.PrintJobsConfig{
		MonitorInterval: a.specs.PrintMonitorInterval,
		StuckThreshold:  a.specs.PrintStuckThreshold,
		CleanupHourUTC:  a.specs.PrintCleanupHourUTC,
		Retention:       a.specs.PrintCleanupRetention,
	})

	return jobs.NewScheduler(printJobs, locker, a.tracer, a.monitor, a.logger)
}

func (a *app) close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Errorf("failed to close redis client: %v", err)
		}
	}
	a.db.Close()
	_ = a.logger.Sync()
}
