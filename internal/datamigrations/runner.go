// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package datamigrations

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/storage"
	"github.com/canonical/glassworks-service/internal/tracing"
)

const systemActor = "system"

var ErrUnknownMigration = errors.New("unknown data migration")

var _ RunnerInterface = (*Runner)(nil)

type Status struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Applied     bool   `json:"applied"`
}

type Result struct {
	Name     string `json:"name"`
	TenantID string `json:"tenant_id"`
	Changed  int    `json:"changed"`
	Skipped  bool   `json:"skipped"`
}

// Runner applies data migrations to one tenant at a time. Each run and its
// applied marker share a transaction so a failed run can simply be repeated.
type Runner struct {
	migrations []Migration

	storage StorageInterface
	auditor AuditorInterface
	db      TxInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *Runner) List(ctx context.Context, tenantID string) ([]*Status, error) {
	ctx, span := r.tracer.Start(ctx, "datamigrations.Runner.List")
	defer span.End()

	if tenantID == "" {
		return nil, errorx.ErrRequiredField.WithData(map[string]interface{}{"field": "tenant"})
	}

	applied, err := r.storage.DataMigrationsForTenant(ctx, tenantID)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	statuses := make([]*Status, 0, len(r.migrations))
	for _, m := range r.migrations {
		statuses = append(statuses, &Status{
			Name:        m.Name,
			Description: m.Description,
			Applied:     slices.Contains(applied, m.Name),
		})
	}

	return statuses, nil
}

func (r *Runner) Run(ctx context.Context, name, tenantID string) (*Result, error) {
	ctx, span := r.tracer.Start(ctx, "datamigrations.Runner.Run")
	defer span.End()

	idx := slices.IndexFunc(r.migrations, func(m Migration) bool { return m.Name == name })
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMigration, name)
	}
	m := r.migrations[idx]

	if tenantID == "" {
		return nil, errorx.ErrRequiredField.WithData(map[string]interface{}{"field": "tenant"})
	}

	if _, err := r.storage.GetTenantByID(ctx, tenantID); err != nil {
		return nil, storage.DomainError(err)
	}

	result := &Result{Name: name, TenantID: tenantID}

	err := r.db.WithTx(ctx, func(ctx context.Context) error {
		applied, err := r.storage.IsDataMigrationApplied(ctx, name, tenantID)
		if err != nil {
			return err
		}

		if applied {
			result.Skipped = true
			return nil
		}

		changed, err := m.Apply(ctx, tenantID)
		if err != nil {
			return fmt.Errorf("data migration %s: %w", name, err)
		}
		result.Changed = changed

		if err := r.storage.MarkDataMigrationApplied(ctx, name, tenantID); err != nil {
			return err
		}

		return r.auditor.RecordPlatform(ctx, audit.Entry{
			TenantID:   tenantID,
			ActorID:    systemActor,
			Action:     "data_migration.apply",
			EntityType: "data_migration",
			EntityID:   name,
			Metadata:   map[string]string{"changed": strconv.Itoa(changed)},
		})
	})
	if err != nil {
		r.count("data_migration_failed", name)
		return nil, storage.DomainError(err)
	}

	if result.Skipped {
		r.logger.Infof("data migration %s already applied to tenant %s", name, tenantID)
		return result, nil
	}

	r.logger.Infof("data migration %s changed %d rows of tenant %s", name, result.Changed, tenantID)
	r.count("data_migration_applied", name)

	return result, nil
}

func (r *Runner) count(event, name string) {
	if err := r.monitor.IncDomainEvent(map[string]string{"event": event, "detail": name}); err != nil {
		r.logger.Debugf("failed to count %s: %v", event, err)
	}
}

func NewRunner(migrations []Migration, storage StorageInterface, auditor AuditorInterface, db TxInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Runner {
	return &Runner{
		migrations: migrations,
		storage:    storage,
		auditor:    auditor,
		db:         db,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
