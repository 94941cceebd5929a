// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"fmt"

	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/types"
)

var _ AuditorInterface = (*Auditor)(nil)

// Entry describes one state change. Severity is inferred from Action when empty.
type Entry struct {
	TenantID   string
	ActorID    string
	Action     string
	EntityType string
	EntityID   string
	Before     interface{}
	After      interface{}
	Severity   types.Severity
	Metadata   map[string]string
}

func (e Entry) toLog() *types.AuditLog {
	severity := e.Severity
	if severity == "" {
		severity = InferSeverity(e.Action)
	}

	return &types.AuditLog{
		TenantID:   e.TenantID,
		ActorID:    e.ActorID,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Changes:    Diff(e.Before, e.After),
		Severity:   severity,
		Metadata:   e.Metadata,
	}
}

// Auditor appends audit entries through the storage bound to ctx, so the
// write commits or rolls back with the mutation it describes.
type Auditor struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Record writes a tenant scoped entry.
func (a *Auditor) Record(ctx context.Context, e Entry) error {
	ctx, span := a.tracer.Start(ctx, "audit.Auditor.Record")
	defer span.End()

	if e.TenantID == "" {
		return fmt.Errorf("tenant audit entry %s without tenant", e.Action)
	}

	l := e.toLog()
	if err := a.storage.CreateAuditLog(ctx, l); err != nil {
		return fmt.Errorf("failed to write audit log %s: %w", e.Action, err)
	}

	a.count(l, "tenant")
	return nil
}

// RecordPlatform writes a super admin entry, TenantID is optional.
func (a *Auditor) RecordPlatform(ctx context.Context, e Entry) error {
	ctx, span := a.tracer.Start(ctx, "audit.Auditor.RecordPlatform")
	defer span.End()

	l := e.toLog()
	if err := a.storage.CreateSuperAdminAuditLog(ctx, l); err != nil {
		return fmt.Errorf("failed to write platform audit log %s: %w", e.Action, err)
	}

	a.logger.Security().AdminAction(e.ActorID, e.Action, e.TenantID, e.EntityID)
	a.count(l, "platform")
	return nil
}

func (a *Auditor) count(l *types.AuditLog, scope string) {
	tags := map[string]string{"event": "audit", "detail": scope + ":" + string(l.Severity)}
	if err := a.monitor.IncDomainEvent(tags); err != nil {
		a.logger.Debugf("failed to count audit event: %v", err)
	}
}

func NewAuditor(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Auditor {
	a := new(Auditor)
	a.storage = storage
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
