// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/glassworks-service/internal/db"
	"github.com/canonical/glassworks-service/internal/types"
)

const (
	tenantAuditTable   = "audit_logs"
	platformAuditTable = "super_admin_audit_logs"
)

var auditColumns = []string{
	"id", "COALESCE(tenant_id, '')", "actor_id", "action", "entity_type", "entity_id", "changes", "severity", "metadata", "created_at",
}

func (s *Storage) CreateAuditLog(ctx context.Context, l *types.AuditLog) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAuditLog")
	defer span.End()

	return s.insertAudit(ctx, tenantAuditTable, l)
}

func (s *Storage) CreateSuperAdminAuditLog(ctx context.Context, l *types.AuditLog) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSuperAdminAuditLog")
	defer span.End()

	return s.insertAudit(ctx, platformAuditTable, l)
}

func (s *Storage) insertAudit(ctx context.Context, table string, l *types.AuditLog) error {
	id, err := newID()
	if err != nil {
		return err
	}

	var changes, metadata interface{}
	if len(l.Changes) > 0 {
		if changes, err = jsonValue(l.Changes); err != nil {
			return err
		}
	}
	if len(l.Metadata) > 0 {
		if metadata, err = jsonValue(l.Metadata); err != nil {
			return err
		}
	}

	_, err = s.db.Statement(ctx).
		Insert(table).
		Columns("id", "tenant_id", "actor_id", "action", "entity_type", "entity_id", "changes", "severity", "metadata").
		Values(id, nullable(l.TenantID), l.ActorID, l.Action, l.EntityType, l.EntityID, changes, l.Severity, metadata).
		ExecContext(ctx)

	return mapError(err, "insert audit log")
}

func (s *Storage) ListAuditLogs(ctx context.Context, tenantID string, filter types.AuditFilter) ([]*types.AuditLog, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAuditLogs")
	defer span.End()

	return s.listAudit(ctx, tenantAuditTable, sq.Eq{"tenant_id": tenantID}, filter)
}

func (s *Storage) ListSuperAdminAuditLogs(ctx context.Context, filter types.AuditFilter) ([]*types.AuditLog, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSuperAdminAuditLogs")
	defer span.End()

	return s.listAudit(ctx, platformAuditTable, nil, filter)
}

func (s *Storage) listAudit(ctx context.Context, table string, scope sq.Sqlizer, filter types.AuditFilter) ([]*types.AuditLog, error) {
	limit, offset := db.Paginate(filter.Page, filter.Size)

	query := s.db.Statement(ctx).
		Select(auditColumns...).
		From(table)

	if scope != nil {
		query = query.Where(scope)
	}
	if filter.EntityType != "" {
		query = query.Where(sq.Eq{"entity_type": filter.EntityType})
	}
	if filter.EntityID != "" {
		query = query.Where(sq.Eq{"entity_id": filter.EntityID})
	}
	if filter.Action != "" {
		query = query.Where(sq.Eq{"action": filter.Action})
	}

	rows, err := query.
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list audit logs")
	}
	defer rows.Close()

	logs := make([]*types.AuditLog, 0)
	for rows.Next() {
		var (
			l        types.AuditLog
			changes  []byte
			metadata []byte
		)
		if err := rows.Scan(&l.ID, &l.TenantID, &l.ActorID, &l.Action, &l.EntityType, &l.EntityID, &changes, &l.Severity, &metadata, &l.CreatedAt); err != nil {
			return nil, mapError(err, "scan audit log")
		}
		if err := fromJSON(changes, &l.Changes); err != nil {
			return nil, err
		}
		if err := fromJSON(metadata, &l.Metadata); err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate audit rows")
	}

	return logs, nil
}
