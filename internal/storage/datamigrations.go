// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

func (s *Storage) IsDataMigrationApplied(ctx context.Context, name, tenantID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsDataMigrationApplied")
	defer span.End()

	var applied bool
	err := s.db.Statement(ctx).
		Select().
		Column(sq.Expr("EXISTS (SELECT 1 FROM data_migrations WHERE name = ? AND tenant_id = ?)", name, tenantID)).
		QueryRowContext(ctx).
		Scan(&applied)
	if err != nil {
		return false, mapError(err, "check data migration")
	}

	return applied, nil
}

func (s *Storage) MarkDataMigrationApplied(ctx context.Context, name, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkDataMigrationApplied")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("data_migrations").
		Columns("name", "tenant_id").
		Values(name, tenantID).
		Suffix("ON CONFLICT (name, tenant_id) DO NOTHING").
		ExecContext(ctx)

	return mapError(err, "mark data migration")
}

// DataMigrationsForTenant lists applied migration names.
func (s *Storage) DataMigrationsForTenant(ctx context.Context, tenantID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DataMigrationsForTenant")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("name").
		From("data_migrations").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("applied_at").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list data migrations")
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, mapError(err, "scan data migration")
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate data migration rows")
	}

	return names, nil
}
