// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/glassworks-service/internal/db"
	"github.com/canonical/glassworks-service/internal/types"
)

var tenantColumns = []string{
	"id", "name", "slug", "plan", "active", "suspended", "COALESCE(suspension_reason, '')",
	"max_users", "branding", "subscription", "created_at", "updated_at", "deactivated_at",
}

func scanTenant(row sq.RowScanner) (*types.Tenant, error) {
	var (
		t            types.Tenant
		branding     []byte
		subscription []byte
	)

	err := row.Scan(
		&t.ID, &t.Name, &t.Slug, &t.Plan, &t.Active, &t.Suspended, &t.SuspensionReason,
		&t.MaxUsers, &branding, &subscription, &t.CreatedAt, &t.UpdatedAt, &t.DeactivatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := fromJSON(branding, &t.Branding); err != nil {
		return nil, err
	}
	if err := fromJSON(subscription, &t.Subscription); err != nil {
		return nil, err
	}

	return &t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	branding, err := jsonValue(t.Branding)
	if err != nil {
		return nil, err
	}
	subscription, err := jsonValue(t.Subscription)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "slug", "plan", "active", "suspended", "max_users", "branding", "subscription").
		Values(id, t.Name, t.Slug, t.Plan, t.Active, t.Suspended, t.MaxUsers, branding, subscription).
		Suffix("RETURNING " + joinColumns(tenantColumns)).
		QueryRowContext(ctx)

	created, err := scanTenant(row)
	if err != nil {
		return nil, mapError(err, "insert tenant")
	}

	return created, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	return s.getTenant(ctx, id, false)
}

// GetTenantForUpdate locks the tenant row until the transaction ends.
func (s *Storage) GetTenantForUpdate(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantForUpdate")
	defer span.End()

	return s.getTenant(ctx, id, true)
}

func (s *Storage) getTenant(ctx context.Context, id string, forUpdate bool) (*types.Tenant, error) {
	query := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"id": id})

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	t, err := scanTenant(query.QueryRowContext(ctx))
	if err != nil {
		return nil, mapError(err, "get tenant")
	}

	return t, nil
}

func (s *Storage) ListTenants(ctx context.Context, page, size int64) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	limit, offset := db.Paginate(page, size)

	rows, err := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list tenants")
	}
	defer rows.Close()

	tenants := make([]*types.Tenant, 0)
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, mapError(err, "scan tenant")
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate tenant rows")
	}

	return tenants, nil
}

// ListActiveTenantIDs returns the ids of every tenant that is not deactivated.
func (s *Storage) ListActiveTenantIDs(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveTenantIDs")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id").
		From("tenants").
		Where(sq.Eq{"active": true}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list tenant ids")
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, mapError(err, "scan tenant id")
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate tenant rows")
	}

	return ids, nil
}

// UpdateTenant writes every mutable column of the tenant.
func (s *Storage) UpdateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	branding, err := jsonValue(t.Branding)
	if err != nil {
		return nil, err
	}
	subscription, err := jsonValue(t.Subscription)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Update("tenants").
		SetMap(map[string]interface{}{
			"name":              t.Name,
			"plan":              t.Plan,
			"active":            t.Active,
			"suspended":         t.Suspended,
			"suspension_reason": nullable(t.SuspensionReason),
			"max_users":         t.MaxUsers,
			"branding":          branding,
			"subscription":      subscription,
			"deactivated_at":    t.DeactivatedAt,
			"updated_at":        time.Now().UTC(),
		}).
		Where(sq.Eq{"id": t.ID}).
		Suffix("RETURNING " + joinColumns(tenantColumns)).
		QueryRowContext(ctx)

	updated, err := scanTenant(row)
	if err != nil {
		return nil, mapError(err, "update tenant")
	}

	return updated, nil
}
