// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/glassworks-service/internal/types"
)

var membershipColumns = []string{
	"m.id", "m.tenant_id", "m.user_id", "u.username", "m.role", "m.permissions", "m.active", "m.created_at", "m.updated_at",
}

func scanMembership(row sq.RowScanner) (*types.Membership, error) {
	var (
		m           types.Membership
		permissions []byte
	)

	err := row.Scan(&m.ID, &m.TenantID, &m.UserID, &m.Username, &m.Role, &permissions, &m.Active, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}

	m.Permissions = []string{}
	if err := fromJSON(permissions, &m.Permissions); err != nil {
		return nil, err
	}

	return &m, nil
}

func (s *Storage) membershipQuery(ctx context.Context) sq.SelectBuilder {
	return s.db.Statement(ctx).
		Select(membershipColumns...).
		From("memberships m").
		Join("users u ON u.id = m.user_id")
}

func (s *Storage) GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	row := s.membershipQuery(ctx).
		Where(sq.Eq{"m.tenant_id": tenantID, "m.user_id": userID}).
		QueryRowContext(ctx)

	m, err := scanMembership(row)
	if err != nil {
		return nil, mapError(err, "get membership")
	}

	return m, nil
}

func (s *Storage) GetMembershipByID(ctx context.Context, id string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembershipByID")
	defer span.End()

	row := s.membershipQuery(ctx).
		Where(sq.Eq{"m.id": id}).
		QueryRowContext(ctx)

	m, err := scanMembership(row)
	if err != nil {
		return nil, mapError(err, "get membership")
	}

	return m, nil
}

func (s *Storage) ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByTenantID")
	defer span.End()

	rows, err := s.membershipQuery(ctx).
		Where(sq.Eq{"m.tenant_id": tenantID}).
		OrderBy("m.created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list members")
	}
	defer rows.Close()

	members := make([]*types.Membership, 0)
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, mapError(err, "scan member")
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate member rows")
	}

	return members, nil
}

// ListActiveTenantIDsByUserID returns the tenants where the user holds an active membership.
func (s *Storage) ListActiveTenantIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveTenantIDsByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("m.tenant_id").
		From("memberships m").
		Join("tenants t ON t.id = m.tenant_id").
		Where(sq.Eq{"m.user_id": userID, "m.active": true, "t.active": true}).
		OrderBy("m.created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list user tenants")
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
		return nil, mapError(err, "iterate membership rows")
	}

	return ids, nil
}

func (s *Storage) CountActiveMembers(ctx context.Context, tenantID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveMembers")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("memberships").
		Where(sq.Eq{"tenant_id": tenantID, "active": true}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, mapError(err, "count members")
	}

	return count, nil
}

func (s *Storage) CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMembership")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	permissions, err := jsonValue(nonNilStrings(m.Permissions))
	if err != nil {
		return nil, err
	}

	_, err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "tenant_id", "user_id", "role", "permissions", "active").
		Values(id, m.TenantID, m.UserID, m.Role, permissions, m.Active).
		ExecContext(ctx)
	if err != nil {
		return nil, mapError(err, "insert membership")
	}

	return s.GetMembershipByID(ctx, id)
}

// UpdateMembership writes role, permissions and active flag.
func (s *Storage) UpdateMembership(ctx context.Context, m *types.Membership) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMembership")
	defer span.End()

	permissions, err := jsonValue(nonNilStrings(m.Permissions))
	if err != nil {
		return err
	}

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("role", m.Role).
		Set("permissions", permissions).
		Set("active", m.Active).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": m.ID}).
		ExecContext(ctx)

	return expectAffected(res, err, "update membership")
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
