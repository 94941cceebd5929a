// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/glassworks-service/internal/types"
)

var userColumns = []string{
	"id", "subject", "username", "first_name", "last_name", "role", "active",
	"COALESCE(default_tenant_id, '')", "COALESCE(viewing_tenant_id, '')", "created_at", "updated_at",
}

func scanUser(row sq.RowScanner) (*types.User, error) {
	var u types.User

	err := row.Scan(
		&u.ID, &u.Subject, &u.Username, &u.FirstName, &u.LastName, &u.Role, &u.Active,
		&u.DefaultTenantID, &u.ViewingTenantID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Storage) getUser(ctx context.Context, where sq.Sqlizer) (*types.User, error) {
	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(where).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		return nil, mapError(err, "get user")
	}

	return u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetUserBySubject(ctx context.Context, subject string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserBySubject")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"subject": subject})
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByUsername")
	defer span.End()

	return s.getUser(ctx, sq.Expr("lower(username) = lower(?)", username))
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "subject", "username", "first_name", "last_name", "role", "active", "default_tenant_id").
		Values(id, u.Subject, u.Username, u.FirstName, u.LastName, u.Role, u.Active, nullable(u.DefaultTenantID)).
		Suffix("RETURNING " + joinColumns(userColumns)).
		QueryRowContext(ctx)

	created, err := scanUser(row)
	if err != nil {
		return nil, mapError(err, "insert user")
	}

	return created, nil
}

// UpsertUserBySubject creates the user or refreshes the profile fields of
// the user holding the same subject. Role and tenant pointers are kept.
func (s *Storage) UpsertUserBySubject(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertUserBySubject")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "subject", "username", "first_name", "last_name", "role", "active").
		Values(id, u.Subject, u.Username, u.FirstName, u.LastName, u.Role, true).
		Suffix(
			"ON CONFLICT (subject) DO UPDATE SET username = EXCLUDED.username, first_name = EXCLUDED.first_name, "+
				"last_name = EXCLUDED.last_name, updated_at = NOW() RETURNING "+joinColumns(userColumns),
		).
		QueryRowContext(ctx)

	upserted, err := scanUser(row)
	if err != nil {
		return nil, mapError(err, "upsert user")
	}

	return upserted, nil
}

func (s *Storage) SetDefaultTenant(ctx context.Context, userID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetDefaultTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("default_tenant_id", nullable(tenantID)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	return expectAffected(res, err, "set default tenant")
}

// SetViewingTenant points a super admin at a tenant, an empty id clears it.
func (s *Storage) SetViewingTenant(ctx context.Context, userID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetViewingTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("viewing_tenant_id", nullable(tenantID)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	return expectAffected(res, err, "set viewing tenant")
}
