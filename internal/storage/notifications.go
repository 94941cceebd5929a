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

var notificationColumns = []string{
	"n.id", "n.tenant_id", "COALESCE(n.target_user_id, '')", "n.kind", "n.title", "n.body",
	"COALESCE(n.entity_type, '')", "COALESCE(n.entity_id, '')", "r.read_at IS NOT NULL", "n.created_at",
}

func (s *Storage) CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNotification")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created := *n
	err = s.db.Statement(ctx).
		Insert("notifications").
		Columns("id", "tenant_id", "target_user_id", "kind", "title", "body", "entity_type", "entity_id").
		Values(id, n.TenantID, nullable(n.TargetUserID), n.Kind, n.Title, n.Body, nullable(n.EntityType), nullable(n.EntityID)).
		Suffix("RETURNING id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, mapError(err, "insert notification")
	}

	return &created, nil
}

// ListNotificationsForUser returns broadcast and targeted notifications of
// the tenant the user has not hidden, with the user's read flag.
func (s *Storage) ListNotificationsForUser(ctx context.Context, tenantID, userID string, unreadOnly bool, page, size int64) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListNotificationsForUser")
	defer span.End()

	limit, offset := db.Paginate(page, size)

	query := s.db.Statement(ctx).
		Select(notificationColumns...).
		From("notifications n").
		LeftJoin("notification_receipts r ON r.notification_id = n.id AND r.user_id = ?", userID).
		Where(sq.Eq{"n.tenant_id": tenantID}).
		Where(sq.Or{sq.Eq{"n.target_user_id": nil}, sq.Eq{"n.target_user_id": userID}}).
		Where(sq.Eq{"r.hidden_at": nil})

	if unreadOnly {
		query = query.Where(sq.Eq{"r.read_at": nil})
	}

	rows, err := query.
		OrderBy("n.created_at DESC").
		Limit(limit).
		Offset(offset).
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list notifications")
	}
	defer rows.Close()

	result := make([]*types.Notification, 0)
	for rows.Next() {
		var n types.Notification
		if err := rows.Scan(&n.ID, &n.TenantID, &n.TargetUserID, &n.Kind, &n.Title, &n.Body, &n.EntityType, &n.EntityID, &n.Read, &n.CreatedAt); err != nil {
			return nil, mapError(err, "scan notification")
		}
		result = append(result, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate notification rows")
	}

	return result, nil
}

func (s *Storage) GetNotificationByID(ctx context.Context, id string) (*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetNotificationByID")
	defer span.End()

	var n types.Notification
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "COALESCE(target_user_id, '')", "kind", "title", "body", "COALESCE(entity_type, '')", "COALESCE(entity_id, '')", "created_at").
		From("notifications").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&n.ID, &n.TenantID, &n.TargetUserID, &n.Kind, &n.Title, &n.Body, &n.EntityType, &n.EntityID, &n.CreatedAt)
	if err != nil {
		return nil, mapError(err, "get notification")
	}

	return &n, nil
}

func (s *Storage) upsertReceipt(ctx context.Context, notificationID, userID, column string) error {
	now := time.Now().UTC()

	_, err := s.db.Statement(ctx).
		Insert("notification_receipts").
		Columns("notification_id", "user_id", column).
		Values(notificationID, userID, now).
		Suffix("ON CONFLICT (notification_id, user_id) DO UPDATE SET "+column+" = COALESCE(notification_receipts."+column+", ?)", now).
		ExecContext(ctx)

	return mapError(err, "upsert notification receipt")
}

func (s *Storage) MarkNotificationRead(ctx context.Context, notificationID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkNotificationRead")
	defer span.End()

	return s.upsertReceipt(ctx, notificationID, userID, "read_at")
}

func (s *Storage) HideNotification(ctx context.Context, notificationID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.HideNotification")
	defer span.End()

	return s.upsertReceipt(ctx, notificationID, userID, "hidden_at")
}

// MarkAllNotificationsRead records a read receipt for every notification
// visible to the user that has none yet.
func (s *Storage) MarkAllNotificationsRead(ctx context.Context, tenantID, userID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkAllNotificationsRead")
	defer span.End()

	now := time.Now().UTC()

	visible := sq.Select("n.id").
		Column(sq.Expr("?::text", userID)).
		Column(sq.Expr("?::timestamptz", now)).
		From("notifications n").
		Where(sq.Eq{"n.tenant_id": tenantID}).
		Where(sq.Or{sq.Eq{"n.target_user_id": nil}, sq.Eq{"n.target_user_id": userID}})

	res, err := s.db.Statement(ctx).
		Insert("notification_receipts").
		Columns("notification_id", "user_id", "read_at").
		Select(visible).
		Suffix("ON CONFLICT (notification_id, user_id) DO UPDATE SET read_at = COALESCE(notification_receipts.read_at, EXCLUDED.read_at)").
		ExecContext(ctx)
	if err != nil {
		return 0, mapError(err, "mark notifications read")
	}

	return res.RowsAffected()
}
