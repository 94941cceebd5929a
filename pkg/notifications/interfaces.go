// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/types"
)

type ServiceInterface interface {
	CreateNotification(context.Context, *NotificationRequest) (*types.Notification, error)
	ListNotifications(context.Context, bool, int64, int64) ([]*types.Notification, error)
	MarkRead(context.Context, string) error
	MarkAllRead(context.Context) (int64, error)
	Hide(context.Context, string) error
	Notify(context.Context, *types.Notification) error
}

type StorageInterface interface {
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error)
	ListNotificationsForUser(ctx context.Context, tenantID, userID string, unreadOnly bool, page, size int64) ([]*types.Notification, error)
	GetNotificationByID(ctx context.Context, id string) (*types.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID, userID string) error
	HideNotification(ctx context.Context, notificationID, userID string) error
	MarkAllNotificationsRead(ctx context.Context, tenantID, userID string) (int64, error)
}

type AuthzInterface interface {
	Require(ctx context.Context, perm authorization.Permission) (*authorization.Principal, error)
	RequireTenant(ctx context.Context) (*authorization.Principal, error)
}

type AuditorInterface interface {
	Record(ctx context.Context, e audit.Entry) error
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
