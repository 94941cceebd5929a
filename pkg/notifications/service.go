// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"strings"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/storage"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/types"
)

const defaultKind = "GENERAL"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	auditor AuditorInterface
	db      TxInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CreateNotification(ctx context.Context, req *NotificationRequest) (*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.CreateNotification")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermNotificationsCreate)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, errorx.ErrRequiredField.WithData(map[string]interface{}{"field": "title"})
	}

	kind := strings.ToUpper(strings.TrimSpace(req.Kind))
	if kind == "" {
		kind = defaultKind
	}

	var created *types.Notification
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		if req.TargetUserID != "" {
			m, err := s.storage.GetMembership(ctx, p.TenantID, req.TargetUserID)
			if err != nil {
				return storage.DomainError(err)
			}
			if !m.Active {
				return errorx.ErrNotFound
			}
		}

		created, err = s.storage.CreateNotification(ctx, &types.Notification{
			TenantID:     p.TenantID,
			TargetUserID: req.TargetUserID,
			Kind:         kind,
			Title:        strings.TrimSpace(req.Title),
			Body:         req.Body,
			EntityType:   req.EntityType,
			EntityID:     req.EntityID,
		})
		if err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "notification.create",
			EntityType: "notification",
			EntityID:   created.ID,
			After:      created,
		})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ListNotifications returns what the caller can see in the current tenant,
// hidden notifications excluded.
func (s *Service) ListNotifications(ctx context.Context, unreadOnly bool, page, size int64) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.ListNotifications")
	defer span.End()

	p, err := s.authz.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.storage.ListNotificationsForUser(ctx, p.TenantID, p.UserID(), unreadOnly, page, size)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	return list, nil
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.MarkRead")
	defer span.End()

	p, err := s.authz.RequireTenant(ctx)
	if err != nil {
		return err
	}

	if _, err := s.visible(ctx, p, id); err != nil {
		return err
	}

	return storage.DomainError(s.storage.MarkNotificationRead(ctx, id, p.UserID()))
}

func (s *Service) MarkAllRead(ctx context.Context) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.MarkAllRead")
	defer span.End()

	p, err := s.authz.RequireTenant(ctx)
	if err != nil {
		return 0, err
	}

	n, err := s.storage.MarkAllNotificationsRead(ctx, p.TenantID, p.UserID())
	if err != nil {
		return 0, storage.DomainError(err)
	}

	return n, nil
}

// Hide removes the notification from the caller's list only.
func (s *Service) Hide(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.Hide")
	defer span.End()

	p, err := s.authz.RequireTenant(ctx)
	if err != nil {
		return err
	}

	if _, err := s.visible(ctx, p, id); err != nil {
		return err
	}

	return storage.DomainError(s.storage.HideNotification(ctx, id, p.UserID()))
}

// Notify stores a system generated notification. It runs outside any
// request, the caller is trusted with the tenant id.
func (s *Service) Notify(ctx context.Context, n *types.Notification) error {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.Notify")
	defer span.End()

	if n.Kind == "" {
		n.Kind = defaultKind
	}

	created, err := s.storage.CreateNotification(ctx, n)
	if err != nil {
		return storage.DomainError(err)
	}

	s.logger.Debugf("notification %s sent to tenant %s", created.ID, created.TenantID)
	if err := s.monitor.IncDomainEvent(map[string]string{"event": "notification", "detail": created.Kind}); err != nil {
		s.logger.Debugf("failed to count notification: %v", err)
	}

	return nil
}

func (s *Service) visible(ctx context.Context, p *authorization.Principal, id string) (*types.Notification, error) {
	n, err := s.storage.GetNotificationByID(ctx, id)
	if err != nil {
		return nil, storage.DomainError(err)
	}
	if err := authorization.VerifyTenantOwnership(p, n.TenantID); err != nil {
		return nil, err
	}
	if n.TargetUserID != "" && n.TargetUserID != p.UserID() {
		return nil, errorx.ErrNotFound
	}
	return n, nil
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	auditor AuditorInterface,
	db TxInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		auditor: auditor,
		db:      db,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
