// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auditlogs

import (
	"context"

	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/storage"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ListTenantLogs returns the trail of the caller's current tenant, newest first.
func (s *Service) ListTenantLogs(ctx context.Context, filter types.AuditFilter) ([]*types.AuditLog, error) {
	ctx, span := s.tracer.Start(ctx, "auditlogs.Service.ListTenantLogs")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermAuditView)
	if err != nil {
		return nil, err
	}

	logs, err := s.storage.ListAuditLogs(ctx, p.TenantID, filter)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	return logs, nil
}

// ListPlatformLogs returns the super admin trail.
func (s *Service) ListPlatformLogs(ctx context.Context, filter types.AuditFilter) ([]*types.AuditLog, error) {
	ctx, span := s.tracer.Start(ctx, "auditlogs.Service.ListPlatformLogs")
	defer span.End()

	if _, err := s.authz.RequireSuperAdmin(ctx); err != nil {
		return nil, err
	}

	logs, err := s.storage.ListSuperAdminAuditLogs(ctx, filter)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	return logs, nil
}

func NewService(storage StorageInterface, authz AuthzInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
