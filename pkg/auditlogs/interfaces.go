// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auditlogs

import (
	"context"

	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/types"
)

type ServiceInterface interface {
	ListTenantLogs(context.Context, types.AuditFilter) ([]*types.AuditLog, error)
	ListPlatformLogs(context.Context, types.AuditFilter) ([]*types.AuditLog, error)
}

type StorageInterface interface {
	ListAuditLogs(ctx context.Context, tenantID string, filter types.AuditFilter) ([]*types.AuditLog, error)
	ListSuperAdminAuditLogs(ctx context.Context, filter types.AuditFilter) ([]*types.AuditLog, error)
}

type AuthzInterface interface {
	Require(ctx context.Context, perm authorization.Permission) (*authorization.Principal, error)
	RequireSuperAdmin(ctx context.Context) (*authorization.Principal, error)
}
