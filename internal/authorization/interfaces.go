// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/glassworks-service/internal/types"
)

type AuthorizerInterface interface {
	Resolve(ctx context.Context) (*Principal, error)
	Require(ctx context.Context, perm Permission) (*Principal, error)
	RequireTenant(ctx context.Context) (*Principal, error)
	RequireSuperAdmin(ctx context.Context) (*Principal, error)
}

type StorageInterface interface {
	GetUserBySubject(ctx context.Context, subject string) (*types.User, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
}
