// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import (
	"context"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/types"
)

type ServiceInterface interface {
	ListMembers(context.Context) ([]*types.Membership, error)
	AddMember(context.Context, *AddMemberRequest) (*types.Membership, error)
	CreateUserAccount(context.Context, *CreateAccountRequest) (*Account, error)
	UpdateMemberRole(context.Context, string, types.Role) (*types.Membership, error)
	UpdateMemberPermissions(context.Context, string, []string) (*types.Membership, error)
	RemoveMember(context.Context, string) error
	SetDefaultTenant(context.Context, string) error
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	SetDefaultTenant(ctx context.Context, userID, tenantID string) error
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	GetMembershipByID(ctx context.Context, id string) (*types.Membership, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	CountActiveMembers(ctx context.Context, tenantID string) (int, error)
	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	UpdateMembership(ctx context.Context, m *types.Membership) error
}

// IdentityProviderInterface is the subset of the Kratos admin API used to
// provision accounts.
type IdentityProviderInterface interface {
	GetIdentityIDByUsername(ctx context.Context, username string) (string, error)
	CreateIdentity(ctx context.Context, username, firstName, lastName string) (string, error)
	DeleteIdentity(ctx context.Context, id string) error
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}

type AuthzInterface interface {
	Resolve(ctx context.Context) (*authorization.Principal, error)
	Require(ctx context.Context, perm authorization.Permission) (*authorization.Principal, error)
}

type AuditorInterface interface {
	Record(ctx context.Context, e audit.Entry) error
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
