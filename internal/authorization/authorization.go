// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"slices"

	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/identity"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/storage"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Principal is the resolved caller of a request.
type Principal struct {
	User        *types.User
	TenantID    string
	Role        types.Role
	Permissions []Permission
	SuperAdmin  bool
}

// Has reports whether the principal holds perm. Super admins hold everything.
func (p *Principal) Has(perm Permission) bool {
	if p.SuperAdmin {
		return true
	}
	return slices.Contains(p.Permissions, perm)
}

// UserID is the local id of the caller, used as audit actor.
func (p *Principal) UserID() string {
	if p == nil || p.User == nil {
		return ""
	}
	return p.User.ID
}

type Authorizer struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Resolve maps the subject in ctx to a principal scoped to the tenant of the
// current session. Super admins resolve to the tenant they are viewing, if any.
func (a *Authorizer) Resolve(ctx context.Context) (*Principal, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Resolve")
	defer span.End()

	subject, ok := identity.SubjectFromContext(ctx)
	if !ok {
		return nil, errorx.ErrNotAuthenticated
	}

	user, err := a.storage.GetUserBySubject(ctx, subject)
	if errors.Is(err, storage.ErrNotFound) {
		a.logger.Security().AuthnFailure(subject, "unknown subject")
		return nil, errorx.ErrNotAuthenticated
	}
	if err != nil {
		return nil, errorx.ErrInternal.Wrap(err)
	}

	if !user.Active {
		a.logger.Security().AuthnFailure(subject, "inactive user")
		return nil, errorx.ErrUserInactive
	}

	if user.Role == types.RoleSuperAdmin {
		return &Principal{
			User:        user,
			TenantID:    user.ViewingTenantID,
			Role:        types.RoleSuperAdmin,
			Permissions: AllPermissions(),
			SuperAdmin:  true,
		}, nil
	}

	if user.DefaultTenantID == "" {
		return nil, errorx.ErrNoTenantSelected
	}

	tenant, err := a.storage.GetTenantByID(ctx, user.DefaultTenantID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errorx.ErrNoMembership
	}
	if err != nil {
		return nil, errorx.ErrInternal.Wrap(err)
	}

	if !tenant.Usable() {
		return nil, errorx.ErrTenantUnavailable
	}

	membership, err := a.storage.GetMembership(ctx, tenant.ID, user.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errorx.ErrNoMembership
	}
	if err != nil {
		return nil, errorx.ErrInternal.Wrap(err)
	}

	if !membership.Active {
		return nil, errorx.ErrNoMembership
	}

	return &Principal{
		User:        user,
		TenantID:    tenant.ID,
		Role:        membership.Role,
		Permissions: a.effectivePermissions(membership),
	}, nil
}

// effectivePermissions prefers the explicit membership list over the role default.
func (a *Authorizer) effectivePermissions(m *types.Membership) []Permission {
	if len(m.Permissions) == 0 {
		return RolePermissions(m.Role)
	}

	perms := make([]Permission, 0, len(m.Permissions))
	for _, raw := range m.Permissions {
		p, err := ParsePermission(raw)
		if err != nil {
			a.logger.Warnf("ignoring unknown permission %q on membership %s", raw, m.ID)
			continue
		}
		perms = append(perms, p)
	}
	return perms
}

// RequireTenant resolves a principal that is bound to a tenant.
func (a *Authorizer) RequireTenant(ctx context.Context) (*Principal, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RequireTenant")
	defer span.End()

	p, err := a.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	if p.TenantID == "" {
		return nil, errorx.ErrNoTenantSelected
	}

	return p, nil
}

func (a *Authorizer) Require(ctx context.Context, perm Permission) (*Principal, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Require")
	defer span.End()

	p, err := a.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	if !p.Has(perm) {
		a.logger.Security().AuthzFailure(p.UserID(), string(perm))
		return nil, errorx.ErrPermissionDenied.WithData(map[string]interface{}{"permission": string(perm)})
	}

	return p, nil
}

func (a *Authorizer) RequireSuperAdmin(ctx context.Context) (*Principal, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RequireSuperAdmin")
	defer span.End()

	p, err := a.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	if !p.SuperAdmin {
		a.logger.Security().AuthzFailure(p.UserID(), "platform")
		return nil, errorx.ErrSuperAdminOnly
	}

	return p, nil
}

// VerifyTenantOwnership hides records of other tenants behind a not found error.
func VerifyTenantOwnership(p *Principal, recordTenantID string) error {
	if p == nil {
		return errorx.ErrNotAuthenticated
	}
	if p.SuperAdmin && p.TenantID == "" {
		return nil
	}
	if recordTenantID != p.TenantID {
		return errorx.ErrNotFound
	}
	return nil
}

func NewAuthorizer(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)
	a.storage = storage
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
