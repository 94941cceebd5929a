// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import (
	"context"
	"errors"
	"fmt"
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

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	identity IdentityProviderInterface
	authz    AuthzInterface
	auditor  AuditorInterface
	db       TxInterface

	recoveryLinkLifetime string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListMembers(ctx context.Context) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.ListMembers")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermMembersView)
	if err != nil {
		return nil, err
	}

	members, err := s.storage.ListMembersByTenantID(ctx, p.TenantID)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	return members, nil
}

// AddMember grants an existing user access to the current tenant. A removed
// membership is reactivated with the new role.
func (s *Service) AddMember(ctx context.Context, req *AddMemberRequest) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.AddMember")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermMembersManage)
	if err != nil {
		return nil, err
	}

	role := types.Role(req.Role)
	if err := assignable(p, role); err != nil {
		return nil, err
	}

	user, err := s.storage.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, storage.DomainError(err)
	}

	var result *types.Membership
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		existing, err := s.storage.GetMembership(ctx, p.TenantID, user.ID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return storage.DomainError(err)
		}
		if existing != nil && existing.Active {
			return errorx.ErrAlreadyMember
		}

		if err := s.checkSeats(ctx, p.TenantID); err != nil {
			return err
		}

		if existing != nil {
			before := *existing
			existing.Role = role
			existing.Permissions = authorization.Strings(authorization.RolePermissions(role))
			existing.Active = true

			if err := s.storage.UpdateMembership(ctx, existing); err != nil {
				return storage.DomainError(err)
			}
			result = existing

			return s.record(ctx, p, "member.reactivate", &before, existing)
		}

		result, err = s.storage.CreateMembership(ctx, &types.Membership{
			TenantID:    p.TenantID,
			UserID:      user.ID,
			Role:        role,
			Permissions: authorization.Strings(authorization.RolePermissions(role)),
			Active:      true,
		})
		if err != nil {
			return storage.DomainError(err)
		}

		return s.record(ctx, p, "member.add", nil, result)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CreateUserAccount provisions an identity in the identity provider and the
// matching local user and membership. When the local write fails the identity
// is deleted again.
func (s *Service) CreateUserAccount(ctx context.Context, req *CreateAccountRequest) (*Account, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.CreateUserAccount")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermMembersManage)
	if err != nil {
		return nil, err
	}

	role := types.Role(req.Role)
	if err := assignable(p, role); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)

	if err := s.checkSeats(ctx, p.TenantID); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetUserByUsername(ctx, username); err == nil {
		return nil, errorx.ErrDuplicateUsername
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, storage.DomainError(err)
	}

	existing, err := s.identity.GetIdentityIDByUsername(ctx, username)
	if err != nil {
		return nil, errorx.ErrIdentityProvider.Wrap(err)
	}
	if existing != "" {
		return nil, errorx.ErrDuplicateUsername
	}

	identityID, err := s.identity.CreateIdentity(ctx, username, req.FirstName, req.LastName)
	if err != nil {
		s.logger.Errorf("failed to create identity for %s: %v", username, err)
		return nil, errorx.ErrIdentityProvider.Wrap(err)
	}

	account := new(Account)
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.checkSeats(ctx, p.TenantID); err != nil {
			return err
		}

		account.User, err = s.storage.CreateUser(ctx, &types.User{
			Subject:         identityID,
			Username:        username,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Role:            role,
			Active:          true,
			DefaultTenantID: p.TenantID,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return errorx.ErrDuplicateUsername.Wrap(err)
			}
			return storage.DomainError(err)
		}

		account.Membership, err = s.storage.CreateMembership(ctx, &types.Membership{
			TenantID:    p.TenantID,
			UserID:      account.User.ID,
			Role:        role,
			Permissions: authorization.Strings(authorization.RolePermissions(role)),
			Active:      true,
		})
		if err != nil {
			return storage.DomainError(err)
		}

		return s.record(ctx, p, "member.create", nil, account.Membership)
	})
	if err != nil {
		return nil, s.compensate(ctx, identityID, err)
	}

	link, _, err := s.identity.CreateRecoveryLink(ctx, identityID, s.recoveryLinkLifetime)
	if err != nil {
		s.logger.Errorf("account %s created without recovery link: %v", account.User.ID, err)
	} else {
		account.RecoveryLink = link
	}

	return account, nil
}

// compensate undoes the identity created for a failed account. A failed
// compensation leaves an orphan identity, it is reported with the cause.
func (s *Service) compensate(ctx context.Context, identityID string, cause error) error {
	if err := s.identity.DeleteIdentity(ctx, identityID); err != nil {
		s.logger.Errorf("orphan identity %s left after failed account creation: %v", identityID, err)
		return errors.Join(cause, fmt.Errorf("failed to delete identity %s: %w", identityID, err))
	}

	s.logger.Infof("deleted identity %s after failed account creation", identityID)
	return cause
}

// UpdateMemberRole changes the role and resets the permissions to the role's
// defaults.
func (s *Service) UpdateMemberRole(ctx context.Context, id string, role types.Role) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.UpdateMemberRole")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermMembersManage)
	if err != nil {
		return nil, err
	}
	if err := assignable(p, role); err != nil {
		return nil, err
	}

	return s.modify(ctx, p, id, "member.role_change", func(m *types.Membership) {
		m.Role = role
		m.Permissions = authorization.Strings(authorization.RolePermissions(role))
	})
}

// UpdateMemberPermissions replaces the explicit grant, the role label stays.
// An empty grant is rejected: stored empty lists mean the role defaults
// apply, revoking everything is RemoveMember.
func (s *Service) UpdateMemberPermissions(ctx context.Context, id string, raw []string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.UpdateMemberPermissions")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermMembersManage)
	if err != nil {
		return nil, err
	}

	perms, err := authorization.ParsePermissions(raw)
	if err != nil {
		return nil, err
	}
	if len(perms) == 0 {
		return nil, errorx.ErrEmptyPermissions
	}

	return s.modify(ctx, p, id, "member.permissions_change", func(m *types.Membership) {
		m.Permissions = authorization.Strings(perms)
	})
}

// RemoveMember deactivates the membership, history stays attributable.
func (s *Service) RemoveMember(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "members.Service.RemoveMember")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermMembersManage)
	if err != nil {
		return err
	}

	_, err = s.modify(ctx, p, id, "member.remove", func(m *types.Membership) {
		m.Active = false
	})
	return err
}

func (s *Service) modify(ctx context.Context, p *authorization.Principal, id, action string, change func(*types.Membership)) (*types.Membership, error) {
	var result *types.Membership

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		m, err := s.storage.GetMembershipByID(ctx, id)
		if err != nil {
			return storage.DomainError(err)
		}
		if err := authorization.VerifyTenantOwnership(p, m.TenantID); err != nil {
			return err
		}
		if !m.Active {
			return errorx.ErrNotFound
		}
		if m.UserID == p.UserID() {
			return errorx.ErrSelfEdit
		}
		if m.Role == types.RoleOwner && !p.SuperAdmin {
			return errorx.ErrOwnerProtected
		}

		before := *m
		change(m)

		if err := s.storage.UpdateMembership(ctx, m); err != nil {
			return storage.DomainError(err)
		}
		result = m

		return s.record(ctx, p, action, &before, m)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// SetDefaultTenant picks the tenant a user lands in after signing in.
func (s *Service) SetDefaultTenant(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "members.Service.SetDefaultTenant")
	defer span.End()

	p, err := s.authz.Resolve(ctx)
	if err != nil {
		return err
	}

	if !p.SuperAdmin {
		m, err := s.storage.GetMembership(ctx, tenantID, p.UserID())
		if err != nil {
			return storage.DomainError(err)
		}
		if !m.Active {
			return errorx.ErrNoMembership
		}
	}

	return storage.DomainError(s.storage.SetDefaultTenant(ctx, p.UserID(), tenantID))
}

// checkSeats fails when the tenant's plan has no free seat left.
func (s *Service) checkSeats(ctx context.Context, tenantID string) error {
	t, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		return storage.DomainError(err)
	}

	limit := t.SeatLimit()
	if limit <= 0 {
		return nil
	}

	n, err := s.storage.CountActiveMembers(ctx, tenantID)
	if err != nil {
		return storage.DomainError(err)
	}
	if n >= limit {
		return errorx.ErrSeatLimitReached.WithData(map[string]interface{}{"limit": limit})
	}

	return nil
}

func (s *Service) record(ctx context.Context, p *authorization.Principal, action string, before, after *types.Membership) error {
	return s.auditor.Record(ctx, audit.Entry{
		TenantID:   p.TenantID,
		ActorID:    p.UserID(),
		Action:     action,
		EntityType: "membership",
		EntityID:   after.ID,
		Before:     before,
		After:      after,
		Metadata:   map[string]string{"user_id": after.UserID},
	})
}

// assignable checks role can be granted by p. Owners are appointed by super
// admins only.
func assignable(p *authorization.Principal, role types.Role) error {
	switch role {
	case types.RoleWorker, types.RoleCashier, types.RoleAdmin:
		return nil
	case types.RoleOwner:
		if p.SuperAdmin {
			return nil
		}
		return errorx.ErrOwnerProtected
	}
	return errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "role"})
}

func NewService(
	storage StorageInterface,
	identity IdentityProviderInterface,
	recoveryLinkLifetime string,
	authz AuthzInterface,
	auditor AuditorInterface,
	db TxInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:              storage,
		identity:             identity,
		recoveryLinkLifetime: recoveryLinkLifetime,
		authz:                authz,
		auditor:              auditor,
		db:                   db,
		tracer:               tracer,
		monitor:              monitor,
		logger:               logger,
	}
}
