// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"strings"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/storage"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/types"
)

const (
	claimTenants       = "tenants"
	claimDefaultTenant = "default_tenant"
	claimRole          = "role"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HandleRegistration mirrors a freshly registered identity into the users
// table. Memberships are granted later by a tenant owner or a super admin.
func (s *Service) HandleRegistration(ctx context.Context, identity *KratosIdentity) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	username := strings.TrimSpace(identity.Traits.Username)
	if identity.ID == "" || username == "" {
		return nil, errorx.ErrRequiredField.WithData(map[string]interface{}{"field": "traits.username"})
	}

	user, err := s.storage.UpsertUserBySubject(ctx, &types.User{
		Subject:   identity.ID,
		Username:  username,
		FirstName: strings.TrimSpace(identity.Traits.Name.First),
		LastName:  strings.TrimSpace(identity.Traits.Name.Last),
		Role:      types.RoleWorker,
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, errorx.ErrDuplicateUsername
	}
	if err != nil {
		return nil, storage.DomainError(err)
	}

	s.logger.Infof("registered identity %s as user %s", identity.ID, user.ID)
	s.count("user_registered")

	return user, nil
}

// HandleTokenHook returns the tenant claims of the session subject. Unknown
// subjects get an empty session so that token issuance is never blocked.
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	if req == nil || req.Session == nil || req.Session.DefaultSession == nil || req.Session.DefaultSession.Subject == "" {
		return nil, errorx.ErrRequiredField.WithData(map[string]interface{}{"field": "session.subject"})
	}
	subject := req.Session.DefaultSession.Subject

	user, err := s.storage.GetUserBySubject(ctx, subject)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Debugf("token hook for unknown subject %s", subject)
		return &TokenHookResponse{}, nil
	}
	if err != nil {
		return nil, storage.DomainError(err)
	}

	if !user.Active {
		s.logger.Security().AuthzFailure(subject, "token_hook")
		return &TokenHookResponse{}, nil
	}

	tenants, err := s.storage.ListActiveTenantIDsByUserID(ctx, user.ID)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	role, err := s.roleOf(ctx, user)
	if err != nil {
		return nil, err
	}

	claims := map[string]interface{}{claimTenants: tenants}
	if user.DefaultTenantID != "" {
		claims[claimDefaultTenant] = user.DefaultTenantID
	}
	if role != "" {
		claims[claimRole] = string(role)
	}

	s.count("token_enriched")

	resp := new(TokenHookResponse)
	resp.Session.IDToken = claims
	resp.Session.AccessToken = claims
	return resp, nil
}

// roleOf resolves the platform role for super admins and the membership role
// in the default tenant for everyone else.
func (s *Service) roleOf(ctx context.Context, user *types.User) (types.Role, error) {
	if user.Role == types.RoleSuperAdmin {
		return types.RoleSuperAdmin, nil
	}

	if user.DefaultTenantID == "" {
		return "", nil
	}

	m, err := s.storage.GetMembership(ctx, user.DefaultTenantID, user.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", storage.DomainError(err)
	}

	if !m.Active {
		return "", nil
	}

	return m.Role, nil
}

func (s *Service) count(event string) {
	if err := s.monitor.IncDomainEvent(map[string]string{"event": "webhook_" + event, "detail": ""}); err != nil {
		s.logger.Debugf("failed to count %s: %v", event, err)
	}
}

var _ ServiceInterface = (*Service)(nil)

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
