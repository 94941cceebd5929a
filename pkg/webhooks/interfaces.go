// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/glassworks-service/internal/types"
)

// StorageInterface is the subset of internal/storage the identity hooks need.
type StorageInterface interface {
	GetUserBySubject(ctx context.Context, subject string) (*types.User, error)
	UpsertUserBySubject(ctx context.Context, u *types.User) (*types.User, error)
	ListActiveTenantIDsByUserID(ctx context.Context, userID string) ([]string, error)
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
}

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identity *KratosIdentity) (*types.User, error)
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}
