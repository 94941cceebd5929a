// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"

	ory "github.com/ory/client-go"
)

type ClientInterface interface {
	GetIdentityIDByUsername(ctx context.Context, username string) (string, error)
	CreateIdentity(ctx context.Context, username, firstName, lastName string) (string, error)
	DeleteIdentity(ctx context.Context, id string) error
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}
