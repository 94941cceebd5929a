// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import (
	"github.com/canonical/glassworks-service/internal/types"
)

type AddMemberRequest struct {
	Username string `json:"username" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=WORKER CASHIER ADMIN OWNER"`
}

type CreateAccountRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Role      string `json:"role" validate:"required,oneof=WORKER CASHIER ADMIN OWNER"`
}

type RoleRequest struct {
	Role string `json:"role" validate:"required,oneof=WORKER CASHIER ADMIN OWNER"`
}

type PermissionsRequest struct {
	Permissions []string `json:"permissions" validate:"required,min=1"`
}

type DefaultTenantRequest struct {
	TenantID string `json:"tenant_id" validate:"required"`
}

// Account is a freshly provisioned user. RecoveryLink lets the user pick a
// password, it is empty when the identity provider could not issue one.
type Account struct {
	User         *types.User       `json:"user"`
	Membership   *types.Membership `json:"membership"`
	RecoveryLink string            `json:"recovery_link,omitempty"`
}
