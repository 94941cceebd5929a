// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"time"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/types"
)

type ServiceInterface interface {
	CreateTenant(context.Context, *CreateTenantRequest) (*types.Tenant, error)
	GetTenant(context.Context, string) (*types.Tenant, error)
	ListTenants(context.Context, int64, int64) ([]*types.Tenant, error)
	UpdateTenant(context.Context, string, *UpdateTenantRequest) (*types.Tenant, error)
	SuspendTenant(context.Context, string, string) (*types.Tenant, error)
	ReactivateTenant(context.Context, string) (*types.Tenant, error)
	ChangePlan(context.Context, string, *ChangePlanRequest) (*types.Tenant, error)
	DeactivateTenant(context.Context, string) error

	RecordBillingPayment(context.Context, string, *BillingPaymentRequest) (*types.BillingPayment, error)
	ListBillingPayments(context.Context, string) ([]*types.BillingPayment, error)
	RevenueSummary(context.Context, *time.Time, *time.Time) (*types.RevenueSummary, error)

	EnterTenant(context.Context, string) error
	ExitTenant(context.Context) error
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantForUpdate(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context, page, size int64) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)

	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	SetDefaultTenant(ctx context.Context, userID, tenantID string) error
	SetViewingTenant(ctx context.Context, userID, tenantID string) error
	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)

	GetStoredFileByID(ctx context.Context, id string, withData bool) (*types.StoredFile, error)

	CreateBillingPayment(ctx context.Context, p *types.BillingPayment) (*types.BillingPayment, error)
	ListBillingPayments(ctx context.Context, tenantID string) ([]*types.BillingPayment, error)
	RevenueByMonthAndPlan(ctx context.Context, from, to time.Time) ([]*types.RevenueRow, error)
}

type AuthzInterface interface {
	RequireSuperAdmin(ctx context.Context) (*authorization.Principal, error)
}

type AuditorInterface interface {
	RecordPlatform(ctx context.Context, e audit.Entry) error
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
