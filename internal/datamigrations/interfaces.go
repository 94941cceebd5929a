// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package datamigrations

import (
	"context"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/types"
)

type RunnerInterface interface {
	List(ctx context.Context, tenantID string) ([]*Status, error)
	Run(ctx context.Context, name, tenantID string) (*Result, error)
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)

	IsDataMigrationApplied(ctx context.Context, name, tenantID string) (bool, error)
	MarkDataMigrationApplied(ctx context.Context, name, tenantID string) error
	DataMigrationsForTenant(ctx context.Context, tenantID string) ([]string, error)

	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	UpdateMembership(ctx context.Context, m *types.Membership) error

	ListInvoiceIDs(ctx context.Context, tenantID string) ([]string, error)
	GetInvoiceForUpdate(ctx context.Context, id string) (*types.Invoice, error)
	ListInvoiceLines(ctx context.Context, invoiceID string) ([]*types.InvoiceLine, error)
	UpdateInvoiceState(ctx context.Context, inv *types.Invoice) error

	LockThicknessRates(ctx context.Context, tenantID string, kind types.RateKind) error
	ListThicknessRates(ctx context.Context, tenantID string, kind types.RateKind, forUpdate bool) ([]*types.ThicknessRate, error)
	CreateThicknessRate(ctx context.Context, r *types.ThicknessRate) (*types.ThicknessRate, error)
}

type AuditorInterface interface {
	RecordPlatform(ctx context.Context, e audit.Entry) error
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
