// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invoices

import (
	"context"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/pricing"
	"github.com/canonical/glassworks-service/internal/types"
)

type ServiceInterface interface {
	PreviewInvoice(context.Context, []LineRequest) (*pricing.InvoiceResult, error)
	CreateInvoice(context.Context, *CreateInvoiceRequest) (*types.Invoice, error)
	GetInvoice(context.Context, string) (*types.Invoice, error)
	ListInvoices(context.Context, types.InvoiceFilter) ([]*types.Invoice, error)
	UpdateLineStatus(context.Context, string, string, types.WorkStatus) (*types.Invoice, error)
	CancelInvoice(context.Context, string) (*types.Invoice, error)
}

type StorageInterface interface {
	GetCustomerByID(ctx context.Context, id string) (*types.Customer, error)
	AdjustCustomerBalance(ctx context.Context, id string, delta float64) (float64, error)
	GetGlassTypeByID(ctx context.Context, id string) (*types.GlassType, error)
	NextCounter(ctx context.Context, tenantID, prefix string) (int64, error)
	CreateInvoice(ctx context.Context, inv *types.Invoice) (*types.Invoice, error)
	GetInvoiceByID(ctx context.Context, id string) (*types.Invoice, error)
	GetInvoiceForUpdate(ctx context.Context, id string) (*types.Invoice, error)
	ListInvoices(ctx context.Context, tenantID string, filter types.InvoiceFilter) ([]*types.Invoice, error)
	UpdateInvoiceState(ctx context.Context, inv *types.Invoice) error
	UpdateInvoiceLineStatus(ctx context.Context, id string, status types.WorkStatus) error
	SetInvoiceLinesStatus(ctx context.Context, invoiceID string, status types.WorkStatus) error
	CountPaymentsByInvoice(ctx context.Context, invoiceID string) (int, error)
}

// RatesInterface provides the rate snapshot used to price a whole invoice.
type RatesInterface interface {
	RateTable(ctx context.Context, tenantID string) (*pricing.RateTable, error)
}

type AuthzInterface interface {
	Require(ctx context.Context, perm authorization.Permission) (*authorization.Principal, error)
}

type AuditorInterface interface {
	Record(ctx context.Context, e audit.Entry) error
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
