// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/types"
)

type ServiceInterface interface {
	RecordPayment(context.Context, *PaymentRequest) (*types.Payment, error)
	DeletePayment(context.Context, string) error
	GetPayment(context.Context, string) (*types.Payment, error)
	ListPayments(context.Context, types.PaymentFilter) ([]*types.Payment, error)
}

type StorageInterface interface {
	GetCustomerByID(ctx context.Context, id string) (*types.Customer, error)
	AdjustCustomerBalance(ctx context.Context, id string, delta float64) (float64, error)
	GetInvoiceForUpdate(ctx context.Context, id string) (*types.Invoice, error)
	UpdateInvoiceState(ctx context.Context, inv *types.Invoice) error
	CreatePayment(ctx context.Context, p *types.Payment) (*types.Payment, error)
	GetPaymentByID(ctx context.Context, id string) (*types.Payment, error)
	ListPayments(ctx context.Context, tenantID string, filter types.PaymentFilter) ([]*types.Payment, error)
	DeletePayment(ctx context.Context, id string) error
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
