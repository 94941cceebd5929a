// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package customers

import (
	"context"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/types"
)

type ServiceInterface interface {
	CreateCustomer(context.Context, *CustomerRequest) (*types.Customer, error)
	GetCustomer(context.Context, string) (*types.Customer, error)
	ListCustomers(context.Context, string, int64, int64) ([]*types.Customer, error)
	UpdateCustomer(context.Context, string, *CustomerRequest) (*types.Customer, error)
	DeleteCustomer(context.Context, string) error
}

type StorageInterface interface {
	CreateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (*types.Customer, error)
	ListCustomers(ctx context.Context, tenantID, search string, page, size int64) ([]*types.Customer, error)
	UpdateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	CountInvoicesByCustomer(ctx context.Context, customerID string) (int, error)
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
