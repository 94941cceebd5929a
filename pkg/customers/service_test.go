// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package customers

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/storage"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package customers -destination ./mock_interfaces.go -source=./interfaces.go

type mocks struct {
	storage *MockStorageInterface
	authz   *MockAuthzInterface
	auditor *MockAuditorInterface
	tx      *MockTxInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks) {
	m := &mocks{
		storage: NewMockStorageInterface(ctrl),
		authz:   NewMockAuthzInterface(ctrl),
		auditor: NewMockAuditorInterface(ctrl),
		tx:      NewMockTxInterface(ctrl),
	}
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	logger := logging.NewNoopLogger()
	s := NewService(m.storage, m.authz, m.auditor, m.tx, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	return s, m
}

func cashier() *authorization.Principal {
	return &authorization.Principal{
		User:        &types.User{ID: "user-1"},
		TenantID:    "tenant-1",
		Role:        types.RoleCashier,
		Permissions: authorization.RolePermissions(types.RoleCashier),
	}
}

func TestService_CreateCustomer(t *testing.T) {
	testCases := []struct {
		name        string
		req         *CustomerRequest
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name: "regular customer with opening balance",
			req:  &CustomerRequest{Name: " Ali ", Phone: "0550", Type: "REGULAR", Balance: 120.456},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *types.Customer) (*types.Customer, error) {
						if c.Name != "Ali" || c.TenantID != "tenant-1" || c.Balance != 120.46 {
							t.Errorf("unexpected customer %+v", c)
						}
						c.ID = "cust-1"
						return c, nil
					},
				)
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e audit.Entry) error {
						if e.Action != "customer.create" || e.EntityID != "cust-1" {
							t.Errorf("unexpected audit entry %+v", e)
						}
						return nil
					},
				)
			},
		},
		{
			name:        "cash customer with balance",
			req:         &CustomerRequest{Name: "Walk-in", Type: "CASH", Balance: 10},
			setupMocks:  func(*mocks) {},
			expectedErr: errorx.ErrCashCustomerBalance,
		},
		{
			name:        "cash customer with one cent",
			req:         &CustomerRequest{Name: "Walk-in", Type: "CASH", Balance: 0.01},
			setupMocks:  func(*mocks) {},
			expectedErr: errorx.ErrCashCustomerBalance,
		},
		{
			name:        "cash customer owing one cent",
			req:         &CustomerRequest{Name: "Walk-in", Type: "CASH", Balance: -0.01},
			setupMocks:  func(*mocks) {},
			expectedErr: errorx.ErrCashCustomerBalance,
		},
		{
			name: "duplicate phone",
			req:  &CustomerRequest{Name: "Ali", Phone: "0550", Type: "REGULAR"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: errorx.ErrDuplicatePhone,
		},
		{
			name:        "unknown type",
			req:         &CustomerRequest{Name: "Ali", Type: "VIP"},
			setupMocks:  func(*mocks) {},
			expectedErr: errorx.ErrInvalidValue,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.authz.EXPECT().Require(gomock.Any(), authorization.PermCustomersCreate).Return(cashier(), nil)
			tc.setupMocks(m)

			_, err := s.CreateCustomer(context.Background(), tc.req)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_UpdateCustomer(t *testing.T) {
	testCases := []struct {
		name            string
		current         *types.Customer
		req             *CustomerRequest
		expectWrite     bool
		expectedBalance float64
		expectedErr     error
	}{
		{
			name:        "rename keeps the balance",
			current:     &types.Customer{ID: "cust-1", TenantID: "tenant-1", Name: "Ali", Type: types.CustomerRegular, Balance: 50},
			req:             &CustomerRequest{Name: "Ali B", Type: "REGULAR", Balance: 0},
			expectWrite:     true,
			expectedBalance: 50,
		},
		{
			name:        "convert to cash with balance",
			current:     &types.Customer{ID: "cust-1", TenantID: "tenant-1", Name: "Ali", Type: types.CustomerRegular, Balance: 50},
			req:         &CustomerRequest{Name: "Ali", Type: "CASH"},
			expectedErr: errorx.ErrCashCustomerBalance,
		},
		{
			name:        "convert customer with one cent to cash",
			current:     &types.Customer{ID: "cust-1", TenantID: "tenant-1", Name: "Ali", Type: types.CustomerRegular, Balance: 0.01},
			req:         &CustomerRequest{Name: "Ali", Type: "CASH"},
			expectedErr: errorx.ErrCashCustomerBalance,
		},
		{
			name:        "convert customer owed one cent to cash",
			current:     &types.Customer{ID: "cust-1", TenantID: "tenant-1", Name: "Ali", Type: types.CustomerRegular, Balance: -0.01},
			req:         &CustomerRequest{Name: "Ali", Type: "CASH"},
			expectedErr: errorx.ErrCashCustomerBalance,
		},
		{
			name:        "convert settled customer to cash",
			current:     &types.Customer{ID: "cust-1", TenantID: "tenant-1", Name: "Ali", Type: types.CustomerCompany, Balance: 0.004},
			req:         &CustomerRequest{Name: "Ali", Type: "CASH"},
			expectWrite: true,
		},
		{
			name:        "customer of another tenant",
			current:     &types.Customer{ID: "cust-1", TenantID: "tenant-2", Name: "Ali", Type: types.CustomerRegular},
			req:         &CustomerRequest{Name: "Ali", Type: "REGULAR"},
			expectedErr: errorx.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.authz.EXPECT().Require(gomock.Any(), authorization.PermCustomersEdit).Return(cashier(), nil)
			m.storage.EXPECT().GetCustomerByID(gomock.Any(), "cust-1").Return(tc.current, nil)
			if tc.expectWrite {
				m.storage.EXPECT().UpdateCustomer(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *types.Customer) (*types.Customer, error) {
						if c.Balance != tc.expectedBalance {
							t.Errorf("expected balance %v, got %v", tc.expectedBalance, c.Balance)
						}
						return c, nil
					},
				)
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			}

			_, err := s.UpdateCustomer(context.Background(), "cust-1", tc.req)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_DeleteCustomer(t *testing.T) {
	customer := &types.Customer{ID: "cust-1", TenantID: "tenant-1", Name: "Ali", Type: types.CustomerRegular}

	testCases := []struct {
		name        string
		invoices    int
		expectedErr error
	}{
		{name: "without invoices"},
		{name: "with invoices", invoices: 2, expectedErr: errorx.ErrCustomerHasInvoices},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.authz.EXPECT().Require(gomock.Any(), authorization.PermCustomersDelete).Return(cashier(), nil)
			m.storage.EXPECT().GetCustomerByID(gomock.Any(), "cust-1").Return(customer, nil)
			m.storage.EXPECT().CountInvoicesByCustomer(gomock.Any(), "cust-1").Return(tc.invoices, nil)
			if tc.expectedErr == nil {
				m.storage.EXPECT().DeleteCustomer(gomock.Any(), "cust-1").Return(nil)
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := s.DeleteCustomer(context.Background(), "cust-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_ListCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.authz.EXPECT().Require(gomock.Any(), authorization.PermCustomersView).Return(cashier(), nil)
	m.storage.EXPECT().ListCustomers(gomock.Any(), "tenant-1", "ali", int64(1), int64(20)).Return([]*types.Customer{{ID: "cust-1"}}, nil)

	customers, err := s.ListCustomers(context.Background(), " ali ", 1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(customers) != 1 {
		t.Errorf("expected one customer, got %d", len(customers))
	}
}
