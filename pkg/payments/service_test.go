// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package payments -destination ./mock_interfaces.go -source=./interfaces.go

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

func pendingInvoice() *types.Invoice {
	return &types.Invoice{
		ID:               "inv-1",
		TenantID:         "tenant-1",
		CustomerID:       "cust-1",
		Status:           types.InvoicePending,
		TotalPrice:       100,
		AmountPaidNow:    40,
		AmountPaid:       40,
		RemainingBalance: 60,
	}
}

func TestService_RecordPayment(t *testing.T) {
	regular := &types.Customer{ID: "cust-1", TenantID: "tenant-1", Type: types.CustomerRegular, Balance: 60}
	cash := &types.Customer{ID: "cust-2", TenantID: "tenant-1", Type: types.CustomerCash}

	testCases := []struct {
		name        string
		req         *PaymentRequest
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name: "settles the invoice",
			req:  &PaymentRequest{CustomerID: "cust-1", InvoiceID: "inv-1", Amount: 60, Method: "CASH"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetCustomerByID(gomock.Any(), "cust-1").Return(regular, nil)
				m.storage.EXPECT().GetInvoiceForUpdate(gomock.Any(), "inv-1").Return(pendingInvoice(), nil)
				m.storage.EXPECT().UpdateInvoiceState(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invoice) error {
						if inv.Status != types.InvoicePaid || inv.RemainingBalance != 0 || inv.AmountPaid != 100 || inv.PaidAt == nil {
							t.Errorf("unexpected invoice state %+v", inv)
						}
						return nil
					},
				)
				m.storage.EXPECT().AdjustCustomerBalance(gomock.Any(), "cust-1", -60.0).Return(0.0, nil)
				m.storage.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Payment) (*types.Payment, error) {
						if p.RecordedBy != "user-1" || p.Method != types.PaymentCash {
							t.Errorf("unexpected payment %+v", p)
						}
						p.ID = "pay-1"
						return p, nil
					},
				)
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e audit.Entry) error {
						if e.Action != "payment.create" || e.EntityID != "pay-1" {
							t.Errorf("unexpected audit entry %+v", e)
						}
						return nil
					},
				)
			},
		},
		{
			name: "partial payment keeps the invoice pending",
			req:  &PaymentRequest{CustomerID: "cust-1", InvoiceID: "inv-1", Amount: 20.005, Method: "CARD"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetCustomerByID(gomock.Any(), "cust-1").Return(regular, nil)
				m.storage.EXPECT().GetInvoiceForUpdate(gomock.Any(), "inv-1").Return(pendingInvoice(), nil)
				m.storage.EXPECT().UpdateInvoiceState(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invoice) error {
						if inv.Status != types.InvoicePending || inv.RemainingBalance != 39.99 || inv.PaidAt != nil {
							t.Errorf("unexpected invoice state %+v", inv)
						}
						return nil
					},
				)
				m.storage.EXPECT().AdjustCustomerBalance(gomock.Any(), "cust-1", -20.01).Return(39.99, nil)
				m.storage.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Payment) (*types.Payment, error) {
						return p, nil
					},
				)
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "payment on account without invoice",
			req:  &PaymentRequest{CustomerID: "cust-1", Amount: 15, Method: "TRANSFER"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetCustomerByID(gomock.Any(), "cust-1").Return(regular, nil)
				m.storage.EXPECT().AdjustCustomerBalance(gomock.Any(), "cust-1", -15.0).Return(45.0, nil)
				m.storage.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Payment) (*types.Payment, error) {
						return p, nil
					},
				)
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "amount within tolerance is clamped to the remaining balance",
			req:  &PaymentRequest{CustomerID: "cust-1", InvoiceID: "inv-1", Amount: 60.01, Method: "CASH"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetCustomerByID(gomock.Any(), "cust-1").Return(regular, nil)
				m.storage.EXPECT().GetInvoiceForUpdate(gomock.Any(), "inv-1").Return(pendingInvoice(), nil)
				m.storage.EXPECT().UpdateInvoiceState(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invoice) error {
						if inv.Status != types.InvoicePaid || inv.RemainingBalance != 0 || inv.AmountPaid != inv.TotalPrice {
							t.Errorf("unexpected invoice state %+v", inv)
						}
						return nil
					},
				)
				m.storage.EXPECT().AdjustCustomerBalance(gomock.Any(), "cust-1", -60.0).Return(0.0, nil)
				m.storage.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Payment) (*types.Payment, error) {
						if p.Amount != 60 {
							t.Errorf("expected the recorded amount to be 60, got %v", p.Amount)
						}
						return p, nil
					},
				)
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "overpayment",
			req:  &PaymentRequest{CustomerID: "cust-1", InvoiceID: "inv-1", Amount: 60.02, Method: "CASH"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetCustomerByID(gomock.Any(), "cust-1").Return(regular, nil)
				m.storage.EXPECT().GetInvoiceForUpdate(gomock.Any(), "inv-1").Return(pendingInvoice(), nil)
			},
			expectedErr: errorx.ErrOverpayment,
		},
		{
			name: "paid invoice",
			req:  &PaymentRequest{CustomerID: "cust-1", InvoiceID: "inv-1", Amount: 1, Method: "CASH"},
			setupMocks: func(m *mocks) {
				inv := pendingInvoice()
				inv.Status = types.InvoicePaid
				m.storage.EXPECT().GetCustomerByID(gomock.Any(), "cust-1").Return(regular, nil)
				m.storage.EXPECT().GetInvoiceForUpdate(gomock.Any(), "inv-1").Return(inv, nil)
			},
			expectedErr: errorx.ErrInvoiceAlreadyPaid,
		},
		{
			name: "invoice of another customer",
			req:  &PaymentRequest{CustomerID: "cust-1", InvoiceID: "inv-1", Amount: 1, Method: "CASH"},
			setupMocks: func(m *mocks) {
				inv := pendingInvoice()
				inv.CustomerID = "cust-9"
				m.storage.EXPECT().GetCustomerByID(gomock.Any(), "cust-1").Return(regular, nil)
				m.storage.EXPECT().GetInvoiceForUpdate(gomock.Any(), "inv-1").Return(inv, nil)
			},
			expectedErr: errorx.ErrInvoiceCustomerMismatch,
		},
		{
			name: "cash customer",
			req:  &PaymentRequest{CustomerID: "cust-2", Amount: 10, Method: "CASH"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetCustomerByID(gomock.Any(), "cust-2").Return(cash, nil)
			},
			expectedErr: errorx.ErrCashCustomerNoPayments,
		},
		{
			name:        "zero amount",
			req:         &PaymentRequest{CustomerID: "cust-1", Amount: 0.001, Method: "CASH"},
			setupMocks:  func(*mocks) {},
			expectedErr: errorx.ErrNonPositiveAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.authz.EXPECT().Require(gomock.Any(), authorization.PermPaymentsCreate).Return(cashier(), nil)
			tc.setupMocks(m)

			_, err := s.RecordPayment(context.Background(), tc.req)

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

func TestService_DeletePaymentReopensInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	paidAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	inv := pendingInvoice()
	inv.Status = types.InvoicePaid
	inv.AmountPaid = 100
	inv.RemainingBalance = 0
	inv.PaidAt = &paidAt

	payment := &types.Payment{ID: "pay-1", TenantID: "tenant-1", CustomerID: "cust-1", InvoiceID: "inv-1", Amount: 60}

	m.authz.EXPECT().Require(gomock.Any(), authorization.PermPaymentsDelete).Return(cashier(), nil)
	m.storage.EXPECT().GetPaymentByID(gomock.Any(), "pay-1").Return(payment, nil)
	m.storage.EXPECT().GetInvoiceForUpdate(gomock.Any(), "inv-1").Return(inv, nil)
	m.storage.EXPECT().UpdateInvoiceState(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv *types.Invoice) error {
			if inv.Status != types.InvoicePending || inv.RemainingBalance != 60 || inv.AmountPaid != 40 || inv.PaidAt != nil {
				t.Errorf("unexpected invoice state %+v", inv)
			}
			return nil
		},
	)
	m.storage.EXPECT().AdjustCustomerBalance(gomock.Any(), "cust-1", 60.0).Return(60.0, nil)
	m.storage.EXPECT().DeletePayment(gomock.Any(), "pay-1").Return(nil)
	m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e audit.Entry) error {
			if e.Action != "payment.delete" || e.Before == nil {
				t.Errorf("unexpected audit entry %+v", e)
			}
			return nil
		},
	)

	if err := s.DeletePayment(context.Background(), "pay-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_DeletePaymentOtherTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.authz.EXPECT().Require(gomock.Any(), authorization.PermPaymentsDelete).Return(cashier(), nil)
	m.storage.EXPECT().GetPaymentByID(gomock.Any(), "pay-1").Return(&types.Payment{ID: "pay-1", TenantID: "tenant-2"}, nil)

	if err := s.DeletePayment(context.Background(), "pay-1"); !errors.Is(err, errorx.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
