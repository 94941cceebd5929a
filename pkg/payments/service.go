// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"
	"math"
	"time"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/pricing"
	"github.com/canonical/glassworks-service/internal/storage"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/types"
	"github.com/canonical/glassworks-service/pkg/invoices"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	auditor AuditorInterface
	db      TxInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RecordPayment applies a payment to the customer balance and, when an
// invoice is named, to that invoice. The invoice row stays locked until the
// transaction ends.
func (s *Service) RecordPayment(ctx context.Context, req *PaymentRequest) (*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "payments.Service.RecordPayment")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermPaymentsCreate)
	if err != nil {
		return nil, err
	}

	amount := pricing.Round2(req.Amount)
	if amount <= 0 {
		return nil, errorx.ErrNonPositiveAmount
	}

	method := types.PaymentMethod(req.Method)
	if !method.Valid() {
		return nil, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "method"})
	}

	paidAt := time.Now().UTC()
	if req.PaidAt != nil {
		paidAt = req.PaidAt.UTC()
	}

	var created *types.Payment
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		customer, err := s.storage.GetCustomerByID(ctx, req.CustomerID)
		if err != nil {
			return storage.DomainError(err)
		}
		if err := authorization.VerifyTenantOwnership(p, customer.TenantID); err != nil {
			return err
		}
		if customer.Type == types.CustomerCash {
			return errorx.ErrCashCustomerNoPayments
		}

		if req.InvoiceID != "" {
			amount, err = s.applyToInvoice(ctx, p, customer.ID, req.InvoiceID, amount, paidAt)
			if err != nil {
				return err
			}
		}

		if _, err := s.storage.AdjustCustomerBalance(ctx, customer.ID, -amount); err != nil {
			return storage.DomainError(err)
		}

		created, err = s.storage.CreatePayment(ctx, &types.Payment{
			TenantID:   customer.TenantID,
			CustomerID: customer.ID,
			InvoiceID:  req.InvoiceID,
			Amount:     amount,
			Method:     method,
			Notes:      req.Notes,
			RecordedBy: p.UserID(),
			PaidAt:     paidAt,
		})
		if err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   customer.TenantID,
			ActorID:    p.UserID(),
			Action:     "payment.create",
			EntityType: "payment",
			EntityID:   created.ID,
			After:      created,
		})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// applyToInvoice books the payment against the invoice and returns the amount
// actually applied. An amount within the tolerance above the remaining balance
// is clamped to it, so an invoice is never paid beyond its total.
func (s *Service) applyToInvoice(ctx context.Context, p *authorization.Principal, customerID, invoiceID string, amount float64, paidAt time.Time) (float64, error) {
	inv, err := s.storage.GetInvoiceForUpdate(ctx, invoiceID)
	if err != nil {
		return 0, storage.DomainError(err)
	}
	if err := authorization.VerifyTenantOwnership(p, inv.TenantID); err != nil {
		return 0, err
	}

	switch {
	case inv.CustomerID != customerID:
		return 0, errorx.ErrInvoiceCustomerMismatch
	case inv.Status == types.InvoiceCancelled:
		return 0, errorx.ErrInvoiceCancelled
	case inv.Status == types.InvoicePaid:
		return 0, errorx.ErrInvoiceAlreadyPaid
	case amount > inv.RemainingBalance+pricing.Epsilon:
		return 0, errorx.ErrOverpayment.WithData(map[string]interface{}{"remaining": inv.RemainingBalance})
	}

	amount = math.Min(amount, inv.RemainingBalance)
	inv.AmountPaid = pricing.Sum(inv.AmountPaid, amount)
	settle(inv, paidAt)

	if err := s.storage.UpdateInvoiceState(ctx, inv); err != nil {
		return 0, storage.DomainError(err)
	}
	return amount, nil
}

// DeletePayment reverses RecordPayment. The invoice status is recomputed from
// the restored remaining balance.
func (s *Service) DeletePayment(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "payments.Service.DeletePayment")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermPaymentsDelete)
	if err != nil {
		return err
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		payment, err := s.owned(ctx, p, id)
		if err != nil {
			return err
		}

		if payment.InvoiceID != "" {
			inv, err := s.storage.GetInvoiceForUpdate(ctx, payment.InvoiceID)
			if err != nil {
				return storage.DomainError(err)
			}

			inv.AmountPaid = math.Max(pricing.Sub(inv.AmountPaid, payment.Amount), 0)
			if inv.Status != types.InvoiceCancelled {
				settle(inv, time.Now().UTC())
			}

			if err := s.storage.UpdateInvoiceState(ctx, inv); err != nil {
				return storage.DomainError(err)
			}
		}

		if _, err := s.storage.AdjustCustomerBalance(ctx, payment.CustomerID, payment.Amount); err != nil {
			return storage.DomainError(err)
		}

		if err := s.storage.DeletePayment(ctx, id); err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   payment.TenantID,
			ActorID:    p.UserID(),
			Action:     "payment.delete",
			EntityType: "payment",
			EntityID:   id,
			Before:     payment,
		})
	})
}

func (s *Service) GetPayment(ctx context.Context, id string) (*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "payments.Service.GetPayment")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermPaymentsView)
	if err != nil {
		return nil, err
	}

	return s.owned(ctx, p, id)
}

func (s *Service) ListPayments(ctx context.Context, filter types.PaymentFilter) ([]*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "payments.Service.ListPayments")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermPaymentsView)
	if err != nil {
		return nil, err
	}

	payments, err := s.storage.ListPayments(ctx, p.TenantID, filter)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	return payments, nil
}

func (s *Service) owned(ctx context.Context, p *authorization.Principal, id string) (*types.Payment, error) {
	payment, err := s.storage.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, storage.DomainError(err)
	}
	if err := authorization.VerifyTenantOwnership(p, payment.TenantID); err != nil {
		return nil, err
	}
	return payment, nil
}

// settle derives the remaining balance and payment status from the amount
// paid so far. The remaining balance never goes below zero.
func settle(inv *types.Invoice, paidAt time.Time) {
	inv.RemainingBalance = math.Max(pricing.Sub(inv.TotalPrice, inv.AmountPaid), 0)
	inv.Status = invoices.PaymentStatus(inv.RemainingBalance)

	switch {
	case inv.Status != types.InvoicePaid:
		inv.PaidAt = nil
	case inv.PaidAt == nil:
		inv.PaidAt = &paidAt
	}
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	auditor AuditorInterface,
	db TxInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		auditor: auditor,
		db:      db,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
