// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invoices

import (
	"context"
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
	"github.com/canonical/glassworks-service/internal/units"
)

const counterPrefix = "INV"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	rates   RatesInterface
	authz   AuthzInterface
	auditor AuditorInterface
	db      TxInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// priced holds the glass snapshots next to the pricing result of each line.
type priced struct {
	glass  []*types.GlassType
	result *pricing.InvoiceResult
}

func (s *Service) PreviewInvoice(ctx context.Context, lines []LineRequest) (*pricing.InvoiceResult, error) {
	ctx, span := s.tracer.Start(ctx, "invoices.Service.PreviewInvoice")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermInvoicesCreate)
	if err != nil {
		return nil, err
	}

	pr, err := s.price(ctx, p, lines)
	if err != nil {
		return nil, err
	}

	return pr.result, nil
}

func (s *Service) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "invoices.Service.CreateInvoice")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermInvoicesCreate)
	if err != nil {
		return nil, err
	}

	if req.AmountPaidNow < 0 {
		return nil, errorx.ErrNegativeValue.WithData(map[string]interface{}{"field": "amount_paid_now"})
	}

	var created *types.Invoice
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		customer, err := s.storage.GetCustomerByID(ctx, req.CustomerID)
		if err != nil {
			return storage.DomainError(err)
		}
		if err := authorization.VerifyTenantOwnership(p, customer.TenantID); err != nil {
			return err
		}

		pr, err := s.price(ctx, p, req.Lines)
		if err != nil {
			return err
		}

		total := pr.result.Total
		paid := pricing.Round2(req.AmountPaidNow)
		if paid > total+pricing.Epsilon {
			return errorx.ErrOverpayment.WithData(map[string]interface{}{"remaining": total})
		}
		// the tolerance only absorbs an extra cent, the invoice is never paid past its total
		paid = min(paid, total)
		// cash customers cannot carry a balance, not even a cent
		if customer.Type == types.CustomerCash && pricing.Sub(total, paid) != 0 {
			return errorx.ErrCashMustPayInFull.WithData(map[string]interface{}{"total": total})
		}

		remaining := pricing.Sub(total, paid)

		n, err := s.storage.NextCounter(ctx, p.TenantID, counterPrefix)
		if err != nil {
			return storage.DomainError(err)
		}

		now := time.Now().UTC()
		inv := &types.Invoice{
			TenantID:         p.TenantID,
			Number:           storage.FormatCounter(counterPrefix, n),
			CustomerID:       customer.ID,
			Status:           PaymentStatus(remaining),
			WorkStatus:       types.WorkPending,
			TotalPrice:       total,
			AmountPaidNow:    paid,
			AmountPaid:       paid,
			RemainingBalance: remaining,
			Notes:            req.Notes,
			CreatedBy:        p.UserID(),
			IssuedAt:         now,
			Lines:            buildLines(req.Lines, pr),
		}
		if inv.Status == types.InvoicePaid {
			inv.PaidAt = &now
		}

		created, err = s.storage.CreateInvoice(ctx, inv)
		if err != nil {
			return storage.DomainError(err)
		}

		// cash customers settle on the spot and never carry a balance
		if customer.Type != types.CustomerCash && remaining > 0 {
			if _, err := s.storage.AdjustCustomerBalance(ctx, customer.ID, remaining); err != nil {
				return storage.DomainError(err)
			}
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "invoice.create",
			EntityType: "invoice",
			EntityID:   created.ID,
			After:      created,
		})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) GetInvoice(ctx context.Context, id string) (*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "invoices.Service.GetInvoice")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermInvoicesView)
	if err != nil {
		return nil, err
	}

	inv, err := s.storage.GetInvoiceByID(ctx, id)
	if err != nil {
		return nil, storage.DomainError(err)
	}
	if err := authorization.VerifyTenantOwnership(p, inv.TenantID); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) ListInvoices(ctx context.Context, filter types.InvoiceFilter) ([]*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "invoices.Service.ListInvoices")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermInvoicesView)
	if err != nil {
		return nil, err
	}

	invoices, err := s.storage.ListInvoices(ctx, p.TenantID, filter)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	return invoices, nil
}

// UpdateLineStatus moves one line on the factory floor and recomputes the
// invoice work status from all of its lines in the same transaction.
func (s *Service) UpdateLineStatus(ctx context.Context, invoiceID, lineID string, status types.WorkStatus) (*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "invoices.Service.UpdateLineStatus")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermFactoryUpdate)
	if err != nil {
		return nil, err
	}

	if !status.Valid() || status == types.WorkCancelled {
		return nil, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "status", "value": string(status)})
	}

	var updated *types.Invoice
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		inv, err := s.storage.GetInvoiceForUpdate(ctx, invoiceID)
		if err != nil {
			return storage.DomainError(err)
		}
		if err := authorization.VerifyTenantOwnership(p, inv.TenantID); err != nil {
			return err
		}
		if inv.Status == types.InvoiceCancelled {
			return errorx.ErrInvoiceCancelled
		}

		var line *types.InvoiceLine
		for _, l := range inv.Lines {
			if l.ID == lineID {
				line = l
				break
			}
		}
		if line == nil {
			return errorx.ErrNotFound
		}

		before := *line
		if err := s.storage.UpdateInvoiceLineStatus(ctx, line.ID, status); err != nil {
			return storage.DomainError(err)
		}
		line.Status = status

		inv.WorkStatus = DeriveWorkStatus(LineStatuses(inv.Lines))
		if err := s.storage.UpdateInvoiceState(ctx, inv); err != nil {
			return storage.DomainError(err)
		}
		updated = inv

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "invoice_line.status_update",
			EntityType: "invoice_line",
			EntityID:   line.ID,
			Before:     &before,
			After:      line,
			Metadata:   map[string]string{"invoice_id": inv.ID, "work_status": string(inv.WorkStatus)},
		})
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CancelInvoice voids an invoice that has no recorded payments and takes its
// outstanding amount back off the customer balance.
func (s *Service) CancelInvoice(ctx context.Context, id string) (*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "invoices.Service.CancelInvoice")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermInvoicesCancel)
	if err != nil {
		return nil, err
	}

	var cancelled *types.Invoice
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		inv, err := s.storage.GetInvoiceForUpdate(ctx, id)
		if err != nil {
			return storage.DomainError(err)
		}
		if err := authorization.VerifyTenantOwnership(p, inv.TenantID); err != nil {
			return err
		}
		if inv.Status == types.InvoiceCancelled {
			return errorx.ErrInvoiceCancelled
		}

		payments, err := s.storage.CountPaymentsByInvoice(ctx, inv.ID)
		if err != nil {
			return storage.DomainError(err)
		}
		if payments > 0 {
			return errorx.ErrInvoiceHasPayments
		}

		customer, err := s.storage.GetCustomerByID(ctx, inv.CustomerID)
		if err != nil {
			return storage.DomainError(err)
		}
		if customer.Type != types.CustomerCash && inv.RemainingBalance > 0 {
			if _, err := s.storage.AdjustCustomerBalance(ctx, customer.ID, -inv.RemainingBalance); err != nil {
				return storage.DomainError(err)
			}
		}

		before := *inv
		now := time.Now().UTC()
		inv.Status = types.InvoiceCancelled
		inv.WorkStatus = types.WorkCancelled
		inv.CancelledAt = &now

		if err := s.storage.SetInvoiceLinesStatus(ctx, inv.ID, types.WorkCancelled); err != nil {
			return storage.DomainError(err)
		}
		for _, l := range inv.Lines {
			l.Status = types.WorkCancelled
		}
		if err := s.storage.UpdateInvoiceState(ctx, inv); err != nil {
			return storage.DomainError(err)
		}
		cancelled = inv

		after := *inv
		before.Lines, after.Lines = nil, nil
		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "invoice.cancel",
			EntityType: "invoice",
			EntityID:   inv.ID,
			Before:     &before,
			After:      &after,
			Severity:   types.SeverityWarning,
		})
	})
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}

// price loads the glass snapshots and the tenant rate table and runs the
// calculation. It never writes.
func (s *Service) price(ctx context.Context, p *authorization.Principal, lines []LineRequest) (*priced, error) {
	if len(lines) == 0 {
		return nil, errorx.ErrEmptyInvoice
	}

	glass := make([]*types.GlassType, len(lines))
	cache := make(map[string]*types.GlassType)
	inputs := make([]pricing.LineInput, len(lines))

	for i, l := range lines {
		g, ok := cache[l.GlassTypeID]
		if !ok {
			var err error
			g, err = s.storage.GetGlassTypeByID(ctx, l.GlassTypeID)
			if err != nil {
				return nil, storage.DomainError(err)
			}
			if err := authorization.VerifyTenantOwnership(p, g.TenantID); err != nil {
				return nil, err
			}
			if !g.Active {
				return nil, errorx.ErrGlassTypeInactive
			}
			cache[l.GlassTypeID] = g
		}

		glass[i] = g
		inputs[i] = pricing.LineInput{
			GlassType:  g,
			Width:      l.Width,
			Height:     l.Height,
			Unit:       units.Unit(l.Unit),
			Quantity:   l.Quantity,
			Operations: l.Operations,
		}
	}

	table, err := s.rates.RateTable(ctx, p.TenantID)
	if err != nil {
		return nil, err
	}

	result, err := pricing.CalculateInvoice(inputs, table)
	if err != nil {
		return nil, err
	}

	for _, lr := range result.Lines {
		for _, t := range lr.Fallbacks {
			s.logger.Warnf("tenant %s has no %s rate configured, default rate used", p.TenantID, t)
			if err := s.monitor.IncDomainEvent(map[string]string{"event": "rate_fallback", "detail": string(t)}); err != nil {
				s.logger.Debugf("failed to count rate fallback: %v", err)
			}
		}
	}

	return &priced{glass: glass, result: result}, nil
}

func buildLines(req []LineRequest, pr *priced) []*types.InvoiceLine {
	lines := make([]*types.InvoiceLine, 0, len(req))
	for i, l := range req {
		g := pr.glass[i]
		lr := pr.result.Lines[i]

		lines = append(lines, &types.InvoiceLine{
			Position:       i + 1,
			GlassTypeID:    g.ID,
			GlassName:      g.Name,
			GlassThickness: g.Thickness,
			GlassColor:     g.Color,
			UnitPrice:      g.UnitPrice,
			PricingMethod:  g.PricingMethod,
			Width:          l.Width,
			Height:         l.Height,
			Unit:           l.Unit,
			Quantity:       lr.Quantity,
			AreaM2:         lr.AreaM2,
			LengthM:        lr.LengthM,
			GlassCost:      lr.GlassCost,
			OperationsCost: lr.OperationsCost,
			Total:          lr.Total,
			Operations:     lr.Operations,
			Status:         types.WorkPending,
			Notes:          l.Notes,
		})
	}
	return lines
}

func NewService(
	storage StorageInterface,
	rates RatesInterface,
	authz AuthzInterface,
	auditor AuditorInterface,
	db TxInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		rates:   rates,
		authz:   authz,
		auditor: auditor,
		db:      db,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
