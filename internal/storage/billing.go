// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/glassworks-service/internal/types"
)

var billingPaymentColumns = []string{
	"id", "tenant_id", "amount", "method", "billing_cycle", "period_start", "period_end",
	"COALESCE(notes, '')", "recorded_by", "created_at",
}

func scanBillingPayment(row sq.RowScanner) (*types.BillingPayment, error) {
	var p types.BillingPayment

	err := row.Scan(
		&p.ID, &p.TenantID, &p.Amount, &p.Method, &p.BillingCycle, &p.PeriodStart, &p.PeriodEnd,
		&p.Notes, &p.RecordedBy, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *Storage) CreateBillingPayment(ctx context.Context, p *types.BillingPayment) (*types.BillingPayment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateBillingPayment")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("billing_payments").
		Columns("id", "tenant_id", "amount", "method", "billing_cycle", "period_start", "period_end", "notes", "recorded_by").
		Values(id, p.TenantID, p.Amount, p.Method, p.BillingCycle, p.PeriodStart, p.PeriodEnd, nullable(p.Notes), p.RecordedBy).
		Suffix("RETURNING " + joinColumns(billingPaymentColumns)).
		QueryRowContext(ctx)

	created, err := scanBillingPayment(row)
	if err != nil {
		return nil, mapError(err, "insert billing payment")
	}

	return created, nil
}

func (s *Storage) ListBillingPayments(ctx context.Context, tenantID string) ([]*types.BillingPayment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListBillingPayments")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(billingPaymentColumns...).
		From("billing_payments").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list billing payments")
	}
	defer rows.Close()

	payments := make([]*types.BillingPayment, 0)
	for rows.Next() {
		p, err := scanBillingPayment(rows)
		if err != nil {
			return nil, mapError(err, "scan billing payment")
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate billing payment rows")
	}

	return payments, nil
}

// RevenueByMonthAndPlan sums billing payments in [from, to) per calendar
// month and current tenant plan.
func (s *Storage) RevenueByMonthAndPlan(ctx context.Context, from, to time.Time) ([]*types.RevenueRow, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RevenueByMonthAndPlan")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("to_char(date_trunc('month', bp.created_at), 'YYYY-MM') AS month", "t.plan", "SUM(bp.amount)").
		From("billing_payments bp").
		Join("tenants t ON t.id = bp.tenant_id").
		Where(sq.GtOrEq{"bp.created_at": from}).
		Where(sq.Lt{"bp.created_at": to}).
		GroupBy("month", "t.plan").
		OrderBy("month", "t.plan").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "aggregate revenue")
	}
	defer rows.Close()

	result := make([]*types.RevenueRow, 0)
	for rows.Next() {
		var r types.RevenueRow
		if err := rows.Scan(&r.Month, &r.Plan, &r.Total); err != nil {
			return nil, mapError(err, "scan revenue")
		}
		result = append(result, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate revenue rows")
	}

	return result, nil
}
