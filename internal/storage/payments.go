// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/glassworks-service/internal/db"
	"github.com/canonical/glassworks-service/internal/types"
)

var paymentColumns = []string{
	"id", "tenant_id", "customer_id", "COALESCE(invoice_id, '')", "amount", "method", "COALESCE(notes, '')",
	"recorded_by", "paid_at", "created_at",
}

func scanPayment(row sq.RowScanner) (*types.Payment, error) {
	var p types.Payment

	err := row.Scan(&p.ID, &p.TenantID, &p.CustomerID, &p.InvoiceID, &p.Amount, &p.Method, &p.Notes, &p.RecordedBy, &p.PaidAt, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *Storage) CreatePayment(ctx context.Context, p *types.Payment) (*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePayment")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("payments").
		Columns("id", "tenant_id", "customer_id", "invoice_id", "amount", "method", "notes", "recorded_by", "paid_at").
		Values(id, p.TenantID, p.CustomerID, nullable(p.InvoiceID), p.Amount, p.Method, nullable(p.Notes), p.RecordedBy, p.PaidAt).
		Suffix("RETURNING " + joinColumns(paymentColumns)).
		QueryRowContext(ctx)

	created, err := scanPayment(row)
	if err != nil {
		return nil, mapError(err, "insert payment")
	}

	return created, nil
}

func (s *Storage) GetPaymentByID(ctx context.Context, id string) (*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPaymentByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	p, err := scanPayment(row)
	if err != nil {
		return nil, mapError(err, "get payment")
	}

	return p, nil
}

func (s *Storage) ListPayments(ctx context.Context, tenantID string, filter types.PaymentFilter) ([]*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPayments")
	defer span.End()

	limit, offset := db.Paginate(filter.Page, filter.Size)

	query := s.db.Statement(ctx).
		Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"tenant_id": tenantID})

	if filter.CustomerID != "" {
		query = query.Where(sq.Eq{"customer_id": filter.CustomerID})
	}
	if filter.InvoiceID != "" {
		query = query.Where(sq.Eq{"invoice_id": filter.InvoiceID})
	}

	rows, err := query.
		OrderBy("paid_at DESC").
		Limit(limit).
		Offset(offset).
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list payments")
	}
	defer rows.Close()

	payments := make([]*types.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, mapError(err, "scan payment")
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate payment rows")
	}

	return payments, nil
}

func (s *Storage) DeletePayment(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeletePayment")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("payments").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return expectAffected(res, err, "delete payment")
}
