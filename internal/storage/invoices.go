// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/glassworks-service/internal/db"
	"github.com/canonical/glassworks-service/internal/types"
)

var invoiceColumns = []string{
	"i.id", "i.tenant_id", "i.number", "i.customer_id", "c.name", "i.status", "i.work_status", "i.total_price",
	"i.amount_paid_now", "i.amount_paid", "i.remaining_balance", "COALESCE(i.notes, '')", "i.created_by",
	"i.issued_at", "i.paid_at", "i.cancelled_at", "i.created_at", "i.updated_at",
}

var invoiceLineColumns = []string{
	"id", "invoice_id", "tenant_id", "position", "glass_type_id", "glass_name", "glass_thickness",
	"COALESCE(glass_color, '')", "unit_price", "pricing_method", "width", "height", "unit", "quantity",
	"area_m2", "length_m", "glass_cost", "operations_cost", "total", "operations", "status",
	"COALESCE(notes, '')", "created_at", "updated_at",
}

func scanInvoice(row sq.RowScanner) (*types.Invoice, error) {
	var i types.Invoice

	err := row.Scan(
		&i.ID, &i.TenantID, &i.Number, &i.CustomerID, &i.CustomerName, &i.Status, &i.WorkStatus, &i.TotalPrice,
		&i.AmountPaidNow, &i.AmountPaid, &i.RemainingBalance, &i.Notes, &i.CreatedBy,
		&i.IssuedAt, &i.PaidAt, &i.CancelledAt, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &i, nil
}

func scanInvoiceLine(row sq.RowScanner) (*types.InvoiceLine, error) {
	var (
		l          types.InvoiceLine
		operations []byte
	)

	err := row.Scan(
		&l.ID, &l.InvoiceID, &l.TenantID, &l.Position, &l.GlassTypeID, &l.GlassName, &l.GlassThickness,
		&l.GlassColor, &l.UnitPrice, &l.PricingMethod, &l.Width, &l.Height, &l.Unit, &l.Quantity,
		&l.AreaM2, &l.LengthM, &l.GlassCost, &l.OperationsCost, &l.Total, &operations, &l.Status,
		&l.Notes, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.Operations = []types.LineOperation{}
	if err := fromJSON(operations, &l.Operations); err != nil {
		return nil, err
	}

	return &l, nil
}

func (s *Storage) invoiceQuery(ctx context.Context) sq.SelectBuilder {
	return s.db.Statement(ctx).
		Select(invoiceColumns...).
		From("invoices i").
		Join("customers c ON c.id = i.customer_id")
}

// CreateInvoice inserts the invoice header and all of its lines.
func (s *Storage) CreateInvoice(ctx context.Context, inv *types.Invoice) (*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvoice")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	_, err = s.db.Statement(ctx).
		Insert("invoices").
		Columns(
			"id", "tenant_id", "number", "customer_id", "status", "work_status", "total_price",
			"amount_paid_now", "amount_paid", "remaining_balance", "notes", "created_by", "issued_at", "paid_at",
		).
		Values(
			id, inv.TenantID, inv.Number, inv.CustomerID, inv.Status, inv.WorkStatus, inv.TotalPrice,
			inv.AmountPaidNow, inv.AmountPaid, inv.RemainingBalance, nullable(inv.Notes), inv.CreatedBy, inv.IssuedAt, inv.PaidAt,
		).
		ExecContext(ctx)
	if err != nil {
		return nil, mapError(err, "insert invoice")
	}

	if len(inv.Lines) > 0 {
		insert := s.db.Statement(ctx).
			Insert("invoice_lines").
			Columns(
				"id", "invoice_id", "tenant_id", "position", "glass_type_id", "glass_name", "glass_thickness",
				"glass_color", "unit_price", "pricing_method", "width", "height", "unit", "quantity",
				"area_m2", "length_m", "glass_cost", "operations_cost", "total", "operations", "status", "notes",
			)

		for pos, l := range inv.Lines {
			lineID, err := newID()
			if err != nil {
				return nil, err
			}

			operations, err := jsonValue(nonNilOperations(l.Operations))
			if err != nil {
				return nil, err
			}

			insert = insert.Values(
				lineID, id, inv.TenantID, pos+1, l.GlassTypeID, l.GlassName, l.GlassThickness,
				nullable(l.GlassColor), l.UnitPrice, l.PricingMethod, l.Width, l.Height, l.Unit, l.Quantity,
				l.AreaM2, l.LengthM, l.GlassCost, l.OperationsCost, l.Total, operations, l.Status, nullable(l.Notes),
			)
		}

		if _, err := insert.ExecContext(ctx); err != nil {
			return nil, mapError(err, "insert invoice lines")
		}
	}

	return s.GetInvoiceByID(ctx, id)
}

// GetInvoiceByID returns the invoice together with its lines.
func (s *Storage) GetInvoiceByID(ctx context.Context, id string) (*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvoiceByID")
	defer span.End()

	return s.getInvoice(ctx, id, false)
}

// GetInvoiceForUpdate is GetInvoiceByID holding a row lock on the header
// until the surrounding transaction ends.
func (s *Storage) GetInvoiceForUpdate(ctx context.Context, id string) (*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvoiceForUpdate")
	defer span.End()

	return s.getInvoice(ctx, id, true)
}

func (s *Storage) getInvoice(ctx context.Context, id string, forUpdate bool) (*types.Invoice, error) {
	query := s.invoiceQuery(ctx).Where(sq.Eq{"i.id": id})
	if forUpdate {
		query = query.Suffix("FOR UPDATE OF i")
	}

	inv, err := scanInvoice(query.QueryRowContext(ctx))
	if err != nil {
		return nil, mapError(err, "get invoice")
	}

	lines, err := s.ListInvoiceLines(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Lines = lines

	return inv, nil
}

func (s *Storage) ListInvoiceLines(ctx context.Context, invoiceID string) ([]*types.InvoiceLine, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvoiceLines")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(invoiceLineColumns...).
		From("invoice_lines").
		Where(sq.Eq{"invoice_id": invoiceID}).
		OrderBy("position").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list invoice lines")
	}
	defer rows.Close()

	lines := make([]*types.InvoiceLine, 0)
	for rows.Next() {
		l, err := scanInvoiceLine(rows)
		if err != nil {
			return nil, mapError(err, "scan invoice line")
		}
		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate invoice line rows")
	}

	return lines, nil
}

// ListInvoices returns invoice headers without lines.
func (s *Storage) ListInvoices(ctx context.Context, tenantID string, filter types.InvoiceFilter) ([]*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvoices")
	defer span.End()

	limit, offset := db.Paginate(filter.Page, filter.Size)

	query := s.invoiceQuery(ctx).Where(sq.Eq{"i.tenant_id": tenantID})

	if filter.CustomerID != "" {
		query = query.Where(sq.Eq{"i.customer_id": filter.CustomerID})
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{"i.status": filter.Status})
	}
	if filter.WorkStatus != "" {
		query = query.Where(sq.Eq{"i.work_status": filter.WorkStatus})
	}
	if filter.From != nil {
		query = query.Where(sq.GtOrEq{"i.issued_at": *filter.From})
	}
	if filter.To != nil {
		query = query.Where(sq.Lt{"i.issued_at": *filter.To})
	}

	rows, err := query.
		OrderBy("i.issued_at DESC").
		Limit(limit).
		Offset(offset).
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list invoices")
	}
	defer rows.Close()

	invoices := make([]*types.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, mapError(err, "scan invoice")
		}
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate invoice rows")
	}

	return invoices, nil
}

func (s *Storage) ListInvoiceIDs(ctx context.Context, tenantID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvoiceIDs")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id").
		From("invoices").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("issued_at").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list invoice ids")
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, mapError(err, "scan invoice id")
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate invoice rows")
	}

	return ids, nil
}

// UpdateInvoiceState writes the payment and work state columns.
func (s *Storage) UpdateInvoiceState(ctx context.Context, inv *types.Invoice) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateInvoiceState")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invoices").
		Set("status", inv.Status).
		Set("work_status", inv.WorkStatus).
		Set("amount_paid", inv.AmountPaid).
		Set("remaining_balance", inv.RemainingBalance).
		Set("paid_at", inv.PaidAt).
		Set("cancelled_at", inv.CancelledAt).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": inv.ID}).
		ExecContext(ctx)

	return expectAffected(res, err, "update invoice")
}

func (s *Storage) GetInvoiceLineByID(ctx context.Context, id string) (*types.InvoiceLine, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvoiceLineByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(invoiceLineColumns...).
		From("invoice_lines").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	l, err := scanInvoiceLine(row)
	if err != nil {
		return nil, mapError(err, "get invoice line")
	}

	return l, nil
}

func (s *Storage) UpdateInvoiceLineStatus(ctx context.Context, id string, status types.WorkStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateInvoiceLineStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invoice_lines").
		Set("status", status).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return expectAffected(res, err, "update invoice line status")
}

// SetInvoiceLinesStatus moves every line of the invoice to the status.
func (s *Storage) SetInvoiceLinesStatus(ctx context.Context, invoiceID string, status types.WorkStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetInvoiceLinesStatus")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("invoice_lines").
		Set("status", status).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"invoice_id": invoiceID}).
		ExecContext(ctx)

	return mapError(err, "update invoice lines status")
}

func (s *Storage) CountPaymentsByInvoice(ctx context.Context, invoiceID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountPaymentsByInvoice")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("payments").
		Where(sq.Eq{"invoice_id": invoiceID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, mapError(err, "count invoice payments")
	}

	return count, nil
}

func nonNilOperations(v []types.LineOperation) []types.LineOperation {
	if v == nil {
		return []types.LineOperation{}
	}
	return v
}
