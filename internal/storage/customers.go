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

var customerColumns = []string{
	"id", "tenant_id", "name", "COALESCE(phone, '')", "COALESCE(address, '')", "customer_type", "balance",
	"COALESCE(notes, '')", "created_at", "updated_at",
}

func scanCustomer(row sq.RowScanner) (*types.Customer, error) {
	var c types.Customer

	err := row.Scan(&c.ID, &c.TenantID, &c.Name, &c.Phone, &c.Address, &c.Type, &c.Balance, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Storage) CreateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCustomer")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("customers").
		Columns("id", "tenant_id", "name", "phone", "address", "customer_type", "balance", "notes").
		Values(id, c.TenantID, c.Name, nullable(c.Phone), nullable(c.Address), c.Type, c.Balance, nullable(c.Notes)).
		Suffix("RETURNING " + joinColumns(customerColumns)).
		QueryRowContext(ctx)

	created, err := scanCustomer(row)
	if err != nil {
		return nil, mapError(err, "insert customer")
	}

	return created, nil
}

func (s *Storage) GetCustomerByID(ctx context.Context, id string) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCustomerByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(customerColumns...).
		From("customers").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	c, err := scanCustomer(row)
	if err != nil {
		return nil, mapError(err, "get customer")
	}

	return c, nil
}

// ListCustomers filters by a case insensitive match on name or phone.
func (s *Storage) ListCustomers(ctx context.Context, tenantID, search string, page, size int64) ([]*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCustomers")
	defer span.End()

	limit, offset := db.Paginate(page, size)

	query := s.db.Statement(ctx).
		Select(customerColumns...).
		From("customers").
		Where(sq.Eq{"tenant_id": tenantID})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(sq.Or{sq.ILike{"name": pattern}, sq.ILike{"phone": pattern}})
	}

	rows, err := query.
		OrderBy("name").
		Limit(limit).
		Offset(offset).
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list customers")
	}
	defer rows.Close()

	customers := make([]*types.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, mapError(err, "scan customer")
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate customer rows")
	}

	return customers, nil
}

// UpdateCustomer writes the profile fields, the balance only moves through
// AdjustCustomerBalance.
func (s *Storage) UpdateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCustomer")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("customers").
		Set("name", c.Name).
		Set("phone", nullable(c.Phone)).
		Set("address", nullable(c.Address)).
		Set("customer_type", c.Type).
		Set("notes", nullable(c.Notes)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": c.ID}).
		Suffix("RETURNING " + joinColumns(customerColumns)).
		QueryRowContext(ctx)

	updated, err := scanCustomer(row)
	if err != nil {
		return nil, mapError(err, "update customer")
	}

	return updated, nil
}

// AdjustCustomerBalance adds delta to the running balance atomically and
// returns the new balance.
func (s *Storage) AdjustCustomerBalance(ctx context.Context, id string, delta float64) (float64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AdjustCustomerBalance")
	defer span.End()

	var balance float64
	err := s.db.Statement(ctx).
		Update("customers").
		Set("balance", sq.Expr("balance + ?", delta)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING balance").
		QueryRowContext(ctx).
		Scan(&balance)
	if err != nil {
		return 0, mapError(err, "adjust customer balance")
	}

	return balance, nil
}

func (s *Storage) DeleteCustomer(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCustomer")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("customers").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return expectAffected(res, err, "delete customer")
}

func (s *Storage) CountInvoicesByCustomer(ctx context.Context, customerID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountInvoicesByCustomer")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("invoices").
		Where(sq.Eq{"customer_id": customerID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, mapError(err, "count customer invoices")
	}

	return count, nil
}
