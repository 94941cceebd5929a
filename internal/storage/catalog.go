// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/glassworks-service/internal/types"
)

var glassTypeColumns = []string{
	"id", "tenant_id", "name", "thickness", "COALESCE(color, '')", "unit_price", "pricing_method", "active", "created_at", "updated_at",
}

func scanGlassType(row sq.RowScanner) (*types.GlassType, error) {
	var g types.GlassType

	err := row.Scan(&g.ID, &g.TenantID, &g.Name, &g.Thickness, &g.Color, &g.UnitPrice, &g.PricingMethod, &g.Active, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &g, nil
}

func (s *Storage) CreateGlassType(ctx context.Context, g *types.GlassType) (*types.GlassType, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateGlassType")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("glass_types").
		Columns("id", "tenant_id", "name", "thickness", "color", "unit_price", "pricing_method", "active").
		Values(id, g.TenantID, g.Name, g.Thickness, nullable(g.Color), g.UnitPrice, g.PricingMethod, g.Active).
		Suffix("RETURNING " + joinColumns(glassTypeColumns)).
		QueryRowContext(ctx)

	created, err := scanGlassType(row)
	if err != nil {
		return nil, mapError(err, "insert glass type")
	}

	return created, nil
}

func (s *Storage) GetGlassTypeByID(ctx context.Context, id string) (*types.GlassType, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetGlassTypeByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(glassTypeColumns...).
		From("glass_types").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	g, err := scanGlassType(row)
	if err != nil {
		return nil, mapError(err, "get glass type")
	}

	return g, nil
}

func (s *Storage) ListGlassTypes(ctx context.Context, tenantID string, activeOnly bool) ([]*types.GlassType, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListGlassTypes")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(glassTypeColumns...).
		From("glass_types").
		Where(sq.Eq{"tenant_id": tenantID})

	if activeOnly {
		query = query.Where(sq.Eq{"active": true})
	}

	rows, err := query.OrderBy("name", "thickness").QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list glass types")
	}
	defer rows.Close()

	result := make([]*types.GlassType, 0)
	for rows.Next() {
		g, err := scanGlassType(rows)
		if err != nil {
			return nil, mapError(err, "scan glass type")
		}
		result = append(result, g)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate glass type rows")
	}

	return result, nil
}

func (s *Storage) UpdateGlassType(ctx context.Context, g *types.GlassType) (*types.GlassType, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateGlassType")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("glass_types").
		Set("name", g.Name).
		Set("thickness", g.Thickness).
		Set("color", nullable(g.Color)).
		Set("unit_price", g.UnitPrice).
		Set("pricing_method", g.PricingMethod).
		Set("active", g.Active).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": g.ID}).
		Suffix("RETURNING " + joinColumns(glassTypeColumns)).
		QueryRowContext(ctx)

	updated, err := scanGlassType(row)
	if err != nil {
		return nil, mapError(err, "update glass type")
	}

	return updated, nil
}

func (s *Storage) DeleteGlassType(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteGlassType")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("glass_types").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return expectAffected(res, err, "delete glass type")
}

func (s *Storage) CountLinesByGlassType(ctx context.Context, glassTypeID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountLinesByGlassType")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("invoice_lines").
		Where(sq.Eq{"glass_type_id": glassTypeID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, mapError(err, "count glass type lines")
	}

	return count, nil
}

var thicknessRateColumns = []string{
	"id", "tenant_id", "min_thickness", "max_thickness", "price_per_meter", "active", "created_at", "updated_at",
}

func rateTable(kind types.RateKind) (string, error) {
	switch kind {
	case types.RateLaser:
		return "laser_rates", nil
	case types.RateBeveling:
		return "beveling_rates", nil
	}
	return "", fmt.Errorf("unknown rate kind %q", kind)
}

func scanThicknessRate(row sq.RowScanner, kind types.RateKind) (*types.ThicknessRate, error) {
	r := types.ThicknessRate{Kind: kind}

	err := row.Scan(&r.ID, &r.TenantID, &r.MinThickness, &r.MaxThickness, &r.PricePerMeter, &r.Active, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

func (s *Storage) CreateThicknessRate(ctx context.Context, r *types.ThicknessRate) (*types.ThicknessRate, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateThicknessRate")
	defer span.End()

	table, err := rateTable(r.Kind)
	if err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert(table).
		Columns("id", "tenant_id", "min_thickness", "max_thickness", "price_per_meter", "active").
		Values(id, r.TenantID, r.MinThickness, r.MaxThickness, r.PricePerMeter, r.Active).
		Suffix("RETURNING " + joinColumns(thicknessRateColumns)).
		QueryRowContext(ctx)

	created, err := scanThicknessRate(row, r.Kind)
	if err != nil {
		return nil, mapError(err, "insert rate")
	}

	return created, nil
}

func (s *Storage) GetThicknessRateByID(ctx context.Context, kind types.RateKind, id string) (*types.ThicknessRate, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetThicknessRateByID")
	defer span.End()

	table, err := rateTable(kind)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Select(thicknessRateColumns...).
		From(table).
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	r, err := scanThicknessRate(row, kind)
	if err != nil {
		return nil, mapError(err, "get rate")
	}

	return r, nil
}

// LockThicknessRates holds a transaction scoped advisory lock on one rate
// table of a tenant. Row locks cannot cover bands a concurrent writer is
// about to insert, so every overlap check takes this lock first.
func (s *Storage) LockThicknessRates(ctx context.Context, tenantID string, kind types.RateKind) error {
	ctx, span := s.tracer.Start(ctx, "storage.LockThicknessRates")
	defer span.End()

	table, err := rateTable(kind)
	if err != nil {
		return err
	}

	_, err = s.db.Statement(ctx).
		Select().
		Column(sq.Expr("pg_advisory_xact_lock(hashtextextended(?, 0))", table+":"+tenantID)).
		ExecContext(ctx)
	if err != nil {
		return mapError(err, "lock rates")
	}

	return nil
}

// ListThicknessRates returns every band of the table, inactive ones included,
// ordered by the lower bound. forUpdate also row locks the existing bands.
func (s *Storage) ListThicknessRates(ctx context.Context, tenantID string, kind types.RateKind, forUpdate bool) ([]*types.ThicknessRate, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListThicknessRates")
	defer span.End()

	table, err := rateTable(kind)
	if err != nil {
		return nil, err
	}

	query := s.db.Statement(ctx).
		Select(thicknessRateColumns...).
		From(table).
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("min_thickness", "created_at")

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list rates")
	}
	defer rows.Close()

	result := make([]*types.ThicknessRate, 0)
	for rows.Next() {
		r, err := scanThicknessRate(rows, kind)
		if err != nil {
			return nil, mapError(err, "scan rate")
		}
		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate rate rows")
	}

	return result, nil
}

func (s *Storage) UpdateThicknessRate(ctx context.Context, r *types.ThicknessRate) (*types.ThicknessRate, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateThicknessRate")
	defer span.End()

	table, err := rateTable(r.Kind)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Update(table).
		Set("min_thickness", r.MinThickness).
		Set("max_thickness", r.MaxThickness).
		Set("price_per_meter", r.PricePerMeter).
		Set("active", r.Active).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": r.ID}).
		Suffix("RETURNING " + joinColumns(thicknessRateColumns)).
		QueryRowContext(ctx)

	updated, err := scanThicknessRate(row, r.Kind)
	if err != nil {
		return nil, mapError(err, "update rate")
	}

	return updated, nil
}

func (s *Storage) DeleteThicknessRate(ctx context.Context, kind types.RateKind, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteThicknessRate")
	defer span.End()

	table, err := rateTable(kind)
	if err != nil {
		return err
	}

	res, err := s.db.Statement(ctx).
		Delete(table).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return expectAffected(res, err, "delete rate")
}

var operationPriceColumns = []string{
	"id", "tenant_id", "category", "subtype", "price", "unit", "active", "created_at", "updated_at",
}

func scanOperationPrice(row sq.RowScanner) (*types.OperationPrice, error) {
	var o types.OperationPrice

	err := row.Scan(&o.ID, &o.TenantID, &o.Category, &o.Subtype, &o.Price, &o.Unit, &o.Active, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &o, nil
}

func (s *Storage) CreateOperationPrice(ctx context.Context, o *types.OperationPrice) (*types.OperationPrice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOperationPrice")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("operation_prices").
		Columns("id", "tenant_id", "category", "subtype", "price", "unit", "active").
		Values(id, o.TenantID, o.Category, o.Subtype, o.Price, o.Unit, o.Active).
		Suffix("RETURNING " + joinColumns(operationPriceColumns)).
		QueryRowContext(ctx)

	created, err := scanOperationPrice(row)
	if err != nil {
		return nil, mapError(err, "insert operation price")
	}

	return created, nil
}

func (s *Storage) GetOperationPriceByID(ctx context.Context, id string) (*types.OperationPrice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOperationPriceByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(operationPriceColumns...).
		From("operation_prices").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	o, err := scanOperationPrice(row)
	if err != nil {
		return nil, mapError(err, "get operation price")
	}

	return o, nil
}

func (s *Storage) ListOperationPrices(ctx context.Context, tenantID string) ([]*types.OperationPrice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOperationPrices")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(operationPriceColumns...).
		From("operation_prices").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("category", "subtype").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list operation prices")
	}
	defer rows.Close()

	result := make([]*types.OperationPrice, 0)
	for rows.Next() {
		o, err := scanOperationPrice(rows)
		if err != nil {
			return nil, mapError(err, "scan operation price")
		}
		result = append(result, o)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate operation price rows")
	}

	return result, nil
}

func (s *Storage) UpdateOperationPrice(ctx context.Context, o *types.OperationPrice) (*types.OperationPrice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateOperationPrice")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("operation_prices").
		Set("category", o.Category).
		Set("subtype", o.Subtype).
		Set("price", o.Price).
		Set("unit", o.Unit).
		Set("active", o.Active).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": o.ID}).
		Suffix("RETURNING " + joinColumns(operationPriceColumns)).
		QueryRowContext(ctx)

	updated, err := scanOperationPrice(row)
	if err != nil {
		return nil, mapError(err, "update operation price")
	}

	return updated, nil
}

func (s *Storage) DeleteOperationPrice(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteOperationPrice")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("operation_prices").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return expectAffected(res, err, "delete operation price")
}
