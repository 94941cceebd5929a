// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/glassworks-service/internal/db"
	"github.com/canonical/glassworks-service/internal/types"
)

var printJobColumns = []string{
	"id", "tenant_id", "readable_id", "invoice_id", "COALESCE(line_id, '')", "type", "status", "attempts",
	"COALESCE(file_id, '')", "COALESCE(error, '')", "created_by", "created_at", "updated_at", "completed_at",
}

func scanPrintJob(row sq.RowScanner) (*types.PrintJob, error) {
	var j types.PrintJob

	err := row.Scan(
		&j.ID, &j.TenantID, &j.ReadableID, &j.InvoiceID, &j.LineID, &j.Type, &j.Status, &j.Attempts,
		&j.FileID, &j.Error, &j.CreatedBy, &j.CreatedAt, &j.UpdatedAt, &j.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	return &j, nil
}

func (s *Storage) scanPrintJobs(rows *sql.Rows) ([]*types.PrintJob, error) {
	defer rows.Close()

	jobs := make([]*types.PrintJob, 0)
	for rows.Next() {
		j, err := scanPrintJob(rows)
		if err != nil {
			return nil, mapError(err, "scan print job")
		}
		jobs = append(jobs, j)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate print job rows")
	}

	return jobs, nil
}

func (s *Storage) CreatePrintJob(ctx context.Context, j *types.PrintJob) (*types.PrintJob, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePrintJob")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("print_jobs").
		Columns("id", "tenant_id", "readable_id", "invoice_id", "line_id", "type", "status", "attempts", "created_by").
		Values(id, j.TenantID, j.ReadableID, j.InvoiceID, nullable(j.LineID), j.Type, j.Status, j.Attempts, j.CreatedBy).
		Suffix("RETURNING " + joinColumns(printJobColumns)).
		QueryRowContext(ctx)

	created, err := scanPrintJob(row)
	if err != nil {
		return nil, mapError(err, "insert print job")
	}

	return created, nil
}

func (s *Storage) GetPrintJobByID(ctx context.Context, id string) (*types.PrintJob, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPrintJobByID")
	defer span.End()

	return s.getPrintJob(ctx, id, false)
}

// GetPrintJobForUpdate locks the job row until the transaction ends so
// status transitions are serialized.
func (s *Storage) GetPrintJobForUpdate(ctx context.Context, id string) (*types.PrintJob, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPrintJobForUpdate")
	defer span.End()

	return s.getPrintJob(ctx, id, true)
}

func (s *Storage) getPrintJob(ctx context.Context, id string, forUpdate bool) (*types.PrintJob, error) {
	query := s.db.Statement(ctx).
		Select(printJobColumns...).
		From("print_jobs").
		Where(sq.Eq{"id": id})

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	j, err := scanPrintJob(query.QueryRowContext(ctx))
	if err != nil {
		return nil, mapError(err, "get print job")
	}

	return j, nil
}

func (s *Storage) ListPrintJobs(ctx context.Context, tenantID string, filter types.PrintJobFilter) ([]*types.PrintJob, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPrintJobs")
	defer span.End()

	limit, offset := db.Paginate(filter.Page, filter.Size)

	query := s.db.Statement(ctx).
		Select(printJobColumns...).
		From("print_jobs").
		Where(sq.Eq{"tenant_id": tenantID})

	if filter.InvoiceID != "" {
		query = query.Where(sq.Eq{"invoice_id": filter.InvoiceID})
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": filter.Status})
	}

	rows, err := query.
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list print jobs")
	}

	return s.scanPrintJobs(rows)
}

// ListPrintJobsUpdatedBefore returns jobs in any of the statuses whose last
// update is older than before, across all tenants.
func (s *Storage) ListPrintJobsUpdatedBefore(ctx context.Context, statuses []types.PrintJobStatus, before time.Time) ([]*types.PrintJob, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPrintJobsUpdatedBefore")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(printJobColumns...).
		From("print_jobs").
		Where(sq.Eq{"status": statuses}).
		Where(sq.Lt{"updated_at": before}).
		OrderBy("updated_at").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "list print jobs")
	}

	return s.scanPrintJobs(rows)
}

func (s *Storage) UpdatePrintJob(ctx context.Context, j *types.PrintJob) (*types.PrintJob, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdatePrintJob")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("print_jobs").
		Set("status", j.Status).
		Set("attempts", j.Attempts).
		Set("file_id", nullable(j.FileID)).
		Set("error", nullable(j.Error)).
		Set("completed_at", j.CompletedAt).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": j.ID}).
		Suffix("RETURNING " + joinColumns(printJobColumns)).
		QueryRowContext(ctx)

	updated, err := scanPrintJob(row)
	if err != nil {
		return nil, mapError(err, "update print job")
	}

	return updated, nil
}

func (s *Storage) DeletePrintJob(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeletePrintJob")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("print_jobs").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return expectAffected(res, err, "delete print job")
}
