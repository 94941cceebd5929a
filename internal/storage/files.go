// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/glassworks-service/internal/types"
)

// CreateStoredFile persists the blob under the id chosen when the upload
// URL was signed.
func (s *Storage) CreateStoredFile(ctx context.Context, f *types.StoredFile) (*types.StoredFile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateStoredFile")
	defer span.End()

	created := *f
	err := s.db.Statement(ctx).
		Insert("stored_files").
		Columns("id", "tenant_id", "purpose", "content_type", "size", "data", "created_by").
		Values(f.ID, f.TenantID, f.Purpose, f.ContentType, f.Size, f.Data, f.CreatedBy).
		Suffix("RETURNING created_at").
		QueryRowContext(ctx).
		Scan(&created.CreatedAt)
	if err != nil {
		return nil, mapError(err, "insert stored file")
	}

	return &created, nil
}

// GetStoredFileByID loads metadata and, when withData is set, the content.
func (s *Storage) GetStoredFileByID(ctx context.Context, id string, withData bool) (*types.StoredFile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetStoredFileByID")
	defer span.End()

	columns := []string{"id", "tenant_id", "purpose", "content_type", "size", "created_by", "created_at"}
	if withData {
		columns = append(columns, "data")
	}

	var f types.StoredFile
	dest := []interface{}{&f.ID, &f.TenantID, &f.Purpose, &f.ContentType, &f.Size, &f.CreatedBy, &f.CreatedAt}
	if withData {
		dest = append(dest, &f.Data)
	}

	err := s.db.Statement(ctx).
		Select(columns...).
		From("stored_files").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(dest...)
	if err != nil {
		return nil, mapError(err, "get stored file")
	}

	return &f, nil
}

func (s *Storage) DeleteStoredFile(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteStoredFile")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("stored_files").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return expectAffected(res, err, "delete stored file")
}
