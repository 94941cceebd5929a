// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/canonical/glassworks-service/internal/errorx"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check constraint violation")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeCheckViolation      = "23514"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	return pgCode(err) == pgErrCodeUniqueViolation
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == pgErrCodeForeignKeyViolation
}

// IsCheckViolation checks if the error is a PostgreSQL check constraint violation.
func IsCheckViolation(err error) bool {
	return pgCode(err) == pgErrCodeCheckViolation
}

// ConstraintName returns the violated constraint, if any.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// mapError translates driver errors into the storage sentinels, keeping the
// driver error in the chain so the constraint name stays reachable.
func mapError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w: %w", op, ErrDuplicateKey, err)
	case IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w: %w", op, ErrForeignKeyViolation, err)
	case IsCheckViolation(err):
		return fmt.Errorf("%s: %w: %w", op, ErrCheckViolation, err)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// DomainError converts a storage error into the user facing taxonomy.
// Errors that already belong to the taxonomy pass through untouched.
func DomainError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := errorx.As(err); ok {
		return err
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return errorx.ErrNotFound.Wrap(err)
	case errors.Is(err, ErrDuplicateKey):
		return errorx.ErrConflict.Wrap(err)
	case errors.Is(err, ErrForeignKeyViolation), errors.Is(err, ErrCheckViolation):
		return errorx.ErrInvalidInput.Wrap(err)
	}
	return errorx.ErrInternal.Wrap(err)
}
