// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
)

// NextCounter increments and returns the per tenant sequence for prefix.
// The row lock taken by the upsert serializes concurrent callers until
// their transaction ends, so numbers are never handed out twice.
func (s *Storage) NextCounter(ctx context.Context, tenantID, prefix string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.NextCounter")
	defer span.End()

	var value int64
	err := s.db.Statement(ctx).
		Insert("id_counters").
		Columns("tenant_id", "prefix", "value").
		Values(tenantID, prefix, 1).
		Suffix("ON CONFLICT (tenant_id, prefix) DO UPDATE SET value = id_counters.value + 1 RETURNING value").
		QueryRowContext(ctx).
		Scan(&value)
	if err != nil {
		return 0, mapError(err, "increment counter")
	}

	return value, nil
}

// FormatCounter renders a counter value as a readable id such as INV-000042.
func FormatCounter(prefix string, value int64) string {
	return fmt.Sprintf("%s-%06d", prefix, value)
}
