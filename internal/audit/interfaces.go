// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"

	"github.com/canonical/glassworks-service/internal/types"
)

type AuditorInterface interface {
	Record(ctx context.Context, e Entry) error
	RecordPlatform(ctx context.Context, e Entry) error
}

type StorageInterface interface {
	CreateAuditLog(ctx context.Context, l *types.AuditLog) error
	CreateSuperAdminAuditLog(ctx context.Context, l *types.AuditLog) error
}
