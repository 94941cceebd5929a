// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package jobs

import (
	"context"
	"time"

	"github.com/canonical/glassworks-service/internal/locking"
)

// SweeperInterface is the print job maintenance surface the scheduler drives.
type SweeperInterface interface {
	MonitorStuck(ctx context.Context, threshold time.Duration) (int, error)
	CleanupOld(ctx context.Context, retention time.Duration) (int, error)
}

type LockerInterface interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (locking.UnlockFunc, bool, error)
}
