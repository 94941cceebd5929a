// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locking

import (
	"context"
	"time"
)

// UnlockFunc releases a lock taken by TryLock.
type UnlockFunc func(ctx context.Context) error

type LockerInterface interface {
	// TryLock takes key for ttl without waiting. ok is false when another
	// holder owns the key.
	TryLock(ctx context.Context, key string, ttl time.Duration) (unlock UnlockFunc, ok bool, err error)
}
