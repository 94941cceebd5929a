// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locking

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
)

func newTestRedisLocker(t *testing.T) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := logging.NewNoopLogger()
	return NewRedisLocker(client, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), mr
}

func TestRedisLocker(t *testing.T) {
	l, mr := newTestRedisLocker(t)
	ctx := context.Background()

	unlock, ok, err := l.TryLock(ctx, "print-monitor", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, mr.Exists(keyPrefix+"print-monitor"))

	_, ok, err = l.TryLock(ctx, "print-monitor", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second holder must be rejected")

	require.NoError(t, unlock(ctx))
	assert.False(t, mr.Exists(keyPrefix+"print-monitor"))

	_, ok, err = l.TryLock(ctx, "print-monitor", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLockerExpiry(t *testing.T) {
	l, mr := newTestRedisLocker(t)
	ctx := context.Background()

	staleUnlock, ok, err := l.TryLock(ctx, "cleanup", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	_, ok, err = l.TryLock(ctx, "cleanup", time.Minute)
	require.NoError(t, err)
	require.True(t, ok, "expired lock must be free")

	require.NoError(t, staleUnlock(ctx))
	assert.True(t, mr.Exists(keyPrefix+"cleanup"), "stale holder must not release the new lock")
}

func TestLocalLocker(t *testing.T) {
	l := NewLocalLocker()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	unlock, ok, err := l.TryLock(ctx, "job", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, _ = l.TryLock(ctx, "job", time.Minute)
	assert.False(t, ok)

	require.NoError(t, unlock(ctx))

	_, ok, _ = l.TryLock(ctx, "job", time.Minute)
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok, _ = l.TryLock(ctx, "job", time.Minute)
	assert.True(t, ok, "expired local lock must be free")
}
