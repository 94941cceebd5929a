// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locking

import (
	"context"
	"sync"
	"time"
)

var _ LockerInterface = (*LocalLocker)(nil)

// LocalLocker only coordinates goroutines of one process, it is used when no
// Redis is configured.
type LocalLocker struct {
	mu    sync.Mutex
	held  map[string]uint64
	until map[string]time.Time
	seq   uint64
	now   func() time.Time
}

func (l *LocalLocker) TryLock(_ context.Context, key string, ttl time.Duration) (UnlockFunc, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if exp, ok := l.until[key]; ok && now.Before(exp) {
		return nil, false, nil
	}

	l.seq++
	token := l.seq
	l.held[key] = token
	l.until[key] = now.Add(ttl)

	unlock := func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()

		if l.held[key] == token {
			delete(l.held, key)
			delete(l.until, key)
		}
		return nil
	}

	return unlock, true, nil
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		held:  make(map[string]uint64),
		until: make(map[string]time.Time),
		now:   time.Now,
	}
}
