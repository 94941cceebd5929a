// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	redis_rate "github.com/go-redis/redis_rate/v10"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/identity"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
)

type ErrorWriter interface {
	Error(w http.ResponseWriter, r *http.Request, err error)
}

// Limiter throttles requests per caller. Redis keeps the window shared across
// replicas, a process local token bucket takes over when Redis is absent or
// failing.
type Limiter struct {
	limiter  *redis_rate.Limiter
	fallback *localLimiter
	limit    redis_rate.Limit
	errors   ErrorWriter

	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := Key(r)

		res, err := l.allow(r.Context(), key)
		if err != nil {
			l.logger.Warnf("rate limiter failed for %s, letting request through: %v", key, err)
			next.ServeHTTP(w, r)
			return
		}

		h := w.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(l.limit.Rate))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if res.Allowed == 0 {
			retryAfter := int(res.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			h.Set("Retry-After", strconv.Itoa(retryAfter))

			if err := l.monitor.IncDomainEvent(map[string]string{"event": "rate_limited"}); err != nil {
				l.logger.Debugf("failed to count rate limit event: %v", err)
			}

			l.errors.Error(w, r, errorx.ErrTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *Limiter) allow(ctx context.Context, key string) (*redis_rate.Result, error) {
	if l.limiter == nil {
		return l.fallback.allow(key, l.limit), nil
	}

	res, err := l.limiter.Allow(ctx, key, l.limit)
	if err != nil {
		l.logger.Debugf("redis rate limiter unavailable, using local bucket: %v", err)
		return l.fallback.allow(key, l.limit), nil
	}
	return res, nil
}

// Key identifies the caller by subject when authenticated, else by address.
func Key(r *http.Request) string {
	if subject, ok := identity.SubjectFromContext(r.Context()); ok {
		return "ratelimit:subject:" + subject
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return "ratelimit:ip:" + strings.TrimSpace(ips[len(ips)-1])
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return "ratelimit:ip:" + ip
}

const (
	cleanupInterval = 5 * time.Minute
	entryTTL        = 10 * time.Minute
)

type bucket struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

type localLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	swept   time.Time
}

func (l *localLimiter) allow(key string, limit redis_rate.Limit) *redis_rate.Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		perSec := float64(limit.Rate) / limit.Period.Seconds()
		b = &bucket{limiter: rate.NewLimiter(rate.Limit(perSec), limit.Burst)}
		l.buckets[key] = b
	}
	b.lastAccess = now

	res := &redis_rate.Result{Limit: limit}
	if b.limiter.AllowN(now, 1) {
		res.Allowed = 1
		res.Remaining = int(b.limiter.TokensAt(now))
		return res
	}

	deficit := 1 - b.limiter.TokensAt(now)
	res.RetryAfter = time.Duration(deficit / float64(b.limiter.Limit()) * float64(time.Second))
	return res
}

func (l *localLimiter) sweep(now time.Time) {
	if now.Sub(l.swept) < cleanupInterval {
		return
	}
	l.swept = now

	for k, b := range l.buckets {
		if now.Sub(b.lastAccess) > entryTTL {
			delete(l.buckets, k)
		}
	}
}

// NewLimiter allows perMinute requests per caller. client may be nil.
func NewLimiter(client goredis.UniversalClient, perMinute int, ew ErrorWriter, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Limiter {
	l := &Limiter{
		fallback: &localLimiter{buckets: make(map[string]*bucket)},
		limit:    redis_rate.PerMinute(perMinute),
		errors:   ew,
		monitor:  monitor,
		logger:   logger,
	}

	if client != nil {
		l.limiter = redis_rate.NewLimiter(client)
	}

	return l
}
