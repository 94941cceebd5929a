// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"slices"
	"strings"

	"github.com/canonical/glassworks-service/internal/errorx"
	httptypes "github.com/canonical/glassworks-service/internal/http/types"
	"github.com/canonical/glassworks-service/internal/identity"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
)

type Middleware struct {
	verifier  TokenVerifierInterface
	responder *httptypes.Responder

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate requires a valid bearer token on every path except the
// public ones, which carry their own credential. The token subject becomes
// the caller identity.
func (m *Middleware) Authenticate(public ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(public, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.logger.Security().AuthnFailure(r.URL.Path, "missing bearer token")
				m.responder.Error(w, r, errorx.ErrNotAuthenticated)
				return
			}

			subject, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("JWT verification failed: %v", err)
				m.logger.Security().AuthnFailure(r.URL.Path, "invalid token")
				m.responder.Error(w, r, errorx.ErrNotAuthenticated.Wrap(err))
				return
			}

			next.ServeHTTP(w, r.WithContext(identity.WithSubject(ctx, subject)))
		})
	}
}

func isPublic(public []string, path string) bool {
	return slices.ContainsFunc(public, func(prefix string) bool {
		return path == prefix || strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/")
	})
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(bearer, "Bearer "))
	return token, token != ""
}

func NewMiddleware(verifier TokenVerifierInterface, responder *httptypes.Responder, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier:  verifier,
		responder: responder,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
