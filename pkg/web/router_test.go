// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/glassworks-service/internal/db"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/pkg/authentication"
)

type fakeDBClient struct{}

var _ db.DBClientInterface = fakeDBClient{}

func (fakeDBClient) Statement(context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder
}

func (fakeDBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (fakeDBClient) Ping(context.Context) error {
	return nil
}

func (fakeDBClient) Close() {}

type fakeVerifier struct{}

func (fakeVerifier) VerifyToken(_ context.Context, raw string) (string, error) {
	if raw != "good" {
		return "", errors.New("bad token")
	}
	return "sub-1", nil
}

func TestNewRouter(t *testing.T) {
	testCases := []struct {
		name           string
		verifier       authentication.TokenVerifierInterface
		method         string
		path           string
		body           string
		headers        map[string]string
		expectedStatus int
	}{
		{
			name:           "status is public",
			verifier:       fakeVerifier{},
			method:         http.MethodGet,
			path:           "/api/v0/status",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "readiness pings the database",
			verifier:       fakeVerifier{},
			method:         http.MethodGet,
			path:           "/api/v0/ready",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "api needs a bearer token",
			verifier:       fakeVerifier{},
			method:         http.MethodGet,
			path:           "/api/v0/customers",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "bad bearer token",
			verifier:       fakeVerifier{},
			method:         http.MethodGet,
			path:           "/api/v0/customers",
			headers:        map[string]string{"Authorization": "Bearer forged"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "webhooks skip bearer authentication",
			verifier:       fakeVerifier{},
			method:         http.MethodPost,
			path:           "/webhooks/token",
			body:           `not-json`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "identity header mode",
			method:         http.MethodGet,
			path:           "/api/v0/version",
			expectedStatus: http.StatusOK,
		},
		{
			name:    "cors preflight",
			method:  http.MethodOptions,
			path:    "/api/v0/customers",
			headers: map[string]string{"Origin": "https://shop.example.com", "Access-Control-Request-Method": http.MethodPost},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger := logging.NewNoopLogger()
			cfg := RouterConfig{
				CORSAllowedOrigins: []string{"*"},
				DefaultLanguage:    "en",
				RateLimitPerMin:    100,
				Verifier:           tc.verifier,
			}

			router, err := NewRouter(cfg, new(Services), fakeDBClient{}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
			if err != nil {
				t.Fatalf("failed to build router: %v", err)
			}

			req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
