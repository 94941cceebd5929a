// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/glassworks-service/internal/http/types"
	"github.com/canonical/glassworks-service/internal/i18n"
	"github.com/canonical/glassworks-service/internal/identity"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_interfaces.go -source=./interfaces.go

func newTestMiddleware(t *testing.T, verifier TokenVerifierInterface) *Middleware {
	t.Helper()

	tr, err := i18n.NewTranslator("en")
	if err != nil {
		t.Fatalf("failed to build translator: %v", err)
	}

	logger := logging.NewNoopLogger()
	return NewMiddleware(verifier, httptypes.NewResponder(tr, logger), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name               string
		path               string
		authHeader         string
		setupMocks         func(*MockTokenVerifierInterface)
		expectedStatusCode int
		expectedSubject    string
	}{
		{
			name:               "Missing token - rejects request",
			path:               "/api/v0/customers",
			setupMocks:         func(*MockTokenVerifierInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Invalid token format - rejects request",
			path:               "/api/v0/customers",
			authHeader:         "InvalidToken",
			setupMocks:         func(*MockTokenVerifierInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Token verification fails - rejects request",
			path:       "/api/v0/customers",
			authHeader: "Bearer invalid-token",
			setupMocks: func(v *MockTokenVerifierInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "invalid-token").Return("", fmt.Errorf("invalid token"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Valid token",
			path:       "/api/v0/customers",
			authHeader: "Bearer valid-token",
			setupMocks: func(v *MockTokenVerifierInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return("identity-123", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedSubject:    "identity-123",
		},
		{
			name:               "Public path skips the check",
			path:               "/api/v0/files/download",
			setupMocks:         func(*MockTokenVerifierInterface) {},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "Public webhook prefix",
			path:               "/webhooks/token",
			setupMocks:         func(*MockTokenVerifierInterface) {},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "Similar prefix is not public",
			path:               "/webhooksx",
			setupMocks:         func(*MockTokenVerifierInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			verifier := NewMockTokenVerifierInterface(ctrl)
			tt.setupMocks(verifier)

			var subject string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				subject, _ = identity.SubjectFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			newTestMiddleware(t, verifier).Authenticate("/api/v0/files/download", "/webhooks/")(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}
			if subject != tt.expectedSubject {
				t.Errorf("expected subject %q, got %q", tt.expectedSubject, subject)
			}
		})
	}
}

func TestMiddleware_GetBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedFound bool
	}{
		{
			name:       "No Authorization header",
			authHeader: "",
		},
		{
			name:          "Bearer token",
			authHeader:    "Bearer my-token-123",
			expectedToken: "my-token-123",
			expectedFound: true,
		},
		{
			name:       "Raw token without Bearer prefix",
			authHeader: "my-token-123",
		},
		{
			name:       "Empty bearer",
			authHeader: "Bearer  ",
		},
	}

	m := &Middleware{}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			headers := http.Header{}
			if test.authHeader != "" {
				headers.Set("Authorization", test.authHeader)
			}

			token, found := m.getBearerToken(headers)
			if token != test.expectedToken || found != test.expectedFound {
				t.Errorf("expected (%q, %v), got (%q, %v)", test.expectedToken, test.expectedFound, token, found)
			}
		})
	}
}
