// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/version"
)

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_interfaces.go -source=./interfaces.go

func TestAPI_Endpoints(t *testing.T) {
	testCases := []struct {
		name           string
		path           string
		setupMocks     func(*MockPingerInterface)
		expectedStatus int
		expected       Status
	}{
		{
			name:           "alive",
			path:           "/api/v0/status",
			setupMocks:     func(*MockPingerInterface) {},
			expectedStatus: http.StatusOK,
			expected:       Status{Status: "ok"},
		},
		{
			name: "ready",
			path: "/api/v0/ready",
			setupMocks: func(db *MockPingerInterface) {
				db.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expected:       Status{Status: "ok"},
		},
		{
			name: "database down",
			path: "/api/v0/ready",
			setupMocks: func(db *MockPingerInterface) {
				db.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expected:       Status{Status: "unavailable"},
		},
		{
			name:           "version",
			path:           "/api/v0/version",
			setupMocks:     func(*MockPingerInterface) {},
			expectedStatus: http.StatusOK,
			expected:       Status{Status: "ok", Version: version.Version},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			db := NewMockPingerInterface(ctrl)
			tc.setupMocks(db)

			logger := logging.NewNoopLogger()
			router := chi.NewMux()
			NewAPI(db, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, w.Code)
			}

			var got Status
			if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if got != tc.expected {
				t.Fatalf("expected %+v, got %+v", tc.expected, got)
			}
		})
	}
}
