// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/glassworks-service/internal/errorx"
	httptypes "github.com/canonical/glassworks-service/internal/http/types"
	"github.com/canonical/glassworks-service/internal/i18n"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/types"
)

func newTestRouter(t *testing.T, svc ServiceInterface) *chi.Mux {
	t.Helper()

	tr, err := i18n.NewTranslator("en")
	if err != nil {
		t.Fatalf("failed to build translator: %v", err)
	}

	logger := logging.NewNoopLogger()
	router := chi.NewMux()
	NewAPI(svc, httptypes.NewResponder(tr, logger), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(router)
	return router
}

func TestAPI_Endpoints(t *testing.T) {
	testCases := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "list unread",
			method: http.MethodGet,
			path:   "/api/v0/notifications?unread=true",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListNotifications(gomock.Any(), true, int64(0), int64(0)).Return([]*types.Notification{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/api/v0/notifications",
			body:   `{"title":"Stock count"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(&types.Notification{ID: "n-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create without title",
			method:         http.MethodPost,
			path:           "/api/v0/notifications",
			body:           `{"body":"text"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "read all",
			method: http.MethodPost,
			path:   "/api/v0/notifications/read-all",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().MarkAllRead(gomock.Any()).Return(int64(3), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "read someone else's",
			method: http.MethodPost,
			path:   "/api/v0/notifications/n-1/read",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().MarkRead(gomock.Any(), "n-1").Return(errorx.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "hide",
			method: http.MethodPost,
			path:   "/api/v0/notifications/n-1/hide",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Hide(gomock.Any(), "n-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			tc.setupMocks(svc)

			var body io.Reader
			if tc.body != "" {
				body = bytes.NewBufferString(tc.body)
			}
			req := httptest.NewRequest(tc.method, tc.path, body)
			w := httptest.NewRecorder()

			newTestRouter(t, svc).ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
