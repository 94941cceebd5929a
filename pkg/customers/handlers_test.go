// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package customers

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
			name:   "search",
			method: http.MethodGet,
			path:   "/api/v0/customers?q=ali&page=1&size=10",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListCustomers(gomock.Any(), "ali", int64(1), int64(10)).Return([]*types.Customer{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/api/v0/customers",
			body:   `{"name":"Ali","customer_type":"REGULAR"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(&types.Customer{ID: "cust-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create without type",
			method:         http.MethodPost,
			path:           "/api/v0/customers",
			body:           `{"name":"Ali"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			method:         http.MethodPost,
			path:           "/api/v0/customers",
			body:           `{"name":`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "duplicate phone",
			method: http.MethodPut,
			path:   "/api/v0/customers/cust-1",
			body:   `{"name":"Ali","phone":"0550","customer_type":"REGULAR"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().UpdateCustomer(gomock.Any(), "cust-1", gomock.Any()).Return(nil, errorx.ErrDuplicatePhone)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "delete with invoices",
			method: http.MethodDelete,
			path:   "/api/v0/customers/cust-1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().DeleteCustomer(gomock.Any(), "cust-1").Return(errorx.ErrCustomerHasInvoices.WithData(map[string]interface{}{"count": 2}))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/api/v0/customers/cust-1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().GetCustomer(gomock.Any(), "cust-1").Return(&types.Customer{ID: "cust-1"}, nil)
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
