// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invoices

import (
	"bytes"
	"context"
	"encoding/json"
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
	"github.com/canonical/glassworks-service/internal/pricing"
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
	validCreate := `{"customer_id":"cust-1","amount_paid_now":10,"lines":[{"glass_type_id":"glass-1","width":100,"height":50,"unit":"cm","quantity":1}]}`

	testCases := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/api/v0/invoices",
			body:   validCreate,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req *CreateInvoiceRequest) (*types.Invoice, error) {
						if req.CustomerID != "cust-1" || len(req.Lines) != 1 || req.Lines[0].Unit != "cm" {
							t.Errorf("unexpected request %+v", req)
						}
						return &types.Invoice{ID: "inv-1", Number: "INV-000001"}, nil
					},
				)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create without lines",
			method:         http.MethodPost,
			path:           "/api/v0/invoices",
			body:           `{"customer_id":"cust-1","lines":[]}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "create with unknown unit",
			method:         http.MethodPost,
			path:           "/api/v0/invoices",
			body:           `{"customer_id":"cust-1","lines":[{"glass_type_id":"g","width":1,"height":1,"unit":"yard"}]}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "create rejected",
			method: http.MethodPost,
			path:   "/api/v0/invoices",
			body:   validCreate,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil, errorx.ErrCashMustPayInFull.WithData(map[string]interface{}{"total": 50.0}))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "preview",
			method: http.MethodPost,
			path:   "/api/v0/invoices/preview",
			body:   `{"lines":[{"glass_type_id":"glass-1","width":100,"height":50,"unit":"cm"}]}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().PreviewInvoice(gomock.Any(), gomock.Len(1)).Return(&pricing.InvoiceResult{Total: 12.5}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "list with filters",
			method: http.MethodGet,
			path:   "/api/v0/invoices?status=PENDING&customer_id=cust-1&from=2026-01-01&page=2&size=5",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListInvoices(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, f types.InvoiceFilter) ([]*types.Invoice, error) {
						if f.Status != types.InvoicePending || f.CustomerID != "cust-1" || f.From == nil || f.To != nil || f.Page != 2 || f.Size != 5 {
							t.Errorf("unexpected filter %+v", f)
						}
						return []*types.Invoice{}, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "list with bad date",
			method:         http.MethodGet,
			path:           "/api/v0/invoices?from=soon",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "get not found",
			method: http.MethodGet,
			path:   "/api/v0/invoices/inv-9",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().GetInvoice(gomock.Any(), "inv-9").Return(nil, errorx.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "line status",
			method: http.MethodPut,
			path:   "/api/v0/invoices/inv-1/lines/line-1/status",
			body:   `{"status":"COMPLETED"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().UpdateLineStatus(gomock.Any(), "inv-1", "line-1", types.WorkCompleted).Return(&types.Invoice{ID: "inv-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "line status outside the factory set",
			method:         http.MethodPut,
			path:           "/api/v0/invoices/inv-1/lines/line-1/status",
			body:           `{"status":"CANCELLED"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "cancel forbidden",
			method: http.MethodPost,
			path:   "/api/v0/invoices/inv-1/cancel",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CancelInvoice(gomock.Any(), "inv-1").Return(nil, errorx.ErrPermissionDenied)
			},
			expectedStatus: http.StatusForbidden,
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

			var resp map[string]interface{}
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if int(resp["status"].(float64)) != tc.expectedStatus {
				t.Errorf("expected envelope status %d, got %v", tc.expectedStatus, resp["status"])
			}
		})
	}
}
