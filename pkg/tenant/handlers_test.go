// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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
			name:   "list",
			method: http.MethodGet,
			path:   "/api/v0/admin/tenants?page=2&size=10",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListTenants(gomock.Any(), int64(2), int64(10)).Return([]*types.Tenant{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "not a super admin",
			method: http.MethodGet,
			path:   "/api/v0/admin/tenants",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListTenants(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errorx.ErrSuperAdminOnly)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/api/v0/admin/tenants",
			body:   `{"name":"Clearview","slug":"clearview","plan":"BASIC","owner_username":"hana"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateTenant(gomock.Any(), &CreateTenantRequest{Name: "Clearview", Slug: "clearview", Plan: "BASIC", OwnerUsername: "hana"}).Return(&types.Tenant{ID: "tenant-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create with unknown plan",
			method:         http.MethodPost,
			path:           "/api/v0/admin/tenants",
			body:           `{"name":"Clearview","slug":"clearview","plan":"GOLD"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "duplicate slug",
			method: http.MethodPost,
			path:   "/api/v0/admin/tenants",
			body:   `{"name":"Clearview","slug":"clearview"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, errorx.ErrDuplicateSlug)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/api/v0/admin/tenants/tenant-1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().GetTenant(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "update with a bad color",
			method:         http.MethodPatch,
			path:           "/api/v0/admin/tenants/tenant-1",
			body:           `{"branding":{"primary_color":"blue"}}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "update",
			method: http.MethodPatch,
			path:   "/api/v0/admin/tenants/tenant-1",
			body:   `{"branding":{"primary_color":"#0055aa","theme":"light"},"max_users":8}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().UpdateTenant(gomock.Any(), "tenant-1", gomock.Any()).Return(&types.Tenant{ID: "tenant-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "deactivate",
			method: http.MethodDelete,
			path:   "/api/v0/admin/tenants/tenant-1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().DeactivateTenant(gomock.Any(), "tenant-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "suspend without reason",
			method:         http.MethodPost,
			path:           "/api/v0/admin/tenants/tenant-1/suspend",
			body:           `{}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "suspend",
			method: http.MethodPost,
			path:   "/api/v0/admin/tenants/tenant-1/suspend",
			body:   `{"reason":"unpaid"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().SuspendTenant(gomock.Any(), "tenant-1", "unpaid").Return(&types.Tenant{ID: "tenant-1", Suspended: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "reactivate deactivated",
			method: http.MethodPost,
			path:   "/api/v0/admin/tenants/tenant-1/reactivate",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ReactivateTenant(gomock.Any(), "tenant-1").Return(nil, errorx.ErrTenantDeactivated)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "change plan",
			method: http.MethodPut,
			path:   "/api/v0/admin/tenants/tenant-1/plan",
			body:   `{"plan":"PRO","billing_cycle":"MONTHLY","monthly_price":49,"discount_percent":5}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ChangePlan(gomock.Any(), "tenant-1", &ChangePlanRequest{Plan: "PRO", BillingCycle: "MONTHLY", MonthlyPrice: 49, DiscountPercent: 5}).Return(&types.Tenant{ID: "tenant-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "discount above 100",
			method:         http.MethodPut,
			path:           "/api/v0/admin/tenants/tenant-1/plan",
			body:           `{"plan":"PRO","billing_cycle":"MONTHLY","discount_percent":120}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "record billing payment",
			method: http.MethodPost,
			path:   "/api/v0/admin/tenants/tenant-1/billing-payments",
			body:   `{"amount":29.99,"method":"bank transfer"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().RecordBillingPayment(gomock.Any(), "tenant-1", &BillingPaymentRequest{Amount: 29.99, Method: "bank transfer"}).Return(&types.BillingPayment{ID: "bp-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "billing payment without amount",
			method:         http.MethodPost,
			path:           "/api/v0/admin/tenants/tenant-1/billing-payments",
			body:           `{"method":"cash"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "list billing payments",
			method: http.MethodGet,
			path:   "/api/v0/admin/tenants/tenant-1/billing-payments",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListBillingPayments(gomock.Any(), "tenant-1").Return([]*types.BillingPayment{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "enter",
			method: http.MethodPost,
			path:   "/api/v0/admin/tenants/tenant-1/enter",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().EnterTenant(gomock.Any(), "tenant-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "exit",
			method: http.MethodPost,
			path:   "/api/v0/admin/exit-tenant",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ExitTenant(gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "revenue",
			method: http.MethodGet,
			path:   "/api/v0/admin/revenue?from=2026-01-01",
			setupMocks: func(svc *MockServiceInterface) {
				from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
				svc.EXPECT().RevenueSummary(gomock.Any(), &from, nil).Return(&types.RevenueSummary{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "revenue with a bad date",
			method:         http.MethodGet,
			path:           "/api/v0/admin/revenue?from=yesterday",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
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
