// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

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
	testCases := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "list active glass types",
			method: http.MethodGet,
			path:   "/api/v0/catalog/glass-types?active=true",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListGlassTypes(gomock.Any(), true).Return([]*types.GlassType{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "create glass type",
			method: http.MethodPost,
			path:   "/api/v0/catalog/glass-types",
			body:   `{"name":"Clear","thickness":6,"unit_price":100,"pricing_method":"AREA"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateGlassType(gomock.Any(), gomock.Any()).Return(&types.GlassType{ID: "glass-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create glass type with zero thickness",
			method:         http.MethodPost,
			path:           "/api/v0/catalog/glass-types",
			body:           `{"name":"Clear","thickness":0,"pricing_method":"AREA"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "delete referenced glass type",
			method: http.MethodDelete,
			path:   "/api/v0/catalog/glass-types/glass-1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().DeleteGlassType(gomock.Any(), "glass-1").Return(errorx.ErrGlassTypeReferenced)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "list rates by lower case kind",
			method: http.MethodGet,
			path:   "/api/v0/catalog/rates/laser",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListRates(gomock.Any(), types.RateLaser).Return([]*types.ThicknessRate{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "overlapping rate",
			method: http.MethodPost,
			path:   "/api/v0/catalog/rates/beveling",
			body:   `{"min_thickness":4,"max_thickness":8,"price_per_meter":12}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateRate(gomock.Any(), types.RateBeveling, gomock.Any()).Return(nil, errorx.ErrOverlappingRate.WithData(map[string]interface{}{"min": 0.0, "max": 6.0}))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "lookup",
			method: http.MethodGet,
			path:   "/api/v0/catalog/rates/lookup?treatment=laser&thickness=8",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().LookupRate(gomock.Any(), types.TreatmentLaser, 8.0).Return(pricing.RateLookup{Rate: 20, Fallback: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "lookup without thickness",
			method:         http.MethodGet,
			path:           "/api/v0/catalog/rates/lookup?treatment=laser",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "update operation price",
			method: http.MethodPut,
			path:   "/api/v0/catalog/operations/op-1",
			body:   `{"category":"SANDING","price":45}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().UpdateOperationPrice(gomock.Any(), "op-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, req *OperationPriceRequest) (*types.OperationPrice, error) {
						if req.Price != 45 {
							t.Errorf("unexpected request %+v", req)
						}
						return &types.OperationPrice{ID: "op-1"}, nil
					},
				)
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

			var resp map[string]interface{}
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
		})
	}
}
