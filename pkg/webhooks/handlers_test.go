// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"
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

func TestAPI_Registration(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"id":"kratos-1","traits":{"username":"hana","name":{"first":"Hana","last":"Saleh"}}}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), &KratosIdentity{
					ID:     "kratos-1",
					Traits: KratosTraits{Username: "hana", Name: KratosName{First: "Hana", Last: "Saleh"}},
				}).Return(&types.User{ID: "user-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid request body",
			body:           `not-json`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing username",
			body:           `{"id":"kratos-1","traits":{}}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "username taken",
			body: `{"id":"kratos-2","traits":{"username":"hana"}}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(nil, errorx.ErrDuplicateUsername)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			tc.setupMocks(svc)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/registration", bytes.NewBufferString(tc.body))
			w := httptest.NewRecorder()

			newTestRouter(t, svc).ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_TokenHook(t *testing.T) {
	hookRequest, err := json.Marshal(&oauth2.TokenHookRequest{Session: oauth2.NewSession("kratos-1")})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	testCases := []struct {
		name           string
		body           []byte
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectTenants  bool
	}{
		{
			name: "success",
			body: hookRequest,
			setupMocks: func(svc *MockServiceInterface) {
				resp := new(TokenHookResponse)
				resp.Session.IDToken = map[string]interface{}{claimTenants: []string{"tenant-1"}}
				resp.Session.AccessToken = resp.Session.IDToken
				svc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(resp, nil)
			},
			expectedStatus: http.StatusOK,
			expectTenants:  true,
		},
		{
			name:           "invalid request body",
			body:           []byte(`not-json`),
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: hookRequest,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(nil, errorx.ErrInternal)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			tc.setupMocks(svc)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/token", bytes.NewBuffer(tc.body))
			w := httptest.NewRecorder()

			newTestRouter(t, svc).ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}

			if !tc.expectTenants {
				return
			}

			var raw map[string]json.RawMessage
			if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if _, ok := raw["session"]; !ok {
				t.Fatalf("expected session at the top level, got %s", w.Body.String())
			}
			if _, ok := raw["data"]; ok {
				t.Fatal("token hook response must not be wrapped in an envelope")
			}

			var result TokenHookResponse
			if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if result.Session.IDToken[claimTenants] == nil {
				t.Fatal("expected tenants in the id token")
			}
		})
	}
}
