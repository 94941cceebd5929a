// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ory/hydra/v2/oauth2"
	"go.uber.org/mock/gomock"

	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/storage"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_interfaces.go -source=./interfaces.go

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface) {
	store := NewMockStorageInterface(ctrl)
	logger := logging.NewNoopLogger()
	return NewService(store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), store
}

func TestService_HandleRegistration(t *testing.T) {
	testCases := []struct {
		name        string
		identity    *KratosIdentity
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "new identity",
			identity: &KratosIdentity{
				ID:     "kratos-1",
				Traits: KratosTraits{Username: " hana ", Name: KratosName{First: "Hana", Last: "Saleh"}},
			},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().UpsertUserBySubject(gomock.Any(), &types.User{
					Subject:   "kratos-1",
					Username:  "hana",
					FirstName: "Hana",
					LastName:  "Saleh",
					Role:      types.RoleWorker,
				}).Return(&types.User{ID: "user-1", Subject: "kratos-1", Username: "hana"}, nil)
			},
		},
		{
			name:        "missing username",
			identity:    &KratosIdentity{ID: "kratos-1", Traits: KratosTraits{Username: "  "}},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: errorx.ErrRequiredField,
		},
		{
			name:        "missing identity id",
			identity:    &KratosIdentity{Traits: KratosTraits{Username: "hana"}},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: errorx.ErrRequiredField,
		},
		{
			name:     "username taken by another identity",
			identity: &KratosIdentity{ID: "kratos-2", Traits: KratosTraits{Username: "hana"}},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().UpsertUserBySubject(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: errorx.ErrDuplicateUsername,
		},
		{
			name:     "storage failure",
			identity: &KratosIdentity{ID: "kratos-1", Traits: KratosTraits{Username: "hana"}},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().UpsertUserBySubject(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			expectedErr: errorx.ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, store := newTestService(ctrl)
			tc.setupMocks(store)

			user, err := svc.HandleRegistration(context.Background(), tc.identity)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID != "user-1" {
				t.Fatalf("expected user-1, got %s", user.ID)
			}
		})
	}
}

func TestService_HandleTokenHook(t *testing.T) {
	testCases := []struct {
		name           string
		req            *oauth2.TokenHookRequest
		setupMocks     func(*MockStorageInterface)
		expectedClaims map[string]interface{}
		expectedErr    error
	}{
		{
			name: "member with a default tenant",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession("kratos-1")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserBySubject(gomock.Any(), "kratos-1").Return(&types.User{ID: "user-1", Active: true, Role: types.RoleWorker, DefaultTenantID: "tenant-1"}, nil)
				s.EXPECT().ListActiveTenantIDsByUserID(gomock.Any(), "user-1").Return([]string{"tenant-1", "tenant-2"}, nil)
				s.EXPECT().GetMembership(gomock.Any(), "tenant-1", "user-1").Return(&types.Membership{Role: types.RoleCashier, Active: true}, nil)
			},
			expectedClaims: map[string]interface{}{
				claimTenants:       []string{"tenant-1", "tenant-2"},
				claimDefaultTenant: "tenant-1",
				claimRole:          "CASHIER",
			},
		},
		{
			name: "super admin",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession("kratos-sa")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserBySubject(gomock.Any(), "kratos-sa").Return(&types.User{ID: "sa", Active: true, Role: types.RoleSuperAdmin}, nil)
				s.EXPECT().ListActiveTenantIDsByUserID(gomock.Any(), "sa").Return([]string{}, nil)
			},
			expectedClaims: map[string]interface{}{
				claimTenants: []string{},
				claimRole:    "SUPERADMIN",
			},
		},
		{
			name: "membership revoked in the default tenant",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession("kratos-1")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserBySubject(gomock.Any(), "kratos-1").Return(&types.User{ID: "user-1", Active: true, DefaultTenantID: "tenant-1"}, nil)
				s.EXPECT().ListActiveTenantIDsByUserID(gomock.Any(), "user-1").Return([]string{}, nil)
				s.EXPECT().GetMembership(gomock.Any(), "tenant-1", "user-1").Return(nil, storage.ErrNotFound)
			},
			expectedClaims: map[string]interface{}{
				claimTenants:       []string{},
				claimDefaultTenant: "tenant-1",
			},
		},
		{
			name: "unknown subject",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession("kratos-404")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserBySubject(gomock.Any(), "kratos-404").Return(nil, storage.ErrNotFound)
			},
		},
		{
			name: "inactive user",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession("kratos-1")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserBySubject(gomock.Any(), "kratos-1").Return(&types.User{ID: "user-1"}, nil)
			},
		},
		{
			name:        "no session",
			req:         &oauth2.TokenHookRequest{},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: errorx.ErrRequiredField,
		},
		{
			name: "tenant lookup failure",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession("kratos-1")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserBySubject(gomock.Any(), "kratos-1").Return(&types.User{ID: "user-1", Active: true}, nil)
				s.EXPECT().ListActiveTenantIDsByUserID(gomock.Any(), "user-1").Return(nil, errors.New("timeout"))
			},
			expectedErr: errorx.ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, store := newTestService(ctrl)
			tc.setupMocks(store)

			resp, err := svc.HandleTokenHook(context.Background(), tc.req)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tc.expectedClaims == nil {
				if resp.Session.IDToken != nil || resp.Session.AccessToken != nil {
					t.Fatalf("expected an empty session, got %+v", resp.Session)
				}
				return
			}

			if !reflect.DeepEqual(resp.Session.IDToken, tc.expectedClaims) {
				t.Fatalf("expected id token claims %v, got %v", tc.expectedClaims, resp.Session.IDToken)
			}
			if !reflect.DeepEqual(resp.Session.AccessToken, tc.expectedClaims) {
				t.Fatalf("expected access token claims %v, got %v", tc.expectedClaims, resp.Session.AccessToken)
			}
		})
	}
}
