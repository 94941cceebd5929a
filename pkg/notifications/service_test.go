// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/storage"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package notifications -destination ./mock_interfaces.go -source=./interfaces.go

type mocks struct {
	storage *MockStorageInterface
	authz   *MockAuthzInterface
	auditor *MockAuditorInterface
	tx      *MockTxInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks) {
	m := &mocks{
		storage: NewMockStorageInterface(ctrl),
		authz:   NewMockAuthzInterface(ctrl),
		auditor: NewMockAuditorInterface(ctrl),
		tx:      NewMockTxInterface(ctrl),
	}
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	logger := logging.NewNoopLogger()
	s := NewService(m.storage, m.authz, m.auditor, m.tx, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	return s, m
}

func member(userID string) *authorization.Principal {
	return &authorization.Principal{
		User:        &types.User{ID: userID},
		TenantID:    "tenant-1",
		Role:        types.RoleAdmin,
		Permissions: authorization.RolePermissions(types.RoleAdmin),
	}
}

func TestService_CreateNotification(t *testing.T) {
	testCases := []struct {
		name        string
		req         *NotificationRequest
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name: "broadcast",
			req:  &NotificationRequest{Title: "Stock count tomorrow"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, n *types.Notification) (*types.Notification, error) {
						if n.TargetUserID != "" || n.Kind != "GENERAL" || n.TenantID != "tenant-1" {
							t.Errorf("unexpected notification %+v", n)
						}
						n.ID = "n-1"
						return n, nil
					},
				)
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e audit.Entry) error {
						if e.Action != "notification.create" || e.EntityID != "n-1" {
							t.Errorf("unexpected audit entry %+v", e)
						}
						return nil
					},
				)
			},
		},
		{
			name: "targeted member",
			req:  &NotificationRequest{TargetUserID: "user-2", Title: "Call the customer", Kind: "task"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "tenant-1", "user-2").Return(&types.Membership{Active: true}, nil)
				m.storage.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, n *types.Notification) (*types.Notification, error) {
						if n.Kind != "TASK" {
							t.Errorf("expected upper cased kind, got %s", n.Kind)
						}
						return n, nil
					},
				)
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "target outside the tenant",
			req:  &NotificationRequest{TargetUserID: "user-9", Title: "Hello"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "tenant-1", "user-9").Return(nil, storage.ErrNotFound)
			},
			expectedErr: errorx.ErrNotFound,
		},
		{
			name: "removed member",
			req:  &NotificationRequest{TargetUserID: "user-3", Title: "Hello"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "tenant-1", "user-3").Return(&types.Membership{Active: false}, nil)
			},
			expectedErr: errorx.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.authz.EXPECT().Require(gomock.Any(), authorization.PermNotificationsCreate).Return(member("user-1"), nil)
			tc.setupMocks(m)

			_, err := s.CreateNotification(context.Background(), tc.req)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_MarkRead(t *testing.T) {
	testCases := []struct {
		name         string
		notification *types.Notification
		expectedErr  error
	}{
		{
			name:         "broadcast",
			notification: &types.Notification{ID: "n-1", TenantID: "tenant-1"},
		},
		{
			name:         "targeted at the caller",
			notification: &types.Notification{ID: "n-1", TenantID: "tenant-1", TargetUserID: "user-1"},
		},
		{
			name:         "targeted at someone else",
			notification: &types.Notification{ID: "n-1", TenantID: "tenant-1", TargetUserID: "user-2"},
			expectedErr:  errorx.ErrNotFound,
		},
		{
			name:         "other tenant",
			notification: &types.Notification{ID: "n-1", TenantID: "tenant-2"},
			expectedErr:  errorx.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.authz.EXPECT().RequireTenant(gomock.Any()).Return(member("user-1"), nil)
			m.storage.EXPECT().GetNotificationByID(gomock.Any(), "n-1").Return(tc.notification, nil)
			if tc.expectedErr == nil {
				m.storage.EXPECT().MarkNotificationRead(gomock.Any(), "n-1", "user-1").Return(nil)
			}

			err := s.MarkRead(context.Background(), "n-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_ListAndReadAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.authz.EXPECT().RequireTenant(gomock.Any()).Return(member("user-1"), nil).Times(2)
	m.storage.EXPECT().ListNotificationsForUser(gomock.Any(), "tenant-1", "user-1", true, int64(0), int64(0)).Return([]*types.Notification{{ID: "n-1"}}, nil)
	m.storage.EXPECT().MarkAllNotificationsRead(gomock.Any(), "tenant-1", "user-1").Return(int64(1), nil)

	list, err := s.ListNotifications(context.Background(), true, 0, 0)
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected list %v, %v", list, err)
	}

	n, err := s.MarkAllRead(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("unexpected result %d, %v", n, err)
	}
}

func TestService_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.storage.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *types.Notification) (*types.Notification, error) {
			created := *n
			created.ID = "n-1"
			return &created, nil
		},
	)

	err := s.Notify(context.Background(), &types.Notification{TenantID: "tenant-1", Kind: "PRINT_FAILED", Title: "Print job PJ-000001 failed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
