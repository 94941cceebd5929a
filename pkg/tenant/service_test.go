// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"testing"
	"time"

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

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_interfaces.go -source=./interfaces.go

var testNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

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
	s.now = func() time.Time { return testNow }
	return s, m
}

func superAdmin() *authorization.Principal {
	return &authorization.Principal{
		User:       &types.User{ID: "root"},
		Role:       types.RoleSuperAdmin,
		SuperAdmin: true,
	}
}

func activeTenant() *types.Tenant {
	return &types.Tenant{ID: "tenant-1", Name: "Clearview", Slug: "clearview", Plan: types.PlanBasic, Active: true}
}

func echoUpdate(_ context.Context, t *types.Tenant) (*types.Tenant, error) {
	updated := *t
	return &updated, nil
}

func TestValidSlug(t *testing.T) {
	testCases := []struct {
		slug     string
		expected bool
	}{
		{slug: "clearview", expected: true},
		{slug: "glass-and-co-2", expected: true},
		{slug: "ab", expected: false},
		{slug: "Clearview", expected: false},
		{slug: "-clearview", expected: false},
		{slug: "clear--view", expected: false},
		{slug: "clear view", expected: false},
		{slug: "clearview-", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.slug, func(t *testing.T) {
			if got := ValidSlug(tc.slug); got != tc.expected {
				t.Fatalf("expected %v for %q, got %v", tc.expected, tc.slug, got)
			}
		})
	}
}

func TestService_CreateTenant(t *testing.T) {
	testCases := []struct {
		name        string
		req         *CreateTenantRequest
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name: "trial without owner",
			req:  &CreateTenantRequest{Name: " Clearview ", Slug: "Clearview"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tn *types.Tenant) (*types.Tenant, error) {
						if tn.Slug != "clearview" || tn.Name != "Clearview" || tn.Plan != types.PlanFree {
							t.Errorf("unexpected tenant %+v", tn)
						}
						sub := tn.Subscription
						if sub.Status != types.SubscriptionTrial || sub.PeriodEnd == nil || !sub.PeriodEnd.Equal(testNow.Add(TrialPeriod)) {
							t.Errorf("unexpected subscription %+v", sub)
						}
						created := *tn
						created.ID = "tenant-1"
						return &created, nil
					},
				)
				m.auditor.EXPECT().RecordPlatform(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e audit.Entry) error {
						if e.Action != "tenant.create" || e.TenantID != "tenant-1" || e.ActorID != "root" {
							t.Errorf("unexpected audit entry %+v", e)
						}
						return nil
					},
				)
			},
		},
		{
			name: "owner without a default tenant",
			req:  &CreateTenantRequest{Name: "Clearview", Slug: "clearview", Plan: "PRO", OwnerUsername: "hana"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUserByUsername(gomock.Any(), "hana").Return(&types.User{ID: "user-1", Username: "hana"}, nil)
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(&types.Tenant{ID: "tenant-1", Plan: types.PlanPro}, nil)
				m.storage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, ms *types.Membership) (*types.Membership, error) {
						if ms.Role != types.RoleOwner || ms.TenantID != "tenant-1" || ms.UserID != "user-1" || !ms.Active {
							t.Errorf("unexpected membership %+v", ms)
						}
						return ms, nil
					},
				)
				m.storage.EXPECT().SetDefaultTenant(gomock.Any(), "user-1", "tenant-1").Return(nil)
				m.auditor.EXPECT().RecordPlatform(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "owner keeps an existing default tenant",
			req:  &CreateTenantRequest{Name: "Clearview", Slug: "clearview", OwnerUsername: "hana"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUserByUsername(gomock.Any(), "hana").Return(&types.User{ID: "user-1", DefaultTenantID: "tenant-0"}, nil)
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(&types.Tenant{ID: "tenant-1"}, nil)
				m.storage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).Return(&types.Membership{ID: "m-1"}, nil)
				m.auditor.EXPECT().RecordPlatform(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:        "invalid slug",
			req:         &CreateTenantRequest{Name: "Clearview", Slug: "clear view"},
			setupMocks:  func(*mocks) {},
			expectedErr: errorx.ErrInvalidSlug,
		},
		{
			name: "duplicate slug",
			req:  &CreateTenantRequest{Name: "Clearview", Slug: "clearview"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: errorx.ErrDuplicateSlug,
		},
		{
			name: "unknown owner",
			req:  &CreateTenantRequest{Name: "Clearview", Slug: "clearview", OwnerUsername: "ghost"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
			},
			expectedErr: errorx.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.authz.EXPECT().RequireSuperAdmin(gomock.Any()).Return(superAdmin(), nil)
			tc.setupMocks(m)

			_, err := s.CreateTenant(context.Background(), tc.req)

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

func TestService_RequiresSuperAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.authz.EXPECT().RequireSuperAdmin(gomock.Any()).Return(nil, errorx.ErrSuperAdminOnly).Times(3)

	if _, err := s.ListTenants(context.Background(), 1, 20); !errors.Is(err, errorx.ErrSuperAdminOnly) {
		t.Fatalf("expected super admin error, got %v", err)
	}
	if _, err := s.SuspendTenant(context.Background(), "tenant-1", "unpaid"); !errors.Is(err, errorx.ErrSuperAdminOnly) {
		t.Fatalf("expected super admin error, got %v", err)
	}
	if err := s.EnterTenant(context.Background(), "tenant-1"); !errors.Is(err, errorx.ErrSuperAdminOnly) {
		t.Fatalf("expected super admin error, got %v", err)
	}
}

func TestService_Mutations(t *testing.T) {
	testCases := []struct {
		name        string
		tenant      *types.Tenant
		action      string
		call        func(*Service) (*types.Tenant, error)
		check       func(*types.Tenant) bool
		expectedErr error
	}{
		{
			name:   "suspend",
			tenant: activeTenant(),
			action: "tenant.suspend",
			call: func(s *Service) (*types.Tenant, error) {
				return s.SuspendTenant(context.Background(), "tenant-1", " unpaid invoices ")
			},
			check: func(t *types.Tenant) bool {
				return t.Suspended && t.SuspensionReason == "unpaid invoices" && !t.Usable()
			},
		},
		{
			name: "reactivate",
			tenant: &types.Tenant{
				ID: "tenant-1", Plan: types.PlanBasic, Active: true, Suspended: true, SuspensionReason: "unpaid",
			},
			action: "tenant.reactivate",
			call: func(s *Service) (*types.Tenant, error) {
				return s.ReactivateTenant(context.Background(), "tenant-1")
			},
			check: func(t *types.Tenant) bool {
				return !t.Suspended && t.SuspensionReason == "" && t.Usable()
			},
		},
		{
			name:   "change plan",
			tenant: activeTenant(),
			action: "tenant.plan_change",
			call: func(s *Service) (*types.Tenant, error) {
				return s.ChangePlan(context.Background(), "tenant-1", &ChangePlanRequest{
					Plan: "PRO", BillingCycle: "YEARLY", MonthlyPrice: 49.999, YearlyPrice: 499, DiscountPercent: 10,
				})
			},
			check: func(t *types.Tenant) bool {
				sub := t.Subscription
				return t.Plan == types.PlanPro && t.SeatLimit() == 15 && sub.BillingCycle == types.BillingYearly &&
					sub.MonthlyPrice == 50 && sub.YearlyPrice == 499 && sub.DiscountPercent == 10
			},
		},
		{
			name:   "rename and clear the seat override",
			tenant: &types.Tenant{ID: "tenant-1", Plan: types.PlanFree, Active: true, MaxUsers: intPtr(8)},
			action: "tenant.update",
			call: func(s *Service) (*types.Tenant, error) {
				name := "Clearview Glass"
				return s.UpdateTenant(context.Background(), "tenant-1", &UpdateTenantRequest{
					Name:          &name,
					Branding:      &BrandingRequest{PrimaryColor: "#0055aa", Theme: "dark"},
					ClearMaxUsers: true,
				})
			},
			check: func(t *types.Tenant) bool {
				return t.Name == "Clearview Glass" && t.MaxUsers == nil && t.SeatLimit() == 2 &&
					t.Branding.PrimaryColor == "#0055aa" && t.Branding.Theme == "dark"
			},
		},
		{
			name:   "deactivated tenant is read only",
			tenant: &types.Tenant{ID: "tenant-1", Active: false},
			call: func(s *Service) (*types.Tenant, error) {
				return s.ReactivateTenant(context.Background(), "tenant-1")
			},
			expectedErr: errorx.ErrTenantDeactivated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.authz.EXPECT().RequireSuperAdmin(gomock.Any()).Return(superAdmin(), nil)
			m.storage.EXPECT().GetTenantForUpdate(gomock.Any(), "tenant-1").Return(tc.tenant, nil)
			if tc.expectedErr == nil {
				m.storage.EXPECT().UpdateTenant(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
				m.auditor.EXPECT().RecordPlatform(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e audit.Entry) error {
						if e.Action != tc.action || e.EntityType != "tenant" || e.Before == nil {
							t.Errorf("unexpected audit entry %+v", e)
						}
						return nil
					},
				)
			}

			updated, err := tc.call(s)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.check(updated) {
				t.Fatalf("unexpected tenant %+v", updated)
			}
		})
	}
}

func TestService_SuspendRequiresReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newTestService(ctrl)

	_, err := s.SuspendTenant(context.Background(), "tenant-1", "  ")
	if !errors.Is(err, errorx.ErrRequiredField) {
		t.Fatalf("expected required field error, got %v", err)
	}
}

func TestService_UpdateTenantLogo(t *testing.T) {
	testCases := []struct {
		name        string
		file        *types.StoredFile
		expectedErr error
	}{
		{
			name: "logo of the tenant",
			file: &types.StoredFile{ID: "f-1", TenantID: "tenant-1", Purpose: types.FileLogo},
		},
		{
			name:        "logo of another tenant",
			file:        &types.StoredFile{ID: "f-1", TenantID: "tenant-2", Purpose: types.FileLogo},
			expectedErr: errorx.ErrInvalidValue,
		},
		{
			name:        "print pdf",
			file:        &types.StoredFile{ID: "f-1", TenantID: "tenant-1", Purpose: types.FilePrintPDF},
			expectedErr: errorx.ErrInvalidValue,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.authz.EXPECT().RequireSuperAdmin(gomock.Any()).Return(superAdmin(), nil)
			m.storage.EXPECT().GetTenantForUpdate(gomock.Any(), "tenant-1").Return(activeTenant(), nil)
			m.storage.EXPECT().GetStoredFileByID(gomock.Any(), "f-1", false).Return(tc.file, nil)
			if tc.expectedErr == nil {
				m.storage.EXPECT().UpdateTenant(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
				m.auditor.EXPECT().RecordPlatform(gomock.Any(), gomock.Any()).Return(nil)
			}

			updated, err := s.UpdateTenant(context.Background(), "tenant-1", &UpdateTenantRequest{
				Branding: &BrandingRequest{LogoFileID: "f-1"},
			})

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if updated.Branding.LogoFileID != "f-1" {
				t.Fatalf("expected logo to be set, got %+v", updated.Branding)
			}
		})
	}
}

func TestService_DeactivateTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.authz.EXPECT().RequireSuperAdmin(gomock.Any()).Return(superAdmin(), nil)
	m.storage.EXPECT().GetTenantForUpdate(gomock.Any(), "tenant-1").Return(activeTenant(), nil)
	m.storage.EXPECT().UpdateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tn *types.Tenant) (*types.Tenant, error) {
			if tn.Active || tn.DeactivatedAt == nil || !tn.DeactivatedAt.Equal(testNow) {
				t.Errorf("expected soft delete, got %+v", tn)
			}
			if tn.Subscription.Status != types.SubscriptionCancelled {
				t.Errorf("expected cancelled subscription, got %s", tn.Subscription.Status)
			}
			return tn, nil
		},
	)
	m.auditor.EXPECT().RecordPlatform(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e audit.Entry) error {
			if e.Action != "tenant.deactivate" {
				t.Errorf("unexpected action %s", e.Action)
			}
			return nil
		},
	)

	if err := s.DeactivateTenant(context.Background(), "tenant-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_RecordBillingPayment(t *testing.T) {
	paidUntil := testNow.AddDate(0, 0, 10)
	lapsed := testNow.AddDate(0, 0, -3)
	trialEnd := testNow.AddDate(0, 0, 4)

	testCases := []struct {
		name          string
		subscription  types.Subscription
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "active period is extended",
			subscription:  types.Subscription{Status: types.SubscriptionActive, BillingCycle: types.BillingMonthly, PeriodEnd: &paidUntil},
			expectedStart: paidUntil,
			expectedEnd:   paidUntil.AddDate(0, 1, 0),
		},
		{
			name:          "lapsed period restarts now",
			subscription:  types.Subscription{Status: types.SubscriptionPastDue, BillingCycle: types.BillingYearly, PeriodEnd: &lapsed},
			expectedStart: testNow,
			expectedEnd:   testNow.AddDate(1, 0, 0),
		},
		{
			name:          "trial converts from now",
			subscription:  types.Subscription{Status: types.SubscriptionTrial, PeriodEnd: &trialEnd},
			expectedStart: testNow,
			expectedEnd:   testNow.AddDate(0, 1, 0),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tn := activeTenant()
			tn.Subscription = tc.subscription

			s, m := newTestService(ctrl)
			m.authz.EXPECT().RequireSuperAdmin(gomock.Any()).Return(superAdmin(), nil)
			m.storage.EXPECT().GetTenantForUpdate(gomock.Any(), "tenant-1").Return(tn, nil)
			m.storage.EXPECT().CreateBillingPayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p *types.BillingPayment) (*types.BillingPayment, error) {
					if !p.PeriodStart.Equal(tc.expectedStart) || !p.PeriodEnd.Equal(tc.expectedEnd) {
						t.Errorf("expected period %s - %s, got %s - %s", tc.expectedStart, tc.expectedEnd, p.PeriodStart, p.PeriodEnd)
					}
					if p.Amount != 29.99 || p.RecordedBy != "root" {
						t.Errorf("unexpected payment %+v", p)
					}
					created := *p
					created.ID = "bp-1"
					return &created, nil
				},
			)
			m.storage.EXPECT().UpdateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, tn *types.Tenant) (*types.Tenant, error) {
					sub := tn.Subscription
					if sub.Status != types.SubscriptionActive || sub.PeriodEnd == nil || !sub.PeriodEnd.Equal(tc.expectedEnd) {
						t.Errorf("unexpected subscription %+v", sub)
					}
					return tn, nil
				},
			)
			m.auditor.EXPECT().RecordPlatform(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e audit.Entry) error {
					if e.Action != "tenant.billing_payment" || e.EntityID != "bp-1" || e.Metadata["amount"] != "29.99" {
						t.Errorf("unexpected audit entry %+v", e)
					}
					return nil
				},
			)

			p, err := s.RecordBillingPayment(context.Background(), "tenant-1", &BillingPaymentRequest{Amount: 29.99, Method: "bank transfer"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.ID != "bp-1" {
				t.Fatalf("unexpected payment %+v", p)
			}
		})
	}
}

func TestService_RecordBillingPaymentDeactivated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.authz.EXPECT().RequireSuperAdmin(gomock.Any()).Return(superAdmin(), nil)
	m.storage.EXPECT().GetTenantForUpdate(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1"}, nil)

	_, err := s.RecordBillingPayment(context.Background(), "tenant-1", &BillingPaymentRequest{Amount: 10, Method: "cash"})
	if !errors.Is(err, errorx.ErrTenantDeactivated) {
		t.Fatalf("expected deactivated error, got %v", err)
	}
}

func TestService_RevenueSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.authz.EXPECT().RequireSuperAdmin(gomock.Any()).Return(superAdmin(), nil)
	m.storage.EXPECT().RevenueByMonthAndPlan(gomock.Any(), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), testNow).Return(
		[]*types.RevenueRow{
			{Month: "2026-03", Plan: types.PlanBasic, Total: 19.99},
			{Month: "2026-03", Plan: types.PlanPro, Total: 49.99},
			{Month: "2026-04", Plan: types.PlanBasic, Total: 20.01},
		}, nil,
	)

	summary, err := s.RevenueSummary(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Total != 89.99 {
		t.Fatalf("expected total 89.99, got %v", summary.Total)
	}
	if len(summary.ByMonth) != 2 || summary.ByMonth[0].Total != 69.98 || summary.ByMonth[1].Total != 20.01 {
		t.Fatalf("unexpected months %+v", summary.ByMonth)
	}
	if summary.ByPlan[types.PlanBasic] != 40 || summary.ByPlan[types.PlanPro] != 49.99 {
		t.Fatalf("unexpected plans %+v", summary.ByPlan)
	}
}

func TestService_RevenueSummaryEmptyRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.authz.EXPECT().RequireSuperAdmin(gomock.Any()).Return(superAdmin(), nil)

	from := testNow
	to := testNow.Add(-time.Hour)
	if _, err := s.RevenueSummary(context.Background(), &from, &to); !errors.Is(err, errorx.ErrInvalidValue) {
		t.Fatalf("expected invalid value, got %v", err)
	}
}

func TestService_EnterAndExitTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.authz.EXPECT().RequireSuperAdmin(gomock.Any()).Return(superAdmin(), nil).Times(2)
	m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(activeTenant(), nil)
	gomock.InOrder(
		m.storage.EXPECT().SetViewingTenant(gomock.Any(), "root", "tenant-1").Return(nil),
		m.storage.EXPECT().SetViewingTenant(gomock.Any(), "root", "").Return(nil),
	)
	m.auditor.EXPECT().RecordPlatform(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	if err := s.EnterTenant(context.Background(), "tenant-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.ExitTenant(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_EnterDeactivatedTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.authz.EXPECT().RequireSuperAdmin(gomock.Any()).Return(superAdmin(), nil)
	m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1"}, nil)

	if err := s.EnterTenant(context.Background(), "tenant-1"); !errors.Is(err, errorx.ErrTenantDeactivated) {
		t.Fatalf("expected deactivated error, got %v", err)
	}
}

func intPtr(v int) *int {
	return &v
}
