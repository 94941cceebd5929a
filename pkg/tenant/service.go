// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/pricing"
	"github.com/canonical/glassworks-service/internal/storage"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/types"
)

// TrialPeriod is how long a new tenant runs before its first payment is due.
const TrialPeriod = 14 * 24 * time.Hour

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	auditor AuditorInterface
	db      TxInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateTenant provisions a tenant on a trial subscription. When an owner
// username is given the user becomes its OWNER, and the tenant becomes the
// user's default if they had none.
func (s *Service) CreateTenant(ctx context.Context, req *CreateTenantRequest) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	p, err := s.authz.RequireSuperAdmin(ctx)
	if err != nil {
		return nil, err
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if !ValidSlug(slug) {
		return nil, errorx.ErrInvalidSlug.WithData(map[string]interface{}{"slug": req.Slug})
	}

	plan := types.Plan(req.Plan)
	if plan == "" {
		plan = types.PlanFree
	}
	if !plan.Valid() {
		return nil, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "plan"})
	}

	now := s.now().UTC()
	trialEnd := now.Add(TrialPeriod)

	var created *types.Tenant
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		var owner *types.User
		if req.OwnerUsername != "" {
			owner, err = s.storage.GetUserByUsername(ctx, req.OwnerUsername)
			if err != nil {
				return storage.DomainError(err)
			}
		}

		created, err = s.storage.CreateTenant(ctx, &types.Tenant{
			Name:     strings.TrimSpace(req.Name),
			Slug:     slug,
			Plan:     plan,
			Active:   true,
			MaxUsers: req.MaxUsers,
			Subscription: types.Subscription{
				Status:       types.SubscriptionTrial,
				BillingCycle: types.BillingMonthly,
				PeriodStart:  &now,
				PeriodEnd:    &trialEnd,
			},
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return errorx.ErrDuplicateSlug.WithData(map[string]interface{}{"slug": slug})
		}
		if err != nil {
			return storage.DomainError(err)
		}

		metadata := map[string]string{"slug": slug}
		if owner != nil {
			if err := s.assignOwner(ctx, created.ID, owner); err != nil {
				return err
			}
			metadata["owner"] = owner.Username
		}

		return s.auditor.RecordPlatform(ctx, audit.Entry{
			TenantID:   created.ID,
			ActorID:    p.UserID(),
			Action:     "tenant.create",
			EntityType: "tenant",
			EntityID:   created.ID,
			After:      created,
			Metadata:   metadata,
		})
	})
	if err != nil {
		return nil, err
	}

	s.count("created", string(created.Plan))
	return created, nil
}

func (s *Service) assignOwner(ctx context.Context, tenantID string, owner *types.User) error {
	_, err := s.storage.CreateMembership(ctx, &types.Membership{
		TenantID:    tenantID,
		UserID:      owner.ID,
		Role:        types.RoleOwner,
		Permissions: authorization.Strings(authorization.RolePermissions(types.RoleOwner)),
		Active:      true,
	})
	if err != nil {
		return storage.DomainError(err)
	}

	if owner.DefaultTenantID != "" {
		return nil
	}

	return storage.DomainError(s.storage.SetDefaultTenant(ctx, owner.ID, tenantID))
}

func (s *Service) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	if _, err := s.authz.RequireSuperAdmin(ctx); err != nil {
		return nil, err
	}

	t, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	return t, nil
}

func (s *Service) ListTenants(ctx context.Context, page, size int64) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	if _, err := s.authz.RequireSuperAdmin(ctx); err != nil {
		return nil, err
	}

	tenants, err := s.storage.ListTenants(ctx, page, size)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	return tenants, nil
}

func (s *Service) UpdateTenant(ctx context.Context, id string, req *UpdateTenantRequest) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenant")
	defer span.End()

	return s.mutate(ctx, id, "tenant.update", func(ctx context.Context, t *types.Tenant) error {
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return errorx.ErrRequiredField.WithData(map[string]interface{}{"field": "name"})
			}
			t.Name = name
		}

		if req.Branding != nil {
			if err := s.checkLogo(ctx, t.ID, req.Branding.LogoFileID); err != nil {
				return err
			}
			t.Branding = req.Branding.toBranding()
		}

		switch {
		case req.ClearMaxUsers:
			t.MaxUsers = nil
		case req.MaxUsers != nil:
			t.MaxUsers = req.MaxUsers
		}

		return nil
	})
}

func (s *Service) checkLogo(ctx context.Context, tenantID, fileID string) error {
	if fileID == "" {
		return nil
	}

	f, err := s.storage.GetStoredFileByID(ctx, fileID, false)
	if err != nil {
		return storage.DomainError(err)
	}
	if f.TenantID != tenantID || f.Purpose != types.FileLogo {
		return errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "logo_file_id"})
	}

	return nil
}

// SuspendTenant blocks every member of the tenant until it is reactivated.
func (s *Service) SuspendTenant(ctx context.Context, id, reason string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SuspendTenant")
	defer span.End()

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errorx.ErrRequiredField.WithData(map[string]interface{}{"field": "reason"})
	}

	t, err := s.mutate(ctx, id, "tenant.suspend", func(_ context.Context, t *types.Tenant) error {
		t.Suspended = true
		t.SuspensionReason = reason
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.count("suspended", string(t.Plan))
	return t, nil
}

func (s *Service) ReactivateTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ReactivateTenant")
	defer span.End()

	return s.mutate(ctx, id, "tenant.reactivate", func(_ context.Context, t *types.Tenant) error {
		t.Suspended = false
		t.SuspensionReason = ""
		return nil
	})
}

// ChangePlan switches the plan and the pricing terms. Members above a lower
// seat limit are kept, only new additions are refused.
func (s *Service) ChangePlan(ctx context.Context, id string, req *ChangePlanRequest) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ChangePlan")
	defer span.End()

	plan := types.Plan(req.Plan)
	if !plan.Valid() {
		return nil, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "plan"})
	}

	cycle := types.BillingCycle(req.BillingCycle)
	if cycle != types.BillingMonthly && cycle != types.BillingYearly {
		return nil, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "billing_cycle"})
	}

	if req.MonthlyPrice < 0 || req.YearlyPrice < 0 || req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		return nil, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "price"})
	}

	t, err := s.mutate(ctx, id, "tenant.plan_change", func(_ context.Context, t *types.Tenant) error {
		t.Plan = plan
		t.Subscription.BillingCycle = cycle
		t.Subscription.MonthlyPrice = pricing.Round2(req.MonthlyPrice)
		t.Subscription.YearlyPrice = pricing.Round2(req.YearlyPrice)
		t.Subscription.DiscountPercent = pricing.Round2(req.DiscountPercent)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.count("plan_changed", string(plan))
	return t, nil
}

// DeactivateTenant is a soft delete, the data stays and nobody can use it.
func (s *Service) DeactivateTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeactivateTenant")
	defer span.End()

	t, err := s.mutate(ctx, id, "tenant.deactivate", func(_ context.Context, t *types.Tenant) error {
		now := s.now().UTC()
		t.Active = false
		t.DeactivatedAt = &now
		t.Subscription.Status = types.SubscriptionCancelled
		return nil
	})
	if err != nil {
		return err
	}

	s.count("deactivated", string(t.Plan))
	return nil
}

// RecordBillingPayment stores a subscription payment and extends the paid
// period by one billing cycle. A lapsed period restarts from now.
func (s *Service) RecordBillingPayment(ctx context.Context, id string, req *BillingPaymentRequest) (*types.BillingPayment, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RecordBillingPayment")
	defer span.End()

	p, err := s.authz.RequireSuperAdmin(ctx)
	if err != nil {
		return nil, err
	}

	amount := pricing.Round2(req.Amount)
	if amount <= 0 {
		return nil, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "amount"})
	}

	var payment *types.BillingPayment
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		t, err := s.storage.GetTenantForUpdate(ctx, id)
		if err != nil {
			return storage.DomainError(err)
		}
		if !t.Active {
			return errorx.ErrTenantDeactivated
		}

		before := *t
		start, end := nextPeriod(t.Subscription, s.now().UTC())

		payment, err = s.storage.CreateBillingPayment(ctx, &types.BillingPayment{
			TenantID:     t.ID,
			Amount:       amount,
			Method:       strings.TrimSpace(req.Method),
			BillingCycle: cycleOf(t.Subscription),
			PeriodStart:  start,
			PeriodEnd:    end,
			Notes:        req.Notes,
			RecordedBy:   p.UserID(),
		})
		if err != nil {
			return storage.DomainError(err)
		}

		if t.Subscription.Status != types.SubscriptionActive || t.Subscription.PeriodStart == nil {
			t.Subscription.PeriodStart = &start
		}
		t.Subscription.Status = types.SubscriptionActive
		t.Subscription.BillingCycle = payment.BillingCycle
		t.Subscription.PeriodEnd = &end

		updated, err := s.storage.UpdateTenant(ctx, t)
		if err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.RecordPlatform(ctx, audit.Entry{
			TenantID:   t.ID,
			ActorID:    p.UserID(),
			Action:     "tenant.billing_payment",
			EntityType: "billing_payment",
			EntityID:   payment.ID,
			Before:     before.Subscription,
			After:      updated.Subscription,
			Metadata: map[string]string{
				"amount":     strconv.FormatFloat(amount, 'f', 2, 64),
				"period_end": end.Format(time.RFC3339),
			},
		})
	})
	if err != nil {
		return nil, err
	}

	s.count("billing_payment", string(payment.BillingCycle))
	return payment, nil
}

func cycleOf(sub types.Subscription) types.BillingCycle {
	if sub.BillingCycle == "" {
		return types.BillingMonthly
	}
	return sub.BillingCycle
}

// nextPeriod returns the bounds a new payment covers. Paid time that has not
// run out yet is kept, the new cycle starts where it ends.
func nextPeriod(sub types.Subscription, now time.Time) (time.Time, time.Time) {
	start := now
	if sub.Status == types.SubscriptionActive && sub.PeriodEnd != nil && sub.PeriodEnd.After(now) {
		start = *sub.PeriodEnd
	}
	return start, cycleOf(sub).Next(start)
}

func (s *Service) ListBillingPayments(ctx context.Context, id string) ([]*types.BillingPayment, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListBillingPayments")
	defer span.End()

	if _, err := s.authz.RequireSuperAdmin(ctx); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetTenantByID(ctx, id); err != nil {
		return nil, storage.DomainError(err)
	}

	payments, err := s.storage.ListBillingPayments(ctx, id)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	return payments, nil
}

// RevenueSummary totals billing payments in [from, to). Without bounds it
// covers the last twelve calendar months up to now.
func (s *Service) RevenueSummary(ctx context.Context, from, to *time.Time) (*types.RevenueSummary, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RevenueSummary")
	defer span.End()

	if _, err := s.authz.RequireSuperAdmin(ctx); err != nil {
		return nil, err
	}

	end := s.now().UTC()
	if to != nil {
		end = to.UTC()
	}

	monthStart := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := monthStart.AddDate(0, -11, 0)
	if from != nil {
		start = from.UTC()
	}

	if !start.Before(end) {
		return nil, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "from"})
	}

	rows, err := s.storage.RevenueByMonthAndPlan(ctx, start, end)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	return summarize(start, end, rows), nil
}

func summarize(from, to time.Time, rows []*types.RevenueRow) *types.RevenueSummary {
	summary := &types.RevenueSummary{
		From:    from,
		To:      to,
		ByMonth: make([]types.MonthRevenue, 0),
		ByPlan:  make(map[types.Plan]float64),
	}

	for _, r := range rows {
		summary.Total = pricing.Sum(summary.Total, r.Total)
		summary.ByPlan[r.Plan] = pricing.Sum(summary.ByPlan[r.Plan], r.Total)

		last := len(summary.ByMonth) - 1
		if last >= 0 && summary.ByMonth[last].Month == r.Month {
			summary.ByMonth[last].Total = pricing.Sum(summary.ByMonth[last].Total, r.Total)
			continue
		}
		summary.ByMonth = append(summary.ByMonth, types.MonthRevenue{Month: r.Month, Total: pricing.Round2(r.Total)})
	}

	return summary
}

// EnterTenant points the super admin's session at a tenant. Requests then
// resolve to that tenant with full permissions until ExitTenant.
func (s *Service) EnterTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.EnterTenant")
	defer span.End()

	p, err := s.authz.RequireSuperAdmin(ctx)
	if err != nil {
		return err
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		t, err := s.storage.GetTenantByID(ctx, id)
		if err != nil {
			return storage.DomainError(err)
		}
		if !t.Active {
			return errorx.ErrTenantDeactivated
		}

		if err := s.storage.SetViewingTenant(ctx, p.UserID(), t.ID); err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.RecordPlatform(ctx, audit.Entry{
			TenantID:   t.ID,
			ActorID:    p.UserID(),
			Action:     "tenant.enter",
			EntityType: "tenant",
			EntityID:   t.ID,
		})
	})
}

func (s *Service) ExitTenant(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ExitTenant")
	defer span.End()

	p, err := s.authz.RequireSuperAdmin(ctx)
	if err != nil {
		return err
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.SetViewingTenant(ctx, p.UserID(), ""); err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.RecordPlatform(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "tenant.exit",
			EntityType: "user",
			EntityID:   p.UserID(),
		})
	})
}

// mutate locks the tenant, applies fn and writes the result with a platform
// audit entry. Deactivated tenants are read only.
func (s *Service) mutate(ctx context.Context, id, action string, fn func(context.Context, *types.Tenant) error) (*types.Tenant, error) {
	p, err := s.authz.RequireSuperAdmin(ctx)
	if err != nil {
		return nil, err
	}

	var updated *types.Tenant
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		t, err := s.storage.GetTenantForUpdate(ctx, id)
		if err != nil {
			return storage.DomainError(err)
		}
		if !t.Active {
			return errorx.ErrTenantDeactivated
		}

		before := *t
		if err := fn(ctx, t); err != nil {
			return err
		}

		updated, err = s.storage.UpdateTenant(ctx, t)
		if err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.RecordPlatform(ctx, audit.Entry{
			TenantID:   t.ID,
			ActorID:    p.UserID(),
			Action:     action,
			EntityType: "tenant",
			EntityID:   t.ID,
			Before:     &before,
			After:      updated,
		})
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) count(event, detail string) {
	if err := s.monitor.IncDomainEvent(map[string]string{"event": "tenant_" + event, "detail": detail}); err != nil {
		s.logger.Debugf("failed to count tenant event: %v", err)
	}
}

// ValidSlug reports whether slug is a lowercase URL-safe identifier of 3 to
// 63 characters.
func ValidSlug(slug string) bool {
	return len(slug) >= 3 && len(slug) <= 63 && slugPattern.MatchString(slug)
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	auditor AuditorInterface,
	db TxInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		auditor: auditor,
		db:      db,
		now:     time.Now,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
