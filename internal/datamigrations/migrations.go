// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package datamigrations

import (
	"context"

	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/pricing"
	"github.com/canonical/glassworks-service/internal/types"
	"github.com/canonical/glassworks-service/pkg/invoices"
)

const (
	BackfillMembershipPermissions = "backfill-membership-permissions"
	RecomputeInvoiceWorkStatus    = "recompute-invoice-work-status"
	SeedDefaultRates              = "seed-default-rates"

	// seededMaxThickness is the upper band of seeded rates, in millimetres.
	seededMaxThickness = 50
)

// Migration rewrites the data of one tenant. Apply returns how many rows it
// changed and must tolerate partially migrated data.
type Migration struct {
	Name        string
	Description string
	Apply       func(ctx context.Context, tenantID string) (int, error)
}

// Builtin returns the shipped migrations in the order they were introduced.
func Builtin(storage StorageInterface) []Migration {
	m := &builtin{storage: storage}

	return []Migration{
		{
			Name:        BackfillMembershipPermissions,
			Description: "store the role default permissions on memberships with an empty list",
			Apply:       m.backfillMembershipPermissions,
		},
		{
			Name:        RecomputeInvoiceWorkStatus,
			Description: "derive the invoice work status again from its lines",
			Apply:       m.recomputeInvoiceWorkStatus,
		},
		{
			Name:        SeedDefaultRates,
			Description: "create default laser and beveling rates for tenants without any",
			Apply:       m.seedDefaultRates,
		},
	}
}

type builtin struct {
	storage StorageInterface
}

func (b *builtin) backfillMembershipPermissions(ctx context.Context, tenantID string) (int, error) {
	members, err := b.storage.ListMembersByTenantID(ctx, tenantID)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, m := range members {
		if len(m.Permissions) > 0 {
			continue
		}

		perms := authorization.RolePermissions(m.Role)
		if len(perms) == 0 {
			continue
		}

		m.Permissions = make([]string, 0, len(perms))
		for _, p := range perms {
			m.Permissions = append(m.Permissions, string(p))
		}

		if err := b.storage.UpdateMembership(ctx, m); err != nil {
			return changed, err
		}
		changed++
	}

	return changed, nil
}

func (b *builtin) recomputeInvoiceWorkStatus(ctx context.Context, tenantID string) (int, error) {
	ids, err := b.storage.ListInvoiceIDs(ctx, tenantID)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, id := range ids {
		inv, err := b.storage.GetInvoiceForUpdate(ctx, id)
		if err != nil {
			return changed, err
		}

		lines, err := b.storage.ListInvoiceLines(ctx, id)
		if err != nil {
			return changed, err
		}

		derived := invoices.DeriveWorkStatus(invoices.LineStatuses(lines))
		if derived == inv.WorkStatus {
			continue
		}

		inv.WorkStatus = derived
		if err := b.storage.UpdateInvoiceState(ctx, inv); err != nil {
			return changed, err
		}
		changed++
	}

	return changed, nil
}

func (b *builtin) seedDefaultRates(ctx context.Context, tenantID string) (int, error) {
	seeds := []struct {
		kind      types.RateKind
		treatment types.TreatmentType
	}{
		{types.RateLaser, types.TreatmentLaser},
		{types.RateBeveling, types.TreatmentBeveling},
	}

	changed := 0
	for _, seed := range seeds {
		if err := b.storage.LockThicknessRates(ctx, tenantID, seed.kind); err != nil {
			return changed, err
		}

		existing, err := b.storage.ListThicknessRates(ctx, tenantID, seed.kind, true)
		if err != nil {
			return changed, err
		}

		if len(existing) > 0 {
			continue
		}

		_, err = b.storage.CreateThicknessRate(ctx, &types.ThicknessRate{
			TenantID:      tenantID,
			Kind:          seed.kind,
			MinThickness:  0,
			MaxThickness:  seededMaxThickness,
			PricePerMeter: pricing.DefaultRates[seed.treatment],
			Active:        true,
		})
		if err != nil {
			return changed, err
		}
		changed++
	}

	return changed, nil
}
