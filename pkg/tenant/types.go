// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"github.com/canonical/glassworks-service/internal/types"
)

type CreateTenantRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	Slug          string `json:"slug" validate:"required"`
	Plan          string `json:"plan" validate:"omitempty,oneof=FREE BASIC PRO ENTERPRISE"`
	MaxUsers      *int   `json:"max_users" validate:"omitempty,min=0"`
	OwnerUsername string `json:"owner_username" validate:"omitempty,max=100"`
}

type BrandingRequest struct {
	PrimaryColor   string            `json:"primary_color" validate:"omitempty,hexcolor"`
	SecondaryColor string            `json:"secondary_color" validate:"omitempty,hexcolor"`
	Theme          string            `json:"theme" validate:"omitempty,oneof=light dark"`
	LogoFileID     string            `json:"logo_file_id"`
	Settings       map[string]string `json:"settings"`
}

func (b *BrandingRequest) toBranding() types.Branding {
	return types.Branding{
		PrimaryColor:   b.PrimaryColor,
		SecondaryColor: b.SecondaryColor,
		Theme:          b.Theme,
		LogoFileID:     b.LogoFileID,
		Settings:       b.Settings,
	}
}

// UpdateTenantRequest only touches the fields that are set. ClearMaxUsers
// drops the override so the plan default applies again.
type UpdateTenantRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Branding      *BrandingRequest `json:"branding"`
	MaxUsers      *int             `json:"max_users" validate:"omitempty,min=0"`
	ClearMaxUsers bool             `json:"clear_max_users"`
}

type SuspendRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type ChangePlanRequest struct {
	Plan            string  `json:"plan" validate:"required,oneof=FREE BASIC PRO ENTERPRISE"`
	BillingCycle    string  `json:"billing_cycle" validate:"required,oneof=MONTHLY YEARLY"`
	MonthlyPrice    float64 `json:"monthly_price" validate:"min=0"`
	YearlyPrice     float64 `json:"yearly_price" validate:"min=0"`
	DiscountPercent float64 `json:"discount_percent" validate:"min=0,max=100"`
}

type BillingPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"required,max=50"`
	Notes  string  `json:"notes" validate:"max=500"`
}
