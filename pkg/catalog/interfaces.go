// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/pricing"
	"github.com/canonical/glassworks-service/internal/types"
)

type ServiceInterface interface {
	ListGlassTypes(context.Context, bool) ([]*types.GlassType, error)
	GetGlassType(context.Context, string) (*types.GlassType, error)
	CreateGlassType(context.Context, *GlassTypeRequest) (*types.GlassType, error)
	UpdateGlassType(context.Context, string, *GlassTypeRequest) (*types.GlassType, error)
	DeleteGlassType(context.Context, string) error

	ListRates(context.Context, types.RateKind) ([]*types.ThicknessRate, error)
	CreateRate(context.Context, types.RateKind, *RateRequest) (*types.ThicknessRate, error)
	UpdateRate(context.Context, types.RateKind, string, *RateRequest) (*types.ThicknessRate, error)
	DeleteRate(context.Context, types.RateKind, string) error

	ListOperationPrices(context.Context) ([]*types.OperationPrice, error)
	CreateOperationPrice(context.Context, *OperationPriceRequest) (*types.OperationPrice, error)
	UpdateOperationPrice(context.Context, string, *OperationPriceRequest) (*types.OperationPrice, error)
	DeleteOperationPrice(context.Context, string) error

	LookupRate(context.Context, types.TreatmentType, float64) (pricing.RateLookup, error)
	ResolveRate(context.Context, string, types.TreatmentType, float64) (pricing.RateLookup, error)
	RateTable(context.Context, string) (*pricing.RateTable, error)
}

type StorageInterface interface {
	CreateGlassType(ctx context.Context, g *types.GlassType) (*types.GlassType, error)
	GetGlassTypeByID(ctx context.Context, id string) (*types.GlassType, error)
	ListGlassTypes(ctx context.Context, tenantID string, activeOnly bool) ([]*types.GlassType, error)
	UpdateGlassType(ctx context.Context, g *types.GlassType) (*types.GlassType, error)
	DeleteGlassType(ctx context.Context, id string) error
	CountLinesByGlassType(ctx context.Context, glassTypeID string) (int, error)
	CreateThicknessRate(ctx context.Context, r *types.ThicknessRate) (*types.ThicknessRate, error)
	GetThicknessRateByID(ctx context.Context, kind types.RateKind, id string) (*types.ThicknessRate, error)
	LockThicknessRates(ctx context.Context, tenantID string, kind types.RateKind) error
	ListThicknessRates(ctx context.Context, tenantID string, kind types.RateKind, forUpdate bool) ([]*types.ThicknessRate, error)
	UpdateThicknessRate(ctx context.Context, r *types.ThicknessRate) (*types.ThicknessRate, error)
	DeleteThicknessRate(ctx context.Context, kind types.RateKind, id string) error
	CreateOperationPrice(ctx context.Context, o *types.OperationPrice) (*types.OperationPrice, error)
	GetOperationPriceByID(ctx context.Context, id string) (*types.OperationPrice, error)
	ListOperationPrices(ctx context.Context, tenantID string) ([]*types.OperationPrice, error)
	UpdateOperationPrice(ctx context.Context, o *types.OperationPrice) (*types.OperationPrice, error)
	DeleteOperationPrice(ctx context.Context, id string) error
}

type AuthzInterface interface {
	Require(ctx context.Context, perm authorization.Permission) (*authorization.Principal, error)
}

type AuditorInterface interface {
	Record(ctx context.Context, e audit.Entry) error
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
