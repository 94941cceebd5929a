// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"
	"errors"
	"strings"

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

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	auditor AuditorInterface
	db      TxInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListGlassTypes(ctx context.Context, activeOnly bool) ([]*types.GlassType, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ListGlassTypes")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCatalogView)
	if err != nil {
		return nil, err
	}

	glass, err := s.storage.ListGlassTypes(ctx, p.TenantID, activeOnly)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	return glass, nil
}

func (s *Service) GetGlassType(ctx context.Context, id string) (*types.GlassType, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.GetGlassType")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCatalogView)
	if err != nil {
		return nil, err
	}

	return s.ownedGlassType(ctx, p, id)
}

func (s *Service) CreateGlassType(ctx context.Context, req *GlassTypeRequest) (*types.GlassType, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.CreateGlassType")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCatalogManage)
	if err != nil {
		return nil, err
	}

	if err := validateGlassType(req); err != nil {
		return nil, err
	}

	var created *types.GlassType
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		created, err = s.storage.CreateGlassType(ctx, &types.GlassType{
			TenantID:      p.TenantID,
			Name:          strings.TrimSpace(req.Name),
			Thickness:     req.Thickness,
			Color:         req.Color,
			UnitPrice:     req.UnitPrice,
			PricingMethod: types.PricingMethod(req.PricingMethod),
			Active:        activeOrDefault(req.Active),
		})
		if err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "glass_type.create",
			EntityType: "glass_type",
			EntityID:   created.ID,
			After:      created,
		})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateGlassType replaces the editable fields. Invoice lines keep their own
// snapshot so price changes never touch issued invoices.
func (s *Service) UpdateGlassType(ctx context.Context, id string, req *GlassTypeRequest) (*types.GlassType, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.UpdateGlassType")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCatalogManage)
	if err != nil {
		return nil, err
	}

	if err := validateGlassType(req); err != nil {
		return nil, err
	}

	var updated *types.GlassType
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.ownedGlassType(ctx, p, id)
		if err != nil {
			return err
		}

		next := *current
		next.Name = strings.TrimSpace(req.Name)
		next.Thickness = req.Thickness
		next.Color = req.Color
		next.UnitPrice = req.UnitPrice
		next.PricingMethod = types.PricingMethod(req.PricingMethod)
		if req.Active != nil {
			next.Active = *req.Active
		}

		updated, err = s.storage.UpdateGlassType(ctx, &next)
		if err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "glass_type.update",
			EntityType: "glass_type",
			EntityID:   id,
			Before:     current,
			After:      updated,
		})
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteGlassType removes a glass type no invoice line refers to. Referenced
// types are disabled through an update instead.
func (s *Service) DeleteGlassType(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.DeleteGlassType")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCatalogManage)
	if err != nil {
		return err
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.ownedGlassType(ctx, p, id)
		if err != nil {
			return err
		}

		lines, err := s.storage.CountLinesByGlassType(ctx, id)
		if err != nil {
			return storage.DomainError(err)
		}
		if lines > 0 {
			return errorx.ErrGlassTypeReferenced
		}

		if err := s.storage.DeleteGlassType(ctx, id); err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "glass_type.delete",
			EntityType: "glass_type",
			EntityID:   id,
			Before:     current,
		})
	})
}

func (s *Service) ListRates(ctx context.Context, kind types.RateKind) ([]*types.ThicknessRate, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ListRates")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCatalogView)
	if err != nil {
		return nil, err
	}

	if !kind.Valid() {
		return nil, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "kind"})
	}

	rates, err := s.storage.ListThicknessRates(ctx, p.TenantID, kind, false)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	return rates, nil
}

// CreateRate adds a thickness band. Active bands of one table may not
// overlap, the check runs under a lock on the existing rows.
func (s *Service) CreateRate(ctx context.Context, kind types.RateKind, req *RateRequest) (*types.ThicknessRate, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.CreateRate")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCatalogManage)
	if err != nil {
		return nil, err
	}

	if err := validateRate(kind, req); err != nil {
		return nil, err
	}

	var created *types.ThicknessRate
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		rate := &types.ThicknessRate{
			TenantID:      p.TenantID,
			Kind:          kind,
			MinThickness:  req.MinThickness,
			MaxThickness:  req.MaxThickness,
			PricePerMeter: req.PricePerMeter,
			Active:        activeOrDefault(req.Active),
		}

		if err := s.checkOverlap(ctx, rate); err != nil {
			return err
		}

		created, err = s.storage.CreateThicknessRate(ctx, rate)
		if err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "rate.create",
			EntityType: rateEntity(kind),
			EntityID:   created.ID,
			After:      created,
		})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateRate(ctx context.Context, kind types.RateKind, id string, req *RateRequest) (*types.ThicknessRate, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.UpdateRate")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCatalogManage)
	if err != nil {
		return nil, err
	}

	if err := validateRate(kind, req); err != nil {
		return nil, err
	}

	var updated *types.ThicknessRate
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.ownedRate(ctx, p, kind, id)
		if err != nil {
			return err
		}

		next := *current
		next.MinThickness = req.MinThickness
		next.MaxThickness = req.MaxThickness
		next.PricePerMeter = req.PricePerMeter
		if req.Active != nil {
			next.Active = *req.Active
		}

		if err := s.checkOverlap(ctx, &next); err != nil {
			return err
		}

		updated, err = s.storage.UpdateThicknessRate(ctx, &next)
		if err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "rate.update",
			EntityType: rateEntity(kind),
			EntityID:   id,
			Before:     current,
			After:      updated,
		})
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeleteRate(ctx context.Context, kind types.RateKind, id string) error {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.DeleteRate")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCatalogManage)
	if err != nil {
		return err
	}

	if !kind.Valid() {
		return errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "kind"})
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.ownedRate(ctx, p, kind, id)
		if err != nil {
			return err
		}

		if err := s.storage.DeleteThicknessRate(ctx, kind, id); err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "rate.delete",
			EntityType: rateEntity(kind),
			EntityID:   id,
			Before:     current,
		})
	})
}

func (s *Service) ListOperationPrices(ctx context.Context) ([]*types.OperationPrice, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ListOperationPrices")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCatalogView)
	if err != nil {
		return nil, err
	}

	prices, err := s.storage.ListOperationPrices(ctx, p.TenantID)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	return prices, nil
}

func (s *Service) CreateOperationPrice(ctx context.Context, req *OperationPriceRequest) (*types.OperationPrice, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.CreateOperationPrice")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCatalogManage)
	if err != nil {
		return nil, err
	}

	if req.Price < 0 {
		return nil, errorx.ErrNegativeValue.WithData(map[string]interface{}{"field": "price"})
	}

	var created *types.OperationPrice
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		created, err = s.storage.CreateOperationPrice(ctx, &types.OperationPrice{
			TenantID: p.TenantID,
			Category: strings.ToUpper(strings.TrimSpace(req.Category)),
			Subtype:  strings.TrimSpace(req.Subtype),
			Price:    req.Price,
			Unit:     unitOrDefault(req.Unit),
			Active:   activeOrDefault(req.Active),
		})
		if err != nil {
			return operationPriceError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "operation_price.create",
			EntityType: "operation_price",
			EntityID:   created.ID,
			After:      created,
		})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateOperationPrice(ctx context.Context, id string, req *OperationPriceRequest) (*types.OperationPrice, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.UpdateOperationPrice")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCatalogManage)
	if err != nil {
		return nil, err
	}

	if req.Price < 0 {
		return nil, errorx.ErrNegativeValue.WithData(map[string]interface{}{"field": "price"})
	}

	var updated *types.OperationPrice
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.ownedOperationPrice(ctx, p, id)
		if err != nil {
			return err
		}

		next := *current
		next.Category = strings.ToUpper(strings.TrimSpace(req.Category))
		next.Subtype = strings.TrimSpace(req.Subtype)
		next.Price = req.Price
		next.Unit = unitOrDefault(req.Unit)
		if req.Active != nil {
			next.Active = *req.Active
		}

		updated, err = s.storage.UpdateOperationPrice(ctx, &next)
		if err != nil {
			return operationPriceError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "operation_price.update",
			EntityType: "operation_price",
			EntityID:   id,
			Before:     current,
			After:      updated,
		})
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeleteOperationPrice(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.DeleteOperationPrice")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCatalogManage)
	if err != nil {
		return err
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.ownedOperationPrice(ctx, p, id)
		if err != nil {
			return err
		}

		if err := s.storage.DeleteOperationPrice(ctx, id); err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "operation_price.delete",
			EntityType: "operation_price",
			EntityID:   id,
			Before:     current,
		})
	})
}

// LookupRate resolves a rate for the caller tenant.
func (s *Service) LookupRate(ctx context.Context, treatment types.TreatmentType, thickness float64) (pricing.RateLookup, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.LookupRate")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCatalogView)
	if err != nil {
		return pricing.RateLookup{}, err
	}

	return s.ResolveRate(ctx, p.TenantID, treatment, thickness)
}

// ResolveRate returns the first active band containing thickness, or the
// default rate of the treatment flagged as a fallback.
func (s *Service) ResolveRate(ctx context.Context, tenantID string, treatment types.TreatmentType, thickness float64) (pricing.RateLookup, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ResolveRate")
	defer span.End()

	switch treatment {
	case types.TreatmentBeveling, types.TreatmentLaser, types.TreatmentSanding:
	default:
		return pricing.RateLookup{}, errorx.ErrUnknownTreatment.WithData(map[string]interface{}{"treatment": string(treatment)})
	}

	table, err := s.RateTable(ctx, tenantID)
	if err != nil {
		return pricing.RateLookup{}, err
	}

	lookup := table.Resolve(treatment, "", thickness)
	if lookup.Fallback {
		s.reportFallback(tenantID, treatment, thickness)
	}

	return lookup, nil
}

// RateTable loads a snapshot of the active rates of a tenant. Callers are
// trusted to have authorized the tenant already.
func (s *Service) RateTable(ctx context.Context, tenantID string) (*pricing.RateTable, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.RateTable")
	defer span.End()

	laser, err := s.storage.ListThicknessRates(ctx, tenantID, types.RateLaser, false)
	if err != nil {
		return nil, storage.DomainError(err)
	}
	beveling, err := s.storage.ListThicknessRates(ctx, tenantID, types.RateBeveling, false)
	if err != nil {
		return nil, storage.DomainError(err)
	}
	operations, err := s.storage.ListOperationPrices(ctx, tenantID)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	return pricing.NewRateTable(append(laser, beveling...), operations), nil
}

func (s *Service) reportFallback(tenantID string, treatment types.TreatmentType, thickness float64) {
	s.logger.Warnf("no active %s rate for %.2fmm in tenant %s, default rate used", treatment, thickness, tenantID)
	if err := s.monitor.IncDomainEvent(map[string]string{"event": "rate_fallback", "detail": string(treatment)}); err != nil {
		s.logger.Debugf("failed to count rate fallback: %v", err)
	}
}

func (s *Service) checkOverlap(ctx context.Context, rate *types.ThicknessRate) error {
	if !rate.Active {
		return nil
	}

	if err := s.storage.LockThicknessRates(ctx, rate.TenantID, rate.Kind); err != nil {
		return storage.DomainError(err)
	}

	existing, err := s.storage.ListThicknessRates(ctx, rate.TenantID, rate.Kind, true)
	if err != nil {
		return storage.DomainError(err)
	}

	if other := pricing.FindOverlap(existing, rate.ID, rate.MinThickness, rate.MaxThickness); other != nil {
		return errorx.ErrOverlappingRate.WithData(map[string]interface{}{
			"min": other.MinThickness,
			"max": other.MaxThickness,
		})
	}

	return nil
}

func (s *Service) ownedGlassType(ctx context.Context, p *authorization.Principal, id string) (*types.GlassType, error) {
	g, err := s.storage.GetGlassTypeByID(ctx, id)
	if err != nil {
		return nil, storage.DomainError(err)
	}
	if err := authorization.VerifyTenantOwnership(p, g.TenantID); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) ownedRate(ctx context.Context, p *authorization.Principal, kind types.RateKind, id string) (*types.ThicknessRate, error) {
	r, err := s.storage.GetThicknessRateByID(ctx, kind, id)
	if err != nil {
		return nil, storage.DomainError(err)
	}
	if err := authorization.VerifyTenantOwnership(p, r.TenantID); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) ownedOperationPrice(ctx context.Context, p *authorization.Principal, id string) (*types.OperationPrice, error) {
	o, err := s.storage.GetOperationPriceByID(ctx, id)
	if err != nil {
		return nil, storage.DomainError(err)
	}
	if err := authorization.VerifyTenantOwnership(p, o.TenantID); err != nil {
		return nil, err
	}
	return o, nil
}

func validateGlassType(req *GlassTypeRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errorx.ErrRequiredField.WithData(map[string]interface{}{"field": "name"})
	}
	if req.Thickness <= 0 {
		return errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "thickness"})
	}
	if req.UnitPrice < 0 {
		return errorx.ErrNegativeValue.WithData(map[string]interface{}{"field": "unit_price"})
	}
	if !types.PricingMethod(req.PricingMethod).Valid() {
		return errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "pricing_method"})
	}
	return nil
}

func validateRate(kind types.RateKind, req *RateRequest) error {
	if !kind.Valid() {
		return errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "kind"})
	}
	if req.PricePerMeter < 0 {
		return errorx.ErrNegativeValue.WithData(map[string]interface{}{"field": "price_per_meter"})
	}
	if req.MinThickness < 0 || req.MaxThickness < 0 {
		return errorx.ErrNegativeValue.WithData(map[string]interface{}{"field": "thickness"})
	}
	if req.MinThickness > req.MaxThickness {
		return errorx.ErrInvertedThicknessRange
	}
	return nil
}

func operationPriceError(err error) error {
	if errors.Is(err, storage.ErrDuplicateKey) {
		return errorx.ErrDuplicateOperation.Wrap(err)
	}
	return storage.DomainError(err)
}

func unitOrDefault(u string) string {
	if u == "" {
		return "m2"
	}
	return u
}

func rateEntity(kind types.RateKind) string {
	return strings.ToLower(string(kind)) + "_rate"
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
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
