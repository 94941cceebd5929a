// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package customers

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

func (s *Service) CreateCustomer(ctx context.Context, req *CustomerRequest) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "customers.Service.CreateCustomer")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCustomersCreate)
	if err != nil {
		return nil, err
	}

	kind := types.CustomerType(req.Type)
	if err := validate(req.Name, kind); err != nil {
		return nil, err
	}

	// cash customers settle every invoice on the spot
	if kind == types.CustomerCash && hasBalance(req.Balance) {
		return nil, errorx.ErrCashCustomerBalance
	}

	var created *types.Customer
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		created, err = s.storage.CreateCustomer(ctx, &types.Customer{
			TenantID: p.TenantID,
			Name:     strings.TrimSpace(req.Name),
			Phone:    strings.TrimSpace(req.Phone),
			Address:  req.Address,
			Type:     kind,
			Balance:  pricing.Round2(req.Balance),
			Notes:    req.Notes,
		})
		if err != nil {
			return customerError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "customer.create",
			EntityType: "customer",
			EntityID:   created.ID,
			After:      created,
		})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) GetCustomer(ctx context.Context, id string) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "customers.Service.GetCustomer")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCustomersView)
	if err != nil {
		return nil, err
	}

	return s.owned(ctx, p, id)
}

func (s *Service) ListCustomers(ctx context.Context, search string, page, size int64) ([]*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "customers.Service.ListCustomers")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCustomersView)
	if err != nil {
		return nil, err
	}

	customers, err := s.storage.ListCustomers(ctx, p.TenantID, strings.TrimSpace(search), page, size)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	return customers, nil
}

// UpdateCustomer edits the profile. A customer carrying a balance cannot
// become a cash customer.
func (s *Service) UpdateCustomer(ctx context.Context, id string, req *CustomerRequest) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "customers.Service.UpdateCustomer")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCustomersEdit)
	if err != nil {
		return nil, err
	}

	kind := types.CustomerType(req.Type)
	if err := validate(req.Name, kind); err != nil {
		return nil, err
	}

	var updated *types.Customer
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.owned(ctx, p, id)
		if err != nil {
			return err
		}

		if kind == types.CustomerCash && current.Type != types.CustomerCash && hasBalance(current.Balance) {
			return errorx.ErrCashCustomerBalance.WithData(map[string]interface{}{"balance": current.Balance})
		}

		next := *current
		next.Name = strings.TrimSpace(req.Name)
		next.Phone = strings.TrimSpace(req.Phone)
		next.Address = req.Address
		next.Type = kind
		next.Notes = req.Notes
		if kind == types.CustomerCash {
			// drops sub-cent residue so the row meets the cash balance check
			next.Balance = 0
		}

		updated, err = s.storage.UpdateCustomer(ctx, &next)
		if err != nil {
			return customerError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "customer.update",
			EntityType: "customer",
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

func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "customers.Service.DeleteCustomer")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermCustomersDelete)
	if err != nil {
		return err
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.owned(ctx, p, id)
		if err != nil {
			return err
		}

		invoices, err := s.storage.CountInvoicesByCustomer(ctx, id)
		if err != nil {
			return storage.DomainError(err)
		}
		if invoices > 0 {
			return errorx.ErrCustomerHasInvoices.WithData(map[string]interface{}{"count": invoices})
		}

		if err := s.storage.DeleteCustomer(ctx, id); err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   p.TenantID,
			ActorID:    p.UserID(),
			Action:     "customer.delete",
			EntityType: "customer",
			EntityID:   id,
			Before:     current,
		})
	})
}

func (s *Service) owned(ctx context.Context, p *authorization.Principal, id string) (*types.Customer, error) {
	c, err := s.storage.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, storage.DomainError(err)
	}
	if err := authorization.VerifyTenantOwnership(p, c.TenantID); err != nil {
		return nil, err
	}
	return c, nil
}

func validate(name string, kind types.CustomerType) error {
	if strings.TrimSpace(name) == "" {
		return errorx.ErrRequiredField.WithData(map[string]interface{}{"field": "name"})
	}
	if !kind.Valid() {
		return errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "customer_type"})
	}
	return nil
}

// hasBalance reports any balance that survives rounding to cents, CASH
// customers must hold exactly zero.
func hasBalance(balance float64) bool {
	return pricing.Round2(balance) != 0
}

func customerError(err error) error {
	if errors.Is(err, storage.ErrDuplicateKey) {
		return errorx.ErrDuplicatePhone.Wrap(err)
	}
	return storage.DomainError(err)
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
