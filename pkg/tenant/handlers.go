// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/glassworks-service/internal/http/types"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
)

// API exposes the platform administration endpoints, every route needs a
// super admin.
type API struct {
	service   ServiceInterface
	responder *httptypes.Responder

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/admin/tenants", a.handleList)
	mux.Post("/api/v0/admin/tenants", a.handleCreate)
	mux.Get("/api/v0/admin/tenants/{id}", a.handleGet)
	mux.Patch("/api/v0/admin/tenants/{id}", a.handleUpdate)
	mux.Delete("/api/v0/admin/tenants/{id}", a.handleDeactivate)
	mux.Post("/api/v0/admin/tenants/{id}/suspend", a.handleSuspend)
	mux.Post("/api/v0/admin/tenants/{id}/reactivate", a.handleReactivate)
	mux.Put("/api/v0/admin/tenants/{id}/plan", a.handleChangePlan)
	mux.Get("/api/v0/admin/tenants/{id}/billing-payments", a.handleListBillingPayments)
	mux.Post("/api/v0/admin/tenants/{id}/billing-payments", a.handleRecordBillingPayment)
	mux.Post("/api/v0/admin/tenants/{id}/enter", a.handleEnter)
	mux.Post("/api/v0/admin/exit-tenant", a.handleExit)
	mux.Get("/api/v0/admin/revenue", a.handleRevenue)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	page, size := httptypes.PageParams(r)

	tenants, err := a.service.ListTenants(r.Context(), page, size)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.Page(w, tenants, page, size)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateTenantRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	t, err := a.service.CreateTenant(r.Context(), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusCreated, t)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	t, err := a.service.GetTenant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, t)
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateTenantRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	t, err := a.service.UpdateTenant(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, t)
}

func (a *API) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.service.DeactivateTenant(r.Context(), id); err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, map[string]string{"id": id})
}

func (a *API) handleSuspend(w http.ResponseWriter, r *http.Request) {
	var req SuspendRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	t, err := a.service.SuspendTenant(r.Context(), chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, t)
}

func (a *API) handleReactivate(w http.ResponseWriter, r *http.Request) {
	t, err := a.service.ReactivateTenant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, t)
}

func (a *API) handleChangePlan(w http.ResponseWriter, r *http.Request) {
	var req ChangePlanRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	t, err := a.service.ChangePlan(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, t)
}

func (a *API) handleListBillingPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := a.service.ListBillingPayments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, payments)
}

func (a *API) handleRecordBillingPayment(w http.ResponseWriter, r *http.Request) {
	var req BillingPaymentRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	p, err := a.service.RecordBillingPayment(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusCreated, p)
}

func (a *API) handleEnter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.service.EnterTenant(r.Context(), id); err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, map[string]string{"viewing_tenant_id": id})
}

func (a *API) handleExit(w http.ResponseWriter, r *http.Request) {
	if err := a.service.ExitTenant(r.Context()); err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, map[string]string{"viewing_tenant_id": ""})
}

func (a *API) handleRevenue(w http.ResponseWriter, r *http.Request) {
	from, to, err := httptypes.DateRange(r)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	summary, err := a.service.RevenueSummary(r.Context(), from, to)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, summary)
}

func NewAPI(service ServiceInterface, responder *httptypes.Responder, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:   service,
		responder: responder,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
