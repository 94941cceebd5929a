// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/glassworks-service/internal/http/types"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/types"
)

type API struct {
	service   ServiceInterface
	responder *httptypes.Responder

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/members", a.handleList)
	mux.Post("/api/v0/members", a.handleAdd)
	mux.Post("/api/v0/members/accounts", a.handleCreateAccount)
	mux.Put("/api/v0/members/{id}/role", a.handleRole)
	mux.Put("/api/v0/members/{id}/permissions", a.handlePermissions)
	mux.Delete("/api/v0/members/{id}", a.handleRemove)
	mux.Put("/api/v0/me/default-tenant", a.handleDefaultTenant)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	members, err := a.service.ListMembers(r.Context())
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, members)
}

func (a *API) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req AddMemberRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	m, err := a.service.AddMember(r.Context(), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusCreated, m)
}

func (a *API) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	account, err := a.service.CreateUserAccount(r.Context(), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusCreated, account)
}

func (a *API) handleRole(w http.ResponseWriter, r *http.Request) {
	var req RoleRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	m, err := a.service.UpdateMemberRole(r.Context(), chi.URLParam(r, "id"), types.Role(req.Role))
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, m)
}

func (a *API) handlePermissions(w http.ResponseWriter, r *http.Request) {
	var req PermissionsRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	m, err := a.service.UpdateMemberPermissions(r.Context(), chi.URLParam(r, "id"), req.Permissions)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, m)
}

func (a *API) handleRemove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.service.RemoveMember(r.Context(), id); err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, map[string]string{"id": id})
}

func (a *API) handleDefaultTenant(w http.ResponseWriter, r *http.Request) {
	var req DefaultTenantRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	if err := a.service.SetDefaultTenant(r.Context(), req.TenantID); err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, map[string]string{"tenant_id": req.TenantID})
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
