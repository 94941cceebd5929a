// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package customers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/glassworks-service/internal/http/types"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
)

type API struct {
	service   ServiceInterface
	responder *httptypes.Responder

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/customers", a.handleList)
	mux.Post("/api/v0/customers", a.handleCreate)
	mux.Get("/api/v0/customers/{id}", a.handleGet)
	mux.Put("/api/v0/customers/{id}", a.handleUpdate)
	mux.Delete("/api/v0/customers/{id}", a.handleDelete)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	page, size := httptypes.PageParams(r)

	customers, err := a.service.ListCustomers(r.Context(), r.URL.Query().Get("q"), page, size)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.Page(w, customers, page, size)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	c, err := a.service.CreateCustomer(r.Context(), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusCreated, c)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	c, err := a.service.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, c)
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	c, err := a.service.UpdateCustomer(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, c)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.service.DeleteCustomer(r.Context(), id); err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, map[string]string{"id": id})
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
