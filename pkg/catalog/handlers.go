// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/glassworks-service/internal/errorx"
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
	mux.Get("/api/v0/catalog/glass-types", a.handleListGlassTypes)
	mux.Post("/api/v0/catalog/glass-types", a.handleCreateGlassType)
	mux.Get("/api/v0/catalog/glass-types/{id}", a.handleGetGlassType)
	mux.Put("/api/v0/catalog/glass-types/{id}", a.handleUpdateGlassType)
	mux.Delete("/api/v0/catalog/glass-types/{id}", a.handleDeleteGlassType)

	mux.Get("/api/v0/catalog/rates/lookup", a.handleLookupRate)
	mux.Get("/api/v0/catalog/rates/{kind}", a.handleListRates)
	mux.Post("/api/v0/catalog/rates/{kind}", a.handleCreateRate)
	mux.Put("/api/v0/catalog/rates/{kind}/{id}", a.handleUpdateRate)
	mux.Delete("/api/v0/catalog/rates/{kind}/{id}", a.handleDeleteRate)

	mux.Get("/api/v0/catalog/operations", a.handleListOperations)
	mux.Post("/api/v0/catalog/operations", a.handleCreateOperation)
	mux.Put("/api/v0/catalog/operations/{id}", a.handleUpdateOperation)
	mux.Delete("/api/v0/catalog/operations/{id}", a.handleDeleteOperation)
}

func (a *API) handleListGlassTypes(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	glass, err := a.service.ListGlassTypes(r.Context(), activeOnly)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, glass)
}

func (a *API) handleCreateGlassType(w http.ResponseWriter, r *http.Request) {
	var req GlassTypeRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	g, err := a.service.CreateGlassType(r.Context(), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusCreated, g)
}

func (a *API) handleGetGlassType(w http.ResponseWriter, r *http.Request) {
	g, err := a.service.GetGlassType(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, g)
}

func (a *API) handleUpdateGlassType(w http.ResponseWriter, r *http.Request) {
	var req GlassTypeRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	g, err := a.service.UpdateGlassType(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, g)
}

func (a *API) handleDeleteGlassType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.service.DeleteGlassType(r.Context(), id); err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, map[string]string{"id": id})
}

func (a *API) handleLookupRate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	thickness, err := strconv.ParseFloat(q.Get("thickness"), 64)
	if err != nil || thickness <= 0 {
		a.responder.Error(w, r, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "thickness"}))
		return
	}

	lookup, err := a.service.LookupRate(r.Context(), types.TreatmentType(strings.ToUpper(q.Get("treatment"))), thickness)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, map[string]interface{}{
		"rate":     lookup.Rate,
		"fallback": lookup.Fallback,
	})
}

func (a *API) handleListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := a.service.ListRates(r.Context(), rateKind(r))
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, rates)
}

func (a *API) handleCreateRate(w http.ResponseWriter, r *http.Request) {
	var req RateRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	rate, err := a.service.CreateRate(r.Context(), rateKind(r), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusCreated, rate)
}

func (a *API) handleUpdateRate(w http.ResponseWriter, r *http.Request) {
	var req RateRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	rate, err := a.service.UpdateRate(r.Context(), rateKind(r), chi.URLParam(r, "id"), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, rate)
}

func (a *API) handleDeleteRate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.service.DeleteRate(r.Context(), rateKind(r), id); err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, map[string]string{"id": id})
}

func (a *API) handleListOperations(w http.ResponseWriter, r *http.Request) {
	prices, err := a.service.ListOperationPrices(r.Context())
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, prices)
}

func (a *API) handleCreateOperation(w http.ResponseWriter, r *http.Request) {
	var req OperationPriceRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	o, err := a.service.CreateOperationPrice(r.Context(), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusCreated, o)
}

func (a *API) handleUpdateOperation(w http.ResponseWriter, r *http.Request) {
	var req OperationPriceRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	o, err := a.service.UpdateOperationPrice(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, o)
}

func (a *API) handleDeleteOperation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.service.DeleteOperationPrice(r.Context(), id); err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, map[string]string{"id": id})
}

// rateKind reads the rate table from the path, lower case is accepted.
func rateKind(r *http.Request) types.RateKind {
	return types.RateKind(strings.ToUpper(chi.URLParam(r, "kind")))
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
