// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invoices

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
	mux.Post("/api/v0/invoices/preview", a.handlePreview)
	mux.Post("/api/v0/invoices", a.handleCreate)
	mux.Get("/api/v0/invoices", a.handleList)
	mux.Get("/api/v0/invoices/{id}", a.handleGet)
	mux.Put("/api/v0/invoices/{id}/lines/{line_id}/status", a.handleLineStatus)
	mux.Post("/api/v0/invoices/{id}/cancel", a.handleCancel)
}

func (a *API) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	res, err := a.service.PreviewInvoice(r.Context(), req.Lines)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, res)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	inv, err := a.service.CreateInvoice(r.Context(), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusCreated, inv)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	from, to, err := httptypes.DateRange(r)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	q := r.URL.Query()
	page, size := httptypes.PageParams(r)
	filter := types.InvoiceFilter{
		CustomerID: q.Get("customer_id"),
		Status:     types.InvoiceStatus(q.Get("status")),
		WorkStatus: types.WorkStatus(q.Get("work_status")),
		From:       from,
		To:         to,
		Page:       page,
		Size:       size,
	}

	invoices, err := a.service.ListInvoices(r.Context(), filter)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.Page(w, invoices, page, size)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	inv, err := a.service.GetInvoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, inv)
}

func (a *API) handleLineStatus(w http.ResponseWriter, r *http.Request) {
	var req LineStatusRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	inv, err := a.service.UpdateLineStatus(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "line_id"), types.WorkStatus(req.Status))
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, inv)
}

func (a *API) handleCancel(w http.ResponseWriter, r *http.Request) {
	inv, err := a.service.CancelInvoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, inv)
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
