// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package printjobs

import (
	"net/http"
	"strings"

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
	mux.Post("/api/v0/print-jobs", a.handleCreate)
	mux.Get("/api/v0/print-jobs", a.handleList)
	mux.Get("/api/v0/print-jobs/{id}", a.handleGet)
	mux.Put("/api/v0/print-jobs/{id}/status", a.handleStatus)
	mux.Put("/api/v0/print-jobs/{id}/pdf", a.handleAttachPDF)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req PrintJobRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	job, err := a.service.CreatePrintJob(r.Context(), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusCreated, job)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, size := httptypes.PageParams(r)

	jobs, err := a.service.ListPrintJobs(r.Context(), types.PrintJobFilter{
		InvoiceID: q.Get("invoice_id"),
		Status:    types.PrintJobStatus(strings.ToUpper(q.Get("status"))),
		Page:      page,
		Size:      size,
	})
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.Page(w, jobs, page, size)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	job, err := a.service.GetPrintJob(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, job)
}

func (a *API) handleStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	job, err := a.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, job)
}

func (a *API) handleAttachPDF(w http.ResponseWriter, r *http.Request) {
	var req AttachPDFRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	job, err := a.service.AttachPDF(r.Context(), chi.URLParam(r, "id"), req.FileID)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, job)
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
