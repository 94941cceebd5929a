// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

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
	mux.Post("/api/v0/payments", a.handleRecord)
	mux.Get("/api/v0/payments", a.handleList)
	mux.Get("/api/v0/payments/{id}", a.handleGet)
	mux.Delete("/api/v0/payments/{id}", a.handleDelete)
}

func (a *API) handleRecord(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	payment, err := a.service.RecordPayment(r.Context(), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusCreated, payment)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, size := httptypes.PageParams(r)

	payments, err := a.service.ListPayments(r.Context(), types.PaymentFilter{
		CustomerID: q.Get("customer_id"),
		InvoiceID:  q.Get("invoice_id"),
		Page:       page,
		Size:       size,
	})
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.Page(w, payments, page, size)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	payment, err := a.service.GetPayment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, payment)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.service.DeletePayment(r.Context(), id); err != nil {
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
