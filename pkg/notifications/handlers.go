// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

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
	mux.Get("/api/v0/notifications", a.handleList)
	mux.Post("/api/v0/notifications", a.handleCreate)
	mux.Post("/api/v0/notifications/read-all", a.handleReadAll)
	mux.Post("/api/v0/notifications/{id}/read", a.handleRead)
	mux.Post("/api/v0/notifications/{id}/hide", a.handleHide)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	page, size := httptypes.PageParams(r)

	list, err := a.service.ListNotifications(r.Context(), r.URL.Query().Get("unread") == "true", page, size)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.Page(w, list, page, size)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req NotificationRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	n, err := a.service.CreateNotification(r.Context(), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusCreated, n)
}

func (a *API) handleReadAll(w http.ResponseWriter, r *http.Request) {
	n, err := a.service.MarkAllRead(r.Context())
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, map[string]int64{"updated": n})
}

func (a *API) handleRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.service.MarkRead(r.Context(), id); err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, map[string]string{"id": id})
}

func (a *API) handleHide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.service.Hide(r.Context(), id); err != nil {
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
