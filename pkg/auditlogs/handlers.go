// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auditlogs

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
	mux.Get("/api/v0/audit-logs", a.handleTenant)
	mux.Get("/api/v0/admin/audit-logs", a.handlePlatform)
}

func (a *API) handleTenant(w http.ResponseWriter, r *http.Request) {
	filter := auditFilter(r)

	logs, err := a.service.ListTenantLogs(r.Context(), filter)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.Page(w, logs, filter.Page, filter.Size)
}

func (a *API) handlePlatform(w http.ResponseWriter, r *http.Request) {
	filter := auditFilter(r)

	logs, err := a.service.ListPlatformLogs(r.Context(), filter)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.Page(w, logs, filter.Page, filter.Size)
}

func auditFilter(r *http.Request) types.AuditFilter {
	q := r.URL.Query()
	page, size := httptypes.PageParams(r)

	return types.AuditFilter{
		EntityType: q.Get("entity_type"),
		EntityID:   q.Get("entity_id"),
		Action:     q.Get("action"),
		Page:       page,
		Size:       size,
	}
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
