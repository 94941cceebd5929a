// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/glassworks-service/internal/errorx"
	httptypes "github.com/canonical/glassworks-service/internal/http/types"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
)

// PathPrefix is served without bearer authentication, the identity stack
// calls these routes directly.
const PathPrefix = "/webhooks"

type API struct {
	service   ServiceInterface
	responder *httptypes.Responder

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post(PathPrefix+"/registration", a.handleRegistration)
	mux.Post(PathPrefix+"/token", a.handleTokenHook)
}

func (a *API) handleRegistration(w http.ResponseWriter, r *http.Request) {
	var identity KratosIdentity
	if !a.responder.Decode(w, r, &identity) {
		return
	}

	a.logger.Debugf("registration hook for identity %s", identity.ID)

	user, err := a.service.HandleRegistration(r.Context(), &identity)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, user)
}

func (a *API) handleTokenHook(w http.ResponseWriter, r *http.Request) {
	req := new(oauth2.TokenHookRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.logger.Errorf("failed to decode token hook request: %v", err)
		a.responder.Error(w, r, errorx.ErrInvalidInput.Wrap(err))
		return
	}

	resp, err := a.service.HandleTokenHook(r.Context(), req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	// Hydra reads the session at the top level, no envelope
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		a.logger.Errorf("failed to write token hook response: %v", err)
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
