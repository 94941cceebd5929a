// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/canonical/glassworks-service/internal/logging"
)

const Path = "/api/v0/metrics"

type API struct {
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Handle(Path, promhttp.Handler())
}

func NewAPI(logger logging.LoggerInterface) *API {
	return &API{logger: logger}
}
