// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package files

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/glassworks-service/internal/http/types"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
)

// PublicPaths are authenticated by the signed token in the query string.
var PublicPaths = []string{
	"/api/v0/files/upload",
	"/api/v0/files/download",
}

type API struct {
	service   ServiceInterface
	responder *httptypes.Responder

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/files/upload-url", a.handleUploadURL)
	mux.Put("/api/v0/files/upload", a.handleUpload)
	mux.Get("/api/v0/files/download", a.handleDownload)
	mux.Get("/api/v0/files/{id}/download-url", a.handleDownloadURL)
}

func (a *API) handleUploadURL(w http.ResponseWriter, r *http.Request) {
	var req UploadURLRequest
	if !a.responder.Decode(w, r, &req) {
		return
	}

	signed, err := a.service.RequestUpload(r.Context(), &req)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusCreated, signed)
}

func (a *API) handleUpload(w http.ResponseWriter, r *http.Request) {
	f, err := a.service.Upload(r.Context(), r.URL.Query().Get("token"), r.Header.Get("Content-Type"), r.Body)
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusCreated, f)
}

func (a *API) handleDownloadURL(w http.ResponseWriter, r *http.Request) {
	signed, err := a.service.RequestDownload(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	a.responder.JSON(w, http.StatusOK, signed)
}

func (a *API) handleDownload(w http.ResponseWriter, r *http.Request) {
	f, err := a.service.Download(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		a.responder.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Data)))
	w.Header().Set("Cache-Control", "private, max-age=300")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(f.Data); err != nil {
		a.logger.Debugf("failed to write file %s: %v", f.ID, err)
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
