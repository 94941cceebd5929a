// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"net/http"

	"github.com/canonical/glassworks-service/internal/logging"
)

var errHandlerFailed = errors.New("handler responded with an error status")

// TransactionMiddleware runs every mutating request in one transaction,
// rolled back when the handler answers with a 4xx or 5xx status.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			err := db.WithTx(r.Context(), func(ctx context.Context) error {
				next.ServeHTTP(rec, r.WithContext(ctx))
				if rec.status >= http.StatusBadRequest {
					return errHandlerFailed
				}
				return nil
			})

			if err != nil && !errors.Is(err, errHandlerFailed) {
				logger.Errorf("transaction for %s %s not committed: %v", r.Method, r.URL.Path, err)
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
