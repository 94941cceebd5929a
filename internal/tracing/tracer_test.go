// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
)

func TestNewNoopTracer(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.Test")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}
	if span.SpanContext().IsValid() {
		t.Error("noop tracer should not produce valid span contexts")
	}
}

func TestConfig_Sampler(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		contains string
	}{
		{name: "unset records everything", ratio: 0, contains: "AlwaysOnSampler"},
		{name: "one records everything", ratio: 1, contains: "AlwaysOnSampler"},
		{name: "fraction", ratio: 0.25, contains: "TraceIDRatioBased{0.25}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{SampleRatio: tt.ratio}

			if got := cfg.sampler().Description(); !strings.Contains(got, tt.contains) {
				t.Errorf("expected sampler %q to mention %q", got, tt.contains)
			}
		})
	}
}

func TestMiddleware_OpenTelemetry(t *testing.T) {
	logger := logging.NewNoopLogger()
	mdw := NewMiddleware(monitoring.NewNoopMonitor("test", logger), logger)

	handler := mdw.OpenTelemetry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

	if rr.Code != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
}
