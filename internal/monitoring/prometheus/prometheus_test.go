// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/canonical/glassworks-service/internal/logging"
)

func TestMonitor_IncDomainEvent(t *testing.T) {
	m := NewMonitor("glassworks-test", logging.NewNoopLogger())

	tags := map[string]string{"event": "rate_fallback", "detail": "LASER"}
	for i := 0; i < 3; i++ {
		if err := m.IncDomainEvent(tags); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := testutil.ToFloat64(m.domainEvents.WithLabelValues("rate_fallback", "LASER")); got != 3 {
		t.Errorf("expected counter to be 3, got %v", got)
	}
}

func TestMonitor_SetResponseTimeMetric(t *testing.T) {
	m := NewMonitor("glassworks-test", logging.NewNoopLogger())

	err := m.SetResponseTimeMetric(map[string]string{"route": "GET/api/v0/status", "status": "200"}, 0.1)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if m.GetService() != "glassworks-test" {
		t.Errorf("unexpected service %s", m.GetService())
	}
}

func TestMonitor_Uninstantiated(t *testing.T) {
	m := new(Monitor)

	if err := m.SetDependencyAvailability(map[string]string{"component": "db"}, 1); err == nil {
		t.Error("expected error for uninstantiated metric")
	}
}
