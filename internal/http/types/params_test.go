// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/canonical/glassworks-service/internal/errorx"
)

func TestDateRange(t *testing.T) {
	testCases := []struct {
		name        string
		query       string
		from        string
		to          string
		expectedErr error
	}{
		{name: "empty"},
		{name: "dates", query: "?from=2026-01-01&to=2026-01-31", from: "2026-01-01T00:00:00Z", to: "2026-01-31T23:59:59.999999999Z"},
		{name: "timestamps", query: "?from=2026-01-01T10:00:00Z", from: "2026-01-01T10:00:00Z"},
		{name: "invalid", query: "?to=yesterday", expectedErr: errorx.ErrInvalidValue},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/"+tc.query, nil)

			from, to, err := DateRange(r)
			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			check := func(label string, got *time.Time, expected string) {
				if expected == "" {
					if got != nil {
						t.Errorf("expected no %s, got %v", label, got)
					}
					return
				}
				if got == nil || got.Format(time.RFC3339Nano) != expected {
					t.Errorf("expected %s %s, got %v", label, expected, got)
				}
			}
			check("from", from, tc.from)
			check("to", to, tc.to)
		})
	}
}
