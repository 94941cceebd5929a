// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"net/http"
	"time"

	"github.com/canonical/glassworks-service/internal/errorx"
)

const dateLayout = "2006-01-02"

// DateRange reads the optional from and to query parameters. Both accept a
// plain date or an RFC 3339 timestamp, a plain "to" date covers the whole day.
func DateRange(r *http.Request) (*time.Time, *time.Time, error) {
	from, err := parseDate(r, "from", false)
	if err != nil {
		return nil, nil, err
	}
	to, err := parseDate(r, "to", true)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func parseDate(r *http.Request, name string, endOfDay bool) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": name}).Wrap(err)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
