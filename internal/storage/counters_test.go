// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import "testing"

func TestFormatCounter(t *testing.T) {
	testCases := []struct {
		prefix   string
		value    int64
		expected string
	}{
		{"INV", 1, "INV-000001"},
		{"PJ", 42, "PJ-000042"},
		{"INV", 1234567, "INV-1234567"},
	}

	for _, tc := range testCases {
		if got := FormatCounter(tc.prefix, tc.value); got != tc.expected {
			t.Errorf("expected %s, got %s", tc.expected, got)
		}
	}
}
