// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDailyAt_Next(t *testing.T) {
	schedule := DailyAt{Hour: 2}

	testCases := []struct {
		name     string
		after    time.Time
		expected time.Time
	}{
		{
			name:     "later the same day",
			after:    time.Date(2026, 5, 10, 1, 30, 0, 0, time.UTC),
			expected: time.Date(2026, 5, 10, 2, 0, 0, 0, time.UTC),
		},
		{
			name:     "exactly at the hour",
			after:    time.Date(2026, 5, 10, 2, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 5, 11, 2, 0, 0, 0, time.UTC),
		},
		{
			name:     "after the hour",
			after:    time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 5, 11, 2, 0, 0, 0, time.UTC),
		},
		{
			name:     "end of month",
			after:    time.Date(2026, 5, 31, 23, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 6, 1, 2, 0, 0, 0, time.UTC),
		},
		{
			name:     "local time is converted",
			after:    time.Date(2026, 5, 10, 4, 30, 0, 0, time.FixedZone("AST", 3*60*60)),
			expected: time.Date(2026, 5, 10, 2, 0, 0, 0, time.UTC),
		},
		{
			name:     "local date ahead of utc",
			after:    time.Date(2026, 5, 11, 1, 0, 0, 0, time.FixedZone("AST", 3*60*60)),
			expected: time.Date(2026, 5, 11, 2, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.expected.Equal(schedule.Next(tc.after)), "got %s", schedule.Next(tc.after))
		})
	}
}

func TestEvery_Next(t *testing.T) {
	after := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, after.Add(5*time.Minute), Every(5*time.Minute).Next(after))
}
