// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package printjobs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/canonical/glassworks-service/internal/types"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		from     types.PrintJobStatus
		to       types.PrintJobStatus
		expected bool
	}{
		{types.PrintQueued, types.PrintProcessing, true},
		{types.PrintProcessing, types.PrintPrinting, true},
		{types.PrintPrinting, types.PrintPrinted, true},
		{types.PrintQueued, types.PrintFailed, true},
		{types.PrintProcessing, types.PrintFailed, true},
		{types.PrintPrinting, types.PrintFailed, true},
		{types.PrintFailed, types.PrintQueued, true},
		{types.PrintQueued, types.PrintPrinted, false},
		{types.PrintQueued, types.PrintPrinting, false},
		{types.PrintPrinting, types.PrintProcessing, false},
		{types.PrintPrinted, types.PrintFailed, false},
		{types.PrintPrinted, types.PrintQueued, false},
		{types.PrintFailed, types.PrintProcessing, false},
		{types.PrintFailed, types.PrintFailed, false},
		{types.PrintQueued, types.PrintQueued, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.expected, CanTransition(tc.from, tc.to))
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(types.PrintPrinted))
	assert.True(t, Terminal(types.PrintFailed))
	assert.False(t, Terminal(types.PrintQueued))
	assert.False(t, Terminal(types.PrintPrinting))
}
