// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package printjobs

import (
	"slices"

	"github.com/canonical/glassworks-service/internal/types"
)

var transitions = map[types.PrintJobStatus][]types.PrintJobStatus{
	types.PrintQueued:     {types.PrintProcessing, types.PrintFailed},
	types.PrintProcessing: {types.PrintPrinting, types.PrintFailed},
	types.PrintPrinting:   {types.PrintPrinted, types.PrintFailed},
	types.PrintFailed:     {types.PrintQueued},
}

// CanTransition reports whether a job may move from one status to another.
// PRINTED is terminal, FAILED only goes back to the queue.
func CanTransition(from, to types.PrintJobStatus) bool {
	return slices.Contains(transitions[from], to)
}

// Terminal reports whether the job finished, successfully or not.
func Terminal(s types.PrintJobStatus) bool {
	return s == types.PrintPrinted || s == types.PrintFailed
}
