// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invoices

import (
	"github.com/canonical/glassworks-service/internal/pricing"
	"github.com/canonical/glassworks-service/internal/types"
)

// DeriveWorkStatus folds the factory status of every line into the invoice
// status. Cancelled lines count as not started.
func DeriveWorkStatus(lines []types.WorkStatus) types.WorkStatus {
	if len(lines) == 0 {
		return types.WorkPending
	}

	completed := 0
	started := false
	for _, s := range lines {
		switch s {
		case types.WorkCompleted:
			completed++
			started = true
		case types.WorkInProgress:
			started = true
		}
	}

	switch {
	case completed == len(lines):
		return types.WorkCompleted
	case started:
		return types.WorkInProgress
	default:
		return types.WorkPending
	}
}

// LineStatuses collects the status of each line in order.
func LineStatuses(lines []*types.InvoiceLine) []types.WorkStatus {
	statuses := make([]types.WorkStatus, 0, len(lines))
	for _, l := range lines {
		statuses = append(statuses, l.Status)
	}
	return statuses
}

// PaymentStatus reports PAID once the remaining balance is within a cent of zero.
func PaymentStatus(remaining float64) types.InvoiceStatus {
	if pricing.Settled(remaining) {
		return types.InvoicePaid
	}
	return types.InvoicePending
}
