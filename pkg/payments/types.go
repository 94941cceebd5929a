// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"time"
)

// PaymentRequest records money received from a customer, optionally against
// one invoice. PaidAt defaults to now.
type PaymentRequest struct {
	CustomerID string     `json:"customer_id" validate:"required"`
	InvoiceID  string     `json:"invoice_id,omitempty"`
	Amount     float64    `json:"amount" validate:"gt=0"`
	Method     string     `json:"method" validate:"required,oneof=CASH CARD TRANSFER CHEQUE"`
	Notes      string     `json:"notes,omitempty"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
}
