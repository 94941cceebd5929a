// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invoices

import (
	"github.com/canonical/glassworks-service/internal/pricing"
)

type LineRequest struct {
	GlassTypeID string                   `json:"glass_type_id" validate:"required"`
	Width       float64                  `json:"width" validate:"gt=0"`
	Height      float64                  `json:"height" validate:"gt=0"`
	Unit        string                   `json:"unit" validate:"required,oneof=mm cm m inch"`
	Quantity    int                      `json:"quantity" validate:"gte=0"`
	Notes       string                   `json:"notes,omitempty"`
	Operations  []pricing.OperationInput `json:"operations" validate:"dive"`
}

type PreviewRequest struct {
	Lines []LineRequest `json:"lines" validate:"required,min=1,dive"`
}

type CreateInvoiceRequest struct {
	CustomerID    string        `json:"customer_id" validate:"required"`
	Lines         []LineRequest `json:"lines" validate:"required,min=1,dive"`
	AmountPaidNow float64       `json:"amount_paid_now" validate:"gte=0"`
	Notes         string        `json:"notes,omitempty"`
}

type LineStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING IN_PROGRESS COMPLETED"`
}
