// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package printjobs

type PrintJobRequest struct {
	InvoiceID string `json:"invoice_id" validate:"required"`
	LineID    string `json:"line_id"`
	Type      string `json:"type" validate:"required,oneof=STICKER INVOICE FACTORY_ORDER"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=QUEUED PROCESSING PRINTING PRINTED FAILED"`
	Error  string `json:"error" validate:"max=500"`
}

type AttachPDFRequest struct {
	FileID string `json:"file_id" validate:"required"`
}
