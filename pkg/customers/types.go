// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package customers

// CustomerRequest carries the editable profile. Balance is only read on
// create as the opening balance.
type CustomerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Phone   string  `json:"phone,omitempty"`
	Address string  `json:"address,omitempty"`
	Type    string  `json:"customer_type" validate:"required,oneof=CASH REGULAR COMPANY"`
	Balance float64 `json:"balance,omitempty"`
	Notes   string  `json:"notes,omitempty"`
}
