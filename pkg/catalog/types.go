// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

type GlassTypeRequest struct {
	Name          string  `json:"name" validate:"required"`
	Thickness     float64 `json:"thickness" validate:"gt=0"`
	Color         string  `json:"color,omitempty"`
	UnitPrice     float64 `json:"unit_price" validate:"gte=0"`
	PricingMethod string  `json:"pricing_method" validate:"required,oneof=AREA LENGTH"`
	Active        *bool   `json:"active,omitempty"`
}

type RateRequest struct {
	MinThickness  float64 `json:"min_thickness" validate:"gte=0"`
	MaxThickness  float64 `json:"max_thickness" validate:"gte=0"`
	PricePerMeter float64 `json:"price_per_meter" validate:"gte=0"`
	Active        *bool   `json:"active,omitempty"`
}

type OperationPriceRequest struct {
	Category string  `json:"category" validate:"required"`
	Subtype  string  `json:"subtype,omitempty"`
	Price    float64 `json:"price" validate:"gte=0"`
	Unit     string  `json:"unit,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

func activeOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
