// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package pricing computes invoice line costs. Everything here is free of
// side effects so the same code serves live previews and invoice creation.
package pricing

import (
	"math"

	"github.com/canonical/glassworks-service/internal/beveling"
	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/types"
	"github.com/canonical/glassworks-service/internal/units"
)

type OperationInput struct {
	Type    types.TreatmentType `json:"type" validate:"required,oneof=BEVELING LASER SANDING MANUAL"`
	Method  string              `json:"method,omitempty"`
	Subtype string              `json:"subtype,omitempty"`
	// Diameter is expressed in the unit of the line.
	Diameter     *float64 `json:"diameter,omitempty"`
	ManualMeters *float64 `json:"manual_meters,omitempty"`
	ManualPrice  *float64 `json:"manual_price,omitempty"`
}

type LineInput struct {
	GlassType  *types.GlassType
	Width      float64
	Height     float64
	Unit       units.Unit
	Quantity   int
	Operations []OperationInput
}

type LineResult struct {
	AreaM2         float64               `json:"area_m2"`
	LengthM        float64               `json:"length_m"`
	Quantity       int                   `json:"quantity"`
	GlassCost      float64               `json:"glass_cost"`
	OperationsCost float64               `json:"operations_cost"`
	Total          float64               `json:"total"`
	Operations     []types.LineOperation `json:"operations"`
	Fallbacks      []types.TreatmentType `json:"fallbacks,omitempty"`
}

type InvoiceResult struct {
	Lines []*LineResult `json:"lines"`
	Total float64       `json:"total"`
}

// CalculateLine prices one line: the glass itself plus every operation, each
// cost rounded to two decimals before summing.
func CalculateLine(in LineInput, rates RateResolver) (*LineResult, error) {
	if in.GlassType == nil {
		return nil, errorx.ErrRequiredField.WithData(map[string]interface{}{"field": "glass_type_id"})
	}
	if in.Width <= 0 || in.Height <= 0 {
		return nil, errorx.ErrInvalidDimensions
	}
	if in.Quantity < 0 {
		return nil, errorx.ErrNegativeValue.WithData(map[string]interface{}{"field": "quantity"})
	}
	if rates == nil {
		rates = new(RateTable)
	}

	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}

	area, err := units.AreaM2(in.Width, in.Height, in.Unit)
	if err != nil {
		return nil, err
	}
	length, err := units.LengthM(in.Width, in.Height, in.Unit)
	if err != nil {
		return nil, err
	}

	measure := area
	if in.GlassType.PricingMethod == types.PricingLength {
		measure = length
	}

	res := &LineResult{
		AreaM2:    area,
		LengthM:   length,
		Quantity:  quantity,
		GlassCost: Mul(measure, in.GlassType.UnitPrice, float64(quantity)),
	}

	// L is the longer side, W the shorter one
	w, _ := units.ToMeters(math.Min(in.Width, in.Height), in.Unit)

	opCosts := make([]float64, 0, len(in.Operations))
	for _, op := range in.Operations {
		priced, err := calculateOperation(op, in, area, length, w, quantity, rates)
		if err != nil {
			return nil, err
		}
		if priced.RateFallback {
			res.Fallbacks = append(res.Fallbacks, priced.Type)
		}
		res.Operations = append(res.Operations, *priced)
		opCosts = append(opCosts, priced.Cost)
	}

	res.OperationsCost = Sum(opCosts...)
	res.Total = Sum(append(opCosts, res.GlassCost)...)

	return res, nil
}

func calculateOperation(op OperationInput, in LineInput, area, length, width float64, quantity int, rates RateResolver) (*types.LineOperation, error) {
	if err := validateOperation(op); err != nil {
		return nil, err
	}

	out := &types.LineOperation{
		Type:         op.Type,
		Method:       op.Method,
		Diameter:     op.Diameter,
		ManualMeters: op.ManualMeters,
		ManualPrice:  op.ManualPrice,
	}

	switch op.Type {
	case types.TreatmentManual:
		if op.ManualPrice == nil {
			return nil, errorx.ErrMissingManualPrice
		}
		out.Cost = Mul(*op.ManualPrice, float64(quantity))
		return out, nil

	case types.TreatmentSanding:
		lookup := rates.Resolve(op.Type, op.Subtype, in.GlassType.Thickness)
		out.Meters = area
		out.Rate = lookup.Rate
		out.RateFallback = lookup.Fallback
		out.Cost = Mul(area, lookup.Rate, float64(quantity))
		return out, nil

	case types.TreatmentBeveling, types.TreatmentLaser:
		if op.Method == "" {
			return nil, errorx.ErrMissingMethod.WithData(map[string]interface{}{"treatment": string(op.Type)})
		}
		method, err := beveling.ParseMethod(op.Method)
		if err != nil {
			return nil, err
		}

		meters, err := edgeMeters(method, op, in.Unit, length, width)
		if err != nil {
			return nil, err
		}

		lookup := rates.Resolve(op.Type, op.Subtype, in.GlassType.Thickness)
		out.Meters = meters
		out.Rate = lookup.Rate
		out.RateFallback = lookup.Fallback
		out.Cost = Mul(meters, lookup.Rate, float64(quantity))
		return out, nil
	}

	return nil, errorx.ErrUnknownTreatment.WithData(map[string]interface{}{"treatment": string(op.Type)})
}

func edgeMeters(method beveling.Method, op OperationInput, unit units.Unit, length, width float64) (float64, error) {
	if op.ManualMeters != nil {
		return *op.ManualMeters, nil
	}
	if beveling.RequiresManualMeters(method) {
		return 0, errorx.ErrMissingManualMeters
	}

	var diameter float64
	if op.Diameter != nil {
		d, err := units.ToMeters(*op.Diameter, unit)
		if err != nil {
			return 0, err
		}
		diameter = d
	}

	return beveling.EdgeLength(method, length, width, diameter)
}

func validateOperation(op OperationInput) error {
	negative := func(field string, v *float64) error {
		if v != nil && *v < 0 {
			return errorx.ErrNegativeValue.WithData(map[string]interface{}{"field": field})
		}
		return nil
	}

	if err := negative("manual_price", op.ManualPrice); err != nil {
		return err
	}
	if err := negative("manual_meters", op.ManualMeters); err != nil {
		return err
	}
	return negative("diameter", op.Diameter)
}

// CalculateInvoice prices every line and totals them.
func CalculateInvoice(lines []LineInput, rates RateResolver) (*InvoiceResult, error) {
	if len(lines) == 0 {
		return nil, errorx.ErrEmptyInvoice
	}

	res := &InvoiceResult{Lines: make([]*LineResult, 0, len(lines))}
	totals := make([]float64, 0, len(lines))

	for _, l := range lines {
		lr, err := CalculateLine(l, rates)
		if err != nil {
			return nil, err
		}
		res.Lines = append(res.Lines, lr)
		totals = append(totals, lr.Total)
	}

	res.Total = Sum(totals...)

	return res, nil
}
