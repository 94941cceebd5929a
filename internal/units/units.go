// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package units converts shop floor measurements to meters and derives the
// billable quantity of a piece.
package units

import (
	"math"

	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/types"
)

type Unit string

const (
	Millimeter Unit = "mm"
	Centimeter Unit = "cm"
	Meter      Unit = "m"
	Inch       Unit = "inch"
)

var factors = map[Unit]float64{
	Millimeter: 0.001,
	Centimeter: 0.01,
	Meter:      1,
	Inch:       0.0254,
}

func (u Unit) Valid() bool {
	_, ok := factors[u]
	return ok
}

func factor(u Unit) (float64, error) {
	f, ok := factors[u]
	if !ok {
		return 0, errorx.ErrUnknownUnit.WithData(map[string]interface{}{"unit": string(u)})
	}
	return f, nil
}

func ToMeters(value float64, u Unit) (float64, error) {
	f, err := factor(u)
	if err != nil {
		return 0, err
	}
	return value * f, nil
}

func FromMeters(value float64, u Unit) (float64, error) {
	f, err := factor(u)
	if err != nil {
		return 0, err
	}
	return value / f, nil
}

// AreaM2 converts both sides to meters and multiplies them.
func AreaM2(width, height float64, u Unit) (float64, error) {
	w, err := ToMeters(width, u)
	if err != nil {
		return 0, err
	}
	h, err := ToMeters(height, u)
	if err != nil {
		return 0, err
	}
	return w * h, nil
}

// LengthM is the longer side in meters, used for stock billed per linear meter.
func LengthM(width, height float64, u Unit) (float64, error) {
	w, err := ToMeters(width, u)
	if err != nil {
		return 0, err
	}
	h, err := ToMeters(height, u)
	if err != nil {
		return 0, err
	}
	return math.Max(w, h), nil
}

// Measure returns the billable quantity of one piece for the pricing method.
func Measure(method types.PricingMethod, width, height float64, u Unit) (float64, error) {
	switch method {
	case types.PricingArea:
		return AreaM2(width, height, u)
	case types.PricingLength:
		return LengthM(width, height, u)
	default:
		return 0, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "pricing_method"})
	}
}
