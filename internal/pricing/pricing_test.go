// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/types"
	"github.com/canonical/glassworks-service/internal/units"
)

func ptr(v float64) *float64 {
	return &v
}

func areaGlass() *types.GlassType {
	return &types.GlassType{ID: "g1", Name: "clear", Thickness: 6, UnitPrice: 100, PricingMethod: types.PricingArea, Active: true}
}

func bevelingTable(rate float64) *RateTable {
	return NewRateTable(
		[]*types.ThicknessRate{
			{ID: "r1", Kind: types.RateBeveling, MinThickness: 4, MaxThickness: 8, PricePerMeter: rate, Active: true},
		},
		nil,
	)
}

func TestRound2(t *testing.T) {
	testCases := []struct {
		in       float64
		expected float64
	}{
		{in: 1.005, expected: 1.01},
		{in: 2.675, expected: 2.68},
		{in: -1.005, expected: -1.01},
		{in: 199.999, expected: 200},
		{in: 0.1 + 0.2, expected: 0.3},
		{in: 12, expected: 12},
	}

	for _, test := range testCases {
		got := Round2(test.in)
		assert.Equal(t, test.expected, got)
		assert.Equal(t, got, Round2(got), "round2 must be idempotent")
	}
}

func TestSumAndSub(t *testing.T) {
	assert.Equal(t, 0.3, Sum(0.1, 0.2))
	assert.Equal(t, 0.0, Sum())
	assert.Equal(t, 99.99, Sub(100, 0.01))
	assert.True(t, Settled(0.01))
	assert.False(t, Settled(0.02))
}

func TestCalculateLineGlassOnly(t *testing.T) {
	res, err := CalculateLine(LineInput{GlassType: areaGlass(), Width: 2, Height: 1, Unit: units.Meter}, nil)

	require.NoError(t, err)
	assert.Equal(t, 200.0, res.GlassCost)
	assert.Equal(t, 200.0, res.Total)
	assert.Equal(t, 1, res.Quantity)
	assert.Empty(t, res.Operations)
}

func TestCalculateLineFullFrameBeveling(t *testing.T) {
	in := LineInput{
		GlassType: areaGlass(),
		Width:     2,
		Height:    1,
		Unit:      units.Meter,
		Operations: []OperationInput{
			{Type: types.TreatmentBeveling, Method: "FULL_FRAME"},
		},
	}

	res, err := CalculateLine(in, bevelingTable(10))

	require.NoError(t, err)
	require.Len(t, res.Operations, 1)
	assert.Equal(t, 12.0, res.Operations[0].Meters)
	assert.Equal(t, 120.0, res.Operations[0].Cost)
	assert.False(t, res.Operations[0].RateFallback)
	assert.Equal(t, 320.0, res.Total)
}

func TestCalculateLineUnitsAndLength(t *testing.T) {
	glass := &types.GlassType{Thickness: 4, UnitPrice: 30, PricingMethod: types.PricingLength}

	res, err := CalculateLine(LineInput{GlassType: glass, Width: 150, Height: 40, Unit: units.Centimeter, Quantity: 3}, nil)

	require.NoError(t, err)
	assert.InDelta(t, 1.5, res.LengthM, 1e-9)
	assert.Equal(t, 135.0, res.GlassCost)
}

func TestCalculateLineOperations(t *testing.T) {
	table := NewRateTable(
		[]*types.ThicknessRate{
			{ID: "l1", Kind: types.RateLaser, MinThickness: 0, MaxThickness: 10, PricePerMeter: 7.5, Active: true},
			{ID: "b1", Kind: types.RateBeveling, MinThickness: 0, MaxThickness: 10, PricePerMeter: 99, Active: false},
		},
		[]*types.OperationPrice{
			{ID: "o1", Category: "SANDING", Subtype: "frosted", Price: 40, Active: true},
		},
	)

	testCases := []struct {
		name         string
		op           OperationInput
		expectedCost float64
		fallback     bool
	}{
		{
			name:         "laser uses the banded rate",
			op:           OperationInput{Type: types.TreatmentLaser, Method: "STRAIGHT"},
			expectedCost: 15,
		},
		{
			name:         "inactive band falls back to the default",
			op:           OperationInput{Type: types.TreatmentBeveling, Method: "STRAIGHT"},
			expectedCost: 30,
			fallback:     true,
		},
		{
			name:         "manual meters override the formula",
			op:           OperationInput{Type: types.TreatmentLaser, Method: "FULL_FRAME", ManualMeters: ptr(2)},
			expectedCost: 15,
		},
		{
			name:         "panels use manual meters",
			op:           OperationInput{Type: types.TreatmentLaser, Method: "PANELS", ManualMeters: ptr(4)},
			expectedCost: 30,
		},
		{
			name:         "circle diameter is converted from the line unit",
			op:           OperationInput{Type: types.TreatmentLaser, Method: "CIRCLE", Diameter: ptr(1)},
			expectedCost: 45,
		},
		{
			name:         "sanding is priced by area",
			op:           OperationInput{Type: types.TreatmentSanding, Subtype: "frosted"},
			expectedCost: 80,
		},
		{
			name:         "unknown sanding subtype falls back",
			op:           OperationInput{Type: types.TreatmentSanding, Subtype: "matte"},
			expectedCost: 100,
			fallback:     true,
		},
		{
			name:         "manual price is taken as is",
			op:           OperationInput{Type: types.TreatmentManual, ManualPrice: ptr(12.345)},
			expectedCost: 12.35,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			in := LineInput{GlassType: areaGlass(), Width: 2, Height: 1, Unit: units.Meter, Operations: []OperationInput{test.op}}

			res, err := CalculateLine(in, table)

			require.NoError(t, err)
			require.Len(t, res.Operations, 1)
			assert.Equal(t, test.expectedCost, res.Operations[0].Cost)
			assert.Equal(t, test.fallback, res.Operations[0].RateFallback)
			assert.Equal(t, Round2(res.GlassCost+test.expectedCost), res.Total)
			if test.fallback {
				assert.Equal(t, []types.TreatmentType{test.op.Type}, res.Fallbacks)
			}
		})
	}
}

func TestCalculateLineErrors(t *testing.T) {
	testCases := []struct {
		name     string
		in       LineInput
		expected error
	}{
		{
			name:     "missing glass type",
			in:       LineInput{Width: 1, Height: 1, Unit: units.Meter},
			expected: errorx.ErrRequiredField,
		},
		{
			name:     "zero width",
			in:       LineInput{GlassType: areaGlass(), Width: 0, Height: 1, Unit: units.Meter},
			expected: errorx.ErrInvalidDimensions,
		},
		{
			name:     "unknown unit",
			in:       LineInput{GlassType: areaGlass(), Width: 1, Height: 1, Unit: "yard"},
			expected: errorx.ErrUnknownUnit,
		},
		{
			name:     "negative quantity",
			in:       LineInput{GlassType: areaGlass(), Width: 1, Height: 1, Unit: units.Meter, Quantity: -1},
			expected: errorx.ErrNegativeValue,
		},
		{
			name: "beveling without method",
			in: LineInput{GlassType: areaGlass(), Width: 1, Height: 1, Unit: units.Meter, Operations: []OperationInput{
				{Type: types.TreatmentBeveling},
			}},
			expected: errorx.ErrMissingMethod,
		},
		{
			name: "unknown method",
			in: LineInput{GlassType: areaGlass(), Width: 1, Height: 1, Unit: units.Meter, Operations: []OperationInput{
				{Type: types.TreatmentLaser, Method: "ZIGZAG"},
			}},
			expected: errorx.ErrUnknownMethod,
		},
		{
			name: "manual without price",
			in: LineInput{GlassType: areaGlass(), Width: 1, Height: 1, Unit: units.Meter, Operations: []OperationInput{
				{Type: types.TreatmentManual},
			}},
			expected: errorx.ErrMissingManualPrice,
		},
		{
			name: "manual method without meters",
			in: LineInput{GlassType: areaGlass(), Width: 1, Height: 1, Unit: units.Meter, Operations: []OperationInput{
				{Type: types.TreatmentBeveling, Method: "MANUAL"},
			}},
			expected: errorx.ErrMissingManualMeters,
		},
		{
			name: "circle without diameter",
			in: LineInput{GlassType: areaGlass(), Width: 1, Height: 1, Unit: units.Meter, Operations: []OperationInput{
				{Type: types.TreatmentBeveling, Method: "CIRCLE"},
			}},
			expected: errorx.ErrInvalidDiameter,
		},
		{
			name: "negative manual price",
			in: LineInput{GlassType: areaGlass(), Width: 1, Height: 1, Unit: units.Meter, Operations: []OperationInput{
				{Type: types.TreatmentManual, ManualPrice: ptr(-1)},
			}},
			expected: errorx.ErrNegativeValue,
		},
		{
			name: "unknown treatment",
			in: LineInput{GlassType: areaGlass(), Width: 1, Height: 1, Unit: units.Meter, Operations: []OperationInput{
				{Type: "POLISH"},
			}},
			expected: errorx.ErrUnknownTreatment,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			res, err := CalculateLine(test.in, nil)

			assert.Nil(t, res)
			assert.True(t, errors.Is(err, test.expected), "expected %v got %v", test.expected, err)
		})
	}
}

func TestCalculateInvoice(t *testing.T) {
	lines := []LineInput{
		{GlassType: areaGlass(), Width: 2, Height: 1, Unit: units.Meter},
		{GlassType: areaGlass(), Width: 1000, Height: 500, Unit: units.Millimeter, Quantity: 2},
	}

	res, err := CalculateInvoice(lines, nil)

	require.NoError(t, err)
	assert.Len(t, res.Lines, 2)
	assert.Equal(t, 300.0, res.Total)

	_, err = CalculateInvoice(nil, nil)
	assert.ErrorIs(t, err, errorx.ErrEmptyInvoice)
}

func TestRateTableAndOverlap(t *testing.T) {
	rates := []*types.ThicknessRate{
		{ID: "a", Kind: types.RateLaser, MinThickness: 0, MaxThickness: 5, PricePerMeter: 10, Active: true},
		{ID: "b", Kind: types.RateLaser, MinThickness: 6, MaxThickness: 10, PricePerMeter: 12, Active: true},
		{ID: "c", Kind: types.RateLaser, MinThickness: 11, MaxThickness: 20, PricePerMeter: 14, Active: false},
	}

	table := NewRateTable(rates, nil)
	assert.Equal(t, RateLookup{Rate: 10}, table.Resolve(types.TreatmentLaser, "", 5))
	assert.Equal(t, RateLookup{Rate: 12}, table.Resolve(types.TreatmentLaser, "", 6))
	assert.Equal(t, RateLookup{Rate: 20, Fallback: true}, table.Resolve(types.TreatmentLaser, "", 15))

	testCases := []struct {
		name      string
		min, max  float64
		excludeID string
		expected  string
	}{
		{name: "touching lower bound overlaps", min: 5, max: 5.5, expected: "a"},
		{name: "gap between bands is free", min: 5.1, max: 5.9},
		{name: "inactive bands are ignored", min: 12, max: 15},
		{name: "the row being updated is ignored", min: 1, max: 4, excludeID: "a"},
		{name: "spanning band overlaps", min: 0, max: 30, expected: "a"},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			found := FindOverlap(rates, test.excludeID, test.min, test.max)
			if test.expected == "" {
				assert.Nil(t, found)
				return
			}
			require.NotNil(t, found)
			assert.Equal(t, test.expected, found.ID)
		})
	}
}
