// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/types"
)

const delta = 1e-9

func TestToMeters(t *testing.T) {
	tests := []struct {
		value    float64
		unit     Unit
		expected float64
	}{
		{value: 1500, unit: Millimeter, expected: 1.5},
		{value: 250, unit: Centimeter, expected: 2.5},
		{value: 3, unit: Meter, expected: 3},
		{value: 10, unit: Inch, expected: 0.254},
	}

	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			got, err := ToMeters(tt.value, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, delta)

			back, err := FromMeters(got, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.value, back, 1e-6)
		})
	}
}

func TestUnknownUnit(t *testing.T) {
	_, err := ToMeters(1, Unit("ft"))
	assert.ErrorIs(t, err, errorx.ErrUnknownUnit)

	_, err = AreaM2(1, 1, Unit(""))
	assert.ErrorIs(t, err, errorx.ErrUnknownUnit)
}

func TestAreaAndLength(t *testing.T) {
	area, err := AreaM2(2000, 1000, Millimeter)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, area, delta)

	length, err := LengthM(120, 300, Centimeter)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, length, delta)
}

func TestMeasure(t *testing.T) {
	area, err := Measure(types.PricingArea, 2, 1, Meter)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, area, delta)

	length, err := Measure(types.PricingLength, 2, 1, Meter)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, length, delta)

	_, err = Measure(types.PricingMethod("VOLUME"), 2, 1, Meter)
	assert.ErrorIs(t, err, errorx.ErrInvalidValue)
}
