// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pricing

import (
	"github.com/canonical/glassworks-service/internal/types"
)

// DefaultRates apply when a tenant has not configured a matching rate yet.
var DefaultRates = map[types.TreatmentType]float64{
	types.TreatmentBeveling: 15,
	types.TreatmentLaser:    20,
	types.TreatmentSanding:  50,
}

// RateLookup is the outcome of resolving a rate, Fallback is set when no
// tenant row matched and a default was used.
type RateLookup struct {
	Rate     float64
	Fallback bool
}

// RateResolver resolves the rate of a treatment for a glass thickness.
type RateResolver interface {
	Resolve(treatment types.TreatmentType, subtype string, thickness float64) RateLookup
}

var _ RateResolver = (*RateTable)(nil)

// RateTable is a snapshot of the active rates of one tenant.
type RateTable struct {
	Laser      []*types.ThicknessRate
	Beveling   []*types.ThicknessRate
	Operations []*types.OperationPrice
}

// NewRateTable splits the thickness rates by kind and drops inactive rows.
func NewRateTable(rates []*types.ThicknessRate, operations []*types.OperationPrice) *RateTable {
	t := new(RateTable)

	for _, r := range rates {
		if !r.Active {
			continue
		}
		switch r.Kind {
		case types.RateLaser:
			t.Laser = append(t.Laser, r)
		case types.RateBeveling:
			t.Beveling = append(t.Beveling, r)
		}
	}

	for _, o := range operations {
		if o.Active {
			t.Operations = append(t.Operations, o)
		}
	}

	return t
}

// Resolve returns the per meter (or per square meter for area treatments)
// rate for the treatment at the given thickness in mm. Subtype narrows
// operation price lookups and is ignored for banded tables.
func (t *RateTable) Resolve(treatment types.TreatmentType, subtype string, thickness float64) RateLookup {
	switch treatment {
	case types.TreatmentLaser:
		if r := firstContaining(t.Laser, thickness); r != nil {
			return RateLookup{Rate: r.PricePerMeter}
		}
	case types.TreatmentBeveling:
		if r := firstContaining(t.Beveling, thickness); r != nil {
			return RateLookup{Rate: r.PricePerMeter}
		}
	default:
		for _, o := range t.Operations {
			if o.Category != string(treatment) {
				continue
			}
			if subtype == "" || o.Subtype == subtype {
				return RateLookup{Rate: o.Price}
			}
		}
	}

	return RateLookup{Rate: DefaultRates[treatment], Fallback: true}
}

func firstContaining(rates []*types.ThicknessRate, thickness float64) *types.ThicknessRate {
	for _, r := range rates {
		if r.Contains(thickness) {
			return r
		}
	}
	return nil
}

// FindOverlap returns the first active rate, other than excludeID, whose band
// intersects [min,max].
func FindOverlap(existing []*types.ThicknessRate, excludeID string, min, max float64) *types.ThicknessRate {
	for _, r := range existing {
		if !r.Active || r.ID == excludeID {
			continue
		}
		if r.Overlaps(min, max) {
			return r
		}
	}
	return nil
}
