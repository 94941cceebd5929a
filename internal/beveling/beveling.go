// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package beveling holds the edge length table of the beveling machine. Each
// method describes how many times the machine runs along the long side (L)
// and the short side (W) of a piece, the coefficients come from the machine
// and are not derived from plain perimeter geometry.
package beveling

import (
	"github.com/canonical/glassworks-service/internal/errorx"
)

type Method string

const (
	Straight        Method = "STRAIGHT"
	FullFrame       Method = "FULL_FRAME"
	OneHead         Method = "ONE_HEAD"
	TwoHeads        Method = "TWO_HEADS"
	OneSide         Method = "ONE_SIDE"
	TwoSides        Method = "TWO_SIDES"
	HeadAndSide     Method = "HEAD_AND_SIDE"
	TwoHeadsOneSide Method = "TWO_HEADS_ONE_SIDE"
	TwoSidesOneHead Method = "TWO_SIDES_ONE_HEAD"
	Circle          Method = "CIRCLE"
	Manual          Method = "MANUAL"
	Panels          Method = "PANELS"
)

type coefficients struct {
	length float64
	width  float64
}

var table = map[Method]coefficients{
	Straight:        {length: 1, width: 0},
	FullFrame:       {length: 4, width: 4},
	OneHead:         {length: 2, width: 3},
	TwoHeads:        {length: 2, width: 4},
	OneSide:         {length: 3, width: 2},
	TwoSides:        {length: 4, width: 2},
	HeadAndSide:     {length: 3, width: 3},
	TwoHeadsOneSide: {length: 3, width: 4},
	TwoSidesOneHead: {length: 4, width: 3},
}

// circleFactor multiplies the diameter for round pieces.
const circleFactor = 6

// Methods lists every supported method in a stable order.
func Methods() []Method {
	return []Method{
		Straight, FullFrame, OneHead, TwoHeads, OneSide, TwoSides,
		HeadAndSide, TwoHeadsOneSide, TwoSidesOneHead, Circle, Manual, Panels,
	}
}

func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if m == Circle || m == Manual || m == Panels {
		return m, nil
	}
	if _, ok := table[m]; ok {
		return m, nil
	}
	return "", errorx.ErrUnknownMethod.WithData(map[string]interface{}{"method": s})
}

// RequiresManualMeters reports whether the caller must supply the edge length.
func RequiresManualMeters(m Method) bool {
	return m == Manual || m == Panels
}

// EdgeLength returns the billable edge length in meters. Length and width
// are in meters, diameter only matters for CIRCLE. MANUAL and PANELS yield 0
// and the caller substitutes the manually entered meters.
func EdgeLength(m Method, length, width, diameter float64) (float64, error) {
	switch m {
	case Manual, Panels:
		return 0, nil
	case Circle:
		if diameter <= 0 {
			return 0, errorx.ErrInvalidDiameter
		}
		return circleFactor * diameter, nil
	}

	c, ok := table[m]
	if !ok {
		return 0, errorx.ErrUnknownMethod.WithData(map[string]interface{}{"method": string(m)})
	}

	return c.length*length + c.width*width, nil
}
