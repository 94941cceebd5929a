// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pricing

import (
	"github.com/shopspring/decimal"
)

// Epsilon is the tolerance used whenever two money amounts are compared.
const Epsilon = 0.01

// Round2 rounds half away from zero to two decimals. Going through the
// shortest decimal representation keeps values like 1.005 from rounding down.
func Round2(x float64) float64 {
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}

// Sum adds the amounts in decimal arithmetic and rounds the result.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.Round(2).InexactFloat64()
}

// Sub returns round2(a - b) computed in decimal arithmetic.
func Sub(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(2).InexactFloat64()
}

// Mul multiplies the factors in decimal arithmetic and rounds once at the end.
func Mul(factors ...float64) float64 {
	if len(factors) == 0 {
		return 0
	}
	product := decimal.NewFromInt(1)
	for _, f := range factors {
		product = product.Mul(decimal.NewFromFloat(f))
	}
	return product.Round(2).InexactFloat64()
}

// Settled reports whether a remaining balance counts as fully paid.
func Settled(remaining float64) bool {
	return remaining <= Epsilon
}
