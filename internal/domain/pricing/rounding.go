package pricing

import (
	"math"

	"imobtech_xpto/internal/domain/catalog"
)

// RoundLicense applies the commercial rounding used for license prices:
// round up to a whole number, and when the result reaches 100 push it up to
// the next value ending in 7 (100 -> 107, 247 -> 247, 248 -> 257).
//
// The two rules chain: a sub-100 value whose ceiling lands exactly on 100
// (99.1 -> 100) continues through the ends-in-7 rule (-> 107). Only license
// prices go through this; post-paid amounts stay exact.
func RoundLicense(v float64) float64 {
	c := math.Ceil(v)
	if c < 100 {
		return c
	}
	last := math.Mod(c, 10)
	if last == 7 {
		return c
	}
	return c + math.Mod(7-last+10, 10)
}

// MonthlyLicense converts an annual list price into the monthly-equivalent
// charged at the given frequency, commercially rounded.
func MonthlyLicense(cat *catalog.Catalog, annualPrice float64, freq catalog.PaymentFrequency) (float64, error) {
	terms, err := cat.FrequencyTerms(freq)
	if err != nil {
		return 0, err
	}
	return RoundLicense(annualPrice * terms.Multiplier), nil
}

// DiscountedLicense applies a bundle discount to an already-rounded license
// price. The result rounds to the nearest whole number and is NOT re-passed
// through the ends-in-7 rule.
func DiscountedLicense(price, discount float64) float64 {
	return math.Round(price * (1 - discount))
}
