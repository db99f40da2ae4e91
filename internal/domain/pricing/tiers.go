package pricing

import "imobtech_xpto/internal/domain/catalog"

// TierLine is one consumed band of a rate schedule, used to build
// human-readable breakdowns ("100 × R$2,50 + 200 × R$2,10").
type TierLine struct {
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// TieredCost consumes quantity across the ordered schedule and returns the
// total cost. Each band contributes min(remaining, capacity) × unit price; an
// unbounded final band absorbs the rest. Quantities ≤ 0 cost nothing.
func TieredCost(quantity int, tiers []catalog.Tier) float64 {
	total := 0.0
	for _, line := range TieredBreakdown(quantity, tiers) {
		total += float64(line.Quantity) * line.UnitPrice
	}
	return total
}

// TieredBreakdown is the same consumption as TieredCost but returns one line
// per non-empty band.
func TieredBreakdown(quantity int, tiers []catalog.Tier) []TierLine {
	if quantity <= 0 {
		return nil
	}
	var lines []TierLine
	remaining := quantity
	for _, t := range tiers {
		if remaining <= 0 {
			break
		}
		capacity := remaining
		if !t.Unbounded() {
			capacity = t.To - t.From + 1
		}
		take := remaining
		if take > capacity {
			take = capacity
		}
		if take > 0 {
			lines = append(lines, TierLine{Quantity: take, UnitPrice: t.UnitPrice})
			remaining -= take
		}
	}
	return lines
}
