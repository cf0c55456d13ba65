package dto

import (
	"github.com/gallusnever/asc842-calculator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TreasuryRatesResponse is the yield table keyed by term in years, e.g.
// "0.0833" for the 1-month bill.
type TreasuryRatesResponse struct {
	Success bool                       `json:"success"`
	Rates   map[string]decimal.Decimal `json:"rates"`
}

// ToTreasuryRatesResponse converts the rate table for the wire.
func ToTreasuryRatesResponse(rates []domain.TreasuryRate) TreasuryRatesResponse {
	out := make(map[string]decimal.Decimal, len(rates))
	for _, r := range rates {
		out[r.TermYears.String()] = r.Rate
	}
	return TreasuryRatesResponse{Success: true, Rates: out}
}
