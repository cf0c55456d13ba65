package services

import (
	"github.com/gallusnever/asc842-calculator/internal/core/domain"
	portssvc "github.com/gallusnever/asc842-calculator/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// treasuryService serves the static Treasury yield table used for the
// risk-free-rate practical expedient.
type treasuryService struct {
	rates []domain.TreasuryRate // ascending by term
}

// NewTreasuryService creates the facade over the default yield table.
func NewTreasuryService() portssvc.TreasurySvcFacade {
	return &treasuryService{rates: defaultTreasuryRates()}
}

var _ portssvc.TreasurySvcFacade = (*treasuryService)(nil)

// defaultTreasuryRates is the daily Treasury yield curve snapshot, keyed by
// term in years (0.0833 = 1 month).
func defaultTreasuryRates() []domain.TreasuryRate {
	point := func(term, rate float64) domain.TreasuryRate {
		return domain.TreasuryRate{
			TermYears: decimal.NewFromFloat(term),
			Rate:      decimal.NewFromFloat(rate),
		}
	}
	return []domain.TreasuryRate{
		point(0.0833, 0.0520),
		point(0.25, 0.0515),
		point(0.5, 0.0505),
		point(1, 0.0485),
		point(2, 0.0445),
		point(3, 0.0435),
		point(5, 0.0435),
		point(7, 0.0445),
		point(10, 0.0455),
		point(20, 0.0485),
		point(30, 0.0475),
	}
}

// Rates returns the table in ascending term order.
func (t *treasuryService) Rates() []domain.TreasuryRate {
	out := make([]domain.TreasuryRate, len(t.rates))
	copy(out, t.rates)
	return out
}

// RateForTermMonths selects the rate whose term is closest (by absolute
// difference) to the lease term. A linear scan over ascending terms keeps the
// earlier entry on an exact tie, so the shorter term wins.
func (t *treasuryService) RateForTermMonths(leaseTermMonths int) (decimal.Decimal, bool) {
	if leaseTermMonths <= 0 || len(t.rates) == 0 {
		return decimal.Zero, false
	}
	termYears := decimal.NewFromInt(int64(leaseTermMonths)).Div(decimal.NewFromInt(12))

	best := t.rates[0]
	bestDiff := best.TermYears.Sub(termYears).Abs()
	for _, r := range t.rates[1:] {
		diff := r.TermYears.Sub(termYears).Abs()
		if diff.LessThan(bestDiff) {
			best = r
			bestDiff = diff
		}
	}
	return best.Rate, true
}
