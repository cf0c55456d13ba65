package services_test

import (
	"testing"

	"github.com/gallusnever/asc842-calculator/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreasuryRates_TableIsAscendingAndComplete(t *testing.T) {
	svc := services.NewTreasuryService()
	rates := svc.Rates()

	require.NotEmpty(t, rates)
	for i := 1; i < len(rates); i++ {
		assert.True(t, rates[i-1].TermYears.LessThan(rates[i].TermYears),
			"terms must be ascending: %s before %s", rates[i-1].TermYears, rates[i].TermYears)
	}
	for _, r := range rates {
		assert.True(t, r.Rate.IsPositive())
	}
}

func TestTreasuryRates_ClosestTermSelection(t *testing.T) {
	svc := services.NewTreasuryService()

	tests := []struct {
		name       string
		termMonths int
		wantRate   float64
	}{
		{"one month lease snaps to 1-month bill", 1, 0.0520},
		{"one year", 12, 0.0485},
		{"five years", 60, 0.0435},
		{"between 5y and 7y, closer to 5y", 68, 0.0435},
		{"thirty years", 360, 0.0475},
		{"beyond the curve clamps to the longest term", 600, 0.0475},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, ok := svc.RateForTermMonths(tt.termMonths)
			require.True(t, ok)
			assert.True(t, rate.Equal(decimal.NewFromFloat(tt.wantRate)),
				"got %s, want %v", rate, tt.wantRate)
		})
	}
}

func TestTreasuryRates_TieGoesToShorterTerm(t *testing.T) {
	svc := services.NewTreasuryService()

	// 72 months = 6 years, equidistant from the 5y and 7y points.
	rate, ok := svc.RateForTermMonths(72)

	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.0435)), "tie must resolve to the 5-year rate, got %s", rate)
}

func TestTreasuryRates_InvalidTerm(t *testing.T) {
	svc := services.NewTreasuryService()

	_, ok := svc.RateForTermMonths(0)
	assert.False(t, ok)
	_, ok = svc.RateForTermMonths(-12)
	assert.False(t, ok)
}

func TestTreasuryRates_ReturnedSliceIsACopy(t *testing.T) {
	svc := services.NewTreasuryService()

	rates := svc.Rates()
	original := rates[0].Rate
	rates[0].Rate = decimal.NewFromInt(99)

	fresh := svc.Rates()
	assert.True(t, fresh[0].Rate.Equal(original), "mutating the returned slice must not affect the service")
}
