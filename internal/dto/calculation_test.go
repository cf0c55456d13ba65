package dto_test

import (
	"testing"
	"time"

	"github.com/gallusnever/asc842-calculator/internal/apperrors"
	"github.com/gallusnever/asc842-calculator/internal/core/domain"
	"github.com/gallusnever/asc842-calculator/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() dto.CalculationRequest {
	payment := decimal.NewFromInt(1000)
	rate := decimal.NewFromFloat(0.06)
	return dto.CalculationRequest{
		CommencementDate: "2024-01-01",
		MonthlyPayment:   &payment,
		LeaseTermMonths:  60,
		DiscountRate:     &rate,
	}
}

func TestToDomain_Defaults(t *testing.T) {
	in, err := validRequest().ToDomain()

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), in.CommencementDate)
	assert.Equal(t, domain.Arrears, in.PaymentTiming, "timing defaults to arrears")
	assert.Equal(t, domain.FiscalYearEnd{Month: time.December, Day: 31}, in.FiscalYearEnd)
	assert.True(t, in.PrepaidRent.IsZero())
	assert.Nil(t, in.FairValue)
	assert.Nil(t, in.AssetLifeMonths)
}

func TestToDomain_TimingIsCaseInsensitive(t *testing.T) {
	for _, raw := range []string{"advance", "ADVANCE", "Advance"} {
		req := validRequest()
		req.PaymentTiming = raw

		in, err := req.ToDomain()
		require.NoError(t, err)
		assert.Equal(t, domain.Advance, in.PaymentTiming)
	}
}

func TestToDomain_InvalidTiming(t *testing.T) {
	req := validRequest()
	req.PaymentTiming = "QUARTERLY"

	_, err := req.ToDomain()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToDomain_InvalidDate(t *testing.T) {
	req := validRequest()
	req.CommencementDate = "01/15/2024"

	_, err := req.ToDomain()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToDomain_FiscalYearEnd(t *testing.T) {
	req := validRequest()
	req.FiscalYearEnd = "06/30"

	in, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, domain.FiscalYearEnd{Month: time.June, Day: 30}, in.FiscalYearEnd)

	for _, bad := range []string{"13/01", "06/32", "0630", "6-30", "x/y"} {
		req.FiscalYearEnd = bad
		_, err := req.ToDomain()
		assert.ErrorIs(t, err, apperrors.ErrValidation, "input %q", bad)
	}
}

func TestToDomain_ZeroDiscountRateIsLegitimate(t *testing.T) {
	req := validRequest()
	zero := decimal.Zero
	req.DiscountRate = &zero

	in, err := req.ToDomain()
	require.NoError(t, err)
	assert.True(t, in.DiscountRate.IsZero())
}

func TestParseLeaseType(t *testing.T) {
	req := validRequest()

	req.LeaseType = "finance"
	lt, err := req.ParseLeaseType()
	require.NoError(t, err)
	assert.Equal(t, domain.Finance, lt)

	req.LeaseType = ""
	lt, err = req.ParseLeaseType()
	require.NoError(t, err)
	assert.Equal(t, domain.Operating, lt, "omitted lease type defaults to operating")

	req.LeaseType = "Capital"
	_, err = req.ParseLeaseType()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToJournalEntryResponse(t *testing.T) {
	entry := domain.JournalEntry{
		EntryID:     "e1",
		Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Month:       3,
		Description: "Lease payment - Month 3",
		Lines: []domain.JournalLine{
			{Account: domain.AccountCash, Credit: decimal.NewFromInt(1000)},
		},
	}

	resp := dto.ToJournalEntryResponse(entry)

	assert.Equal(t, "2024-03-15", resp.Date)
	assert.Equal(t, 3, resp.Month)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, domain.AccountCash, resp.Lines[0].Account)
}
