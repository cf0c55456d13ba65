package domain_test

import (
	"testing"
	"time"

	"github.com/gallusnever/asc842-calculator/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJournalEntry_Balanced(t *testing.T) {
	lines := []domain.JournalLine{
		{Account: domain.AccountROUAsset, Debit: decimal.NewFromInt(1000)},
		{Account: domain.AccountLeaseLiability, Credit: decimal.NewFromInt(1000)},
	}

	entry, err := domain.NewJournalEntry("e1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 0, "Initial recognition of lease", lines)

	require.NoError(t, err)
	assert.Equal(t, "e1", entry.EntryID)
	assert.Len(t, entry.Lines, 2)
}

func TestNewJournalEntry_WithinTolerance(t *testing.T) {
	// Sub-cent drift from unrounded amounts is accepted.
	lines := []domain.JournalLine{
		{Account: domain.AccountROUAsset, Debit: decimal.NewFromFloat(1000.004)},
		{Account: domain.AccountLeaseLiability, Credit: decimal.NewFromInt(1000)},
	}

	_, err := domain.NewJournalEntry("e1", time.Now(), 0, "test", lines)
	assert.NoError(t, err)
}

func TestNewJournalEntry_Unbalanced(t *testing.T) {
	lines := []domain.JournalLine{
		{Account: domain.AccountROUAsset, Debit: decimal.NewFromInt(1000)},
		{Account: domain.AccountLeaseLiability, Credit: decimal.NewFromInt(999)},
	}

	_, err := domain.NewJournalEntry("e1", time.Now(), 0, "test", lines)
	assert.Error(t, err)
}

func TestNewJournalEntry_RejectsNegativeAmounts(t *testing.T) {
	lines := []domain.JournalLine{
		{Account: domain.AccountROUAsset, Debit: decimal.NewFromInt(-1000)},
		{Account: domain.AccountLeaseLiability, Credit: decimal.NewFromInt(-1000)},
	}

	_, err := domain.NewJournalEntry("e1", time.Now(), 0, "test", lines)
	assert.Error(t, err)
}

func TestClassificationTests_AnyMet(t *testing.T) {
	var tests domain.ClassificationTests
	assert.False(t, tests.AnyMet())

	tests.SpecializedAsset = domain.TestResult{Met: true}
	assert.True(t, tests.AnyMet())
}

func TestClassificationTests_OrderedIsStable(t *testing.T) {
	var tests domain.ClassificationTests
	ordered := tests.Ordered()

	require.Len(t, ordered, 5)
	assert.Equal(t, domain.TestTransferOwnership, ordered[0].Name)
	assert.Equal(t, domain.TestBargainPurchase, ordered[1].Name)
	assert.Equal(t, domain.TestLeaseTerm, ordered[2].Name)
	assert.Equal(t, domain.TestPresentValue, ordered[3].Name)
	assert.Equal(t, domain.TestSpecializedAsset, ordered[4].Name)
}

func TestMonthlyRate(t *testing.T) {
	in := domain.LeaseInputs{DiscountRate: decimal.NewFromFloat(0.06)}
	assert.True(t, in.MonthlyRate().Equal(decimal.NewFromFloat(0.005)))
}
