package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/gallusnever/asc842-calculator/internal/core/domain"
	portssvc "github.com/gallusnever/asc842-calculator/internal/core/ports/services"
	"github.com/gallusnever/asc842-calculator/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type JournalTestSuite struct {
	suite.Suite
	service portssvc.CalculationSvcFacade
}

func (suite *JournalTestSuite) SetupTest() {
	suite.service = services.NewCalculationService()
}

// assertBalanced checks the double-entry invariant on a single entry.
func (suite *JournalTestSuite) assertBalanced(entry domain.JournalEntry) {
	debits, credits := decimal.Zero, decimal.Zero
	for _, line := range entry.Lines {
		suite.False(line.Debit.IsNegative(), "entry %q has a negative debit", entry.Description)
		suite.False(line.Credit.IsNegative(), "entry %q has a negative credit", entry.Description)
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}
	suite.True(debits.Sub(credits).Abs().LessThanOrEqual(domain.BalanceTolerance),
		"entry %q: debits %s != credits %s", entry.Description, debits, credits)
}

func (suite *JournalTestSuite) TestEveryEntryBalances() {
	in := baseInputs()
	in.PrepaidRent = decimal.NewFromInt(5000)
	in.InitialDirectCosts = decimal.NewFromInt(2000)
	in.LeaseIncentives = decimal.NewFromInt(3000)

	result, err := suite.service.Calculate(context.Background(), in)
	suite.Require().NoError(err)

	for _, entry := range result.JournalEntries.Initial {
		suite.assertBalanced(entry)
	}
	for _, entry := range result.JournalEntries.Periodic {
		suite.assertBalanced(entry)
	}
}

func (suite *JournalTestSuite) TestInitialEntryComposition() {
	in := baseInputs()
	in.PrepaidRent = decimal.NewFromInt(5000)
	in.LeaseIncentives = decimal.NewFromInt(3000)

	result, err := suite.service.Calculate(context.Background(), in)
	suite.Require().NoError(err)

	suite.Require().Len(result.JournalEntries.Initial, 1)
	entry := result.JournalEntries.Initial[0]
	suite.Equal(in.CommencementDate, entry.Date)
	suite.Equal(0, entry.Month)
	suite.NotEmpty(entry.EntryID)

	byAccount := map[string][]domain.JournalLine{}
	for _, line := range entry.Lines {
		byAccount[line.Account] = append(byAccount[line.Account], line)
	}

	suite.Require().Len(byAccount[domain.AccountROUAsset], 1)
	suite.True(byAccount[domain.AccountROUAsset][0].Debit.Equal(result.InitialRecognition.ROUAsset))

	suite.Require().Len(byAccount[domain.AccountLeaseLiability], 1)
	suite.True(byAccount[domain.AccountLeaseLiability][0].Credit.Equal(result.InitialRecognition.LeaseLiability))

	// One cash credit for prepaid rent, one cash debit for the incentives
	// received; no line for the omitted direct costs.
	suite.Require().Len(byAccount[domain.AccountCash], 2)
	var cashDebits, cashCredits decimal.Decimal
	for _, line := range byAccount[domain.AccountCash] {
		cashDebits = cashDebits.Add(line.Debit)
		cashCredits = cashCredits.Add(line.Credit)
	}
	suite.True(cashCredits.Equal(in.PrepaidRent))
	suite.True(cashDebits.Equal(in.LeaseIncentives))
}

func (suite *JournalTestSuite) TestInitialEntrySkipsZeroAdjustments() {
	result, err := suite.service.Calculate(context.Background(), baseInputs())
	suite.Require().NoError(err)

	entry := result.JournalEntries.Initial[0]
	suite.Len(entry.Lines, 2, "no adjustments means just the ROU debit and liability credit")
}

func (suite *JournalTestSuite) TestOperatingPeriodicEntryShape() {
	result, err := suite.service.Calculate(context.Background(), baseInputs())
	suite.Require().NoError(err)

	first := result.JournalEntries.Periodic[0]
	row := result.Schedule.Rows[0]
	suite.Equal(1, first.Month)

	byAccount := map[string]domain.JournalLine{}
	for _, line := range first.Lines {
		byAccount[line.Account] = line
	}

	suite.True(byAccount[domain.AccountLeaseExpense].Debit.Equal(row.TotalExpense))
	suite.Contains(byAccount[domain.AccountLeaseExpense].Memo, "Interest")
	suite.True(byAccount[domain.AccountLeaseLiability].Debit.Equal(row.Liability.Principal))
	suite.True(byAccount[domain.AccountROUAsset].Credit.Equal(row.ROUAsset.Amortization))
	suite.True(byAccount[domain.AccountCash].Credit.Equal(row.Payment))
}

func (suite *JournalTestSuite) TestArrearsEntryDatesAdvanceMonthly() {
	result, err := suite.service.Calculate(context.Background(), baseInputs())
	suite.Require().NoError(err)

	start := baseInputs().CommencementDate
	for i, entry := range result.JournalEntries.Periodic {
		suite.Equal(start.AddDate(0, i, 0), entry.Date, "month %d", entry.Month)
	}
}

func (suite *JournalTestSuite) TestAdvanceEntriesPostOnFirstOfMonth() {
	in := baseInputs()
	in.CommencementDate = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	in.PaymentTiming = domain.Advance

	result, err := suite.service.Calculate(context.Background(), in)
	suite.Require().NoError(err)

	// Month 1 posts at commencement; later months post on the first.
	suite.Equal(in.CommencementDate, result.JournalEntries.Periodic[0].Date)
	for _, entry := range result.JournalEntries.Periodic[1:] {
		suite.Equal(1, entry.Date.Day(), "month %d should post on the first", entry.Month)
	}
}

func (suite *JournalTestSuite) TestEntryIDsAreUnique() {
	result, err := suite.service.Calculate(context.Background(), baseInputs())
	suite.Require().NoError(err)

	seen := map[string]bool{}
	all := append(result.JournalEntries.Initial, result.JournalEntries.Periodic...)
	for _, entry := range all {
		suite.False(seen[entry.EntryID], "duplicate entry ID %s", entry.EntryID)
		seen[entry.EntryID] = true
	}
}

func TestJournalTestSuite(t *testing.T) {
	suite.Run(t, new(JournalTestSuite))
}
