package services

import (
	"fmt"
	"time"

	"github.com/gallusnever/asc842-calculator/internal/apperrors"
	"github.com/gallusnever/asc842-calculator/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// debitLine / creditLine build a journal line, flipping side when the amount
// is negative so a surfaced negative ROU asset still yields a balanced entry.
func debitLine(account, memo string, amount decimal.Decimal) domain.JournalLine {
	if amount.IsNegative() {
		return domain.JournalLine{Account: account, Memo: memo, Credit: amount.Neg()}
	}
	return domain.JournalLine{Account: account, Memo: memo, Debit: amount}
}

func creditLine(account, memo string, amount decimal.Decimal) domain.JournalLine {
	if amount.IsNegative() {
		return domain.JournalLine{Account: account, Memo: memo, Debit: amount.Neg()}
	}
	return domain.JournalLine{Account: account, Memo: memo, Credit: amount}
}

// generateJournalEntries translates the initial recognition and each schedule
// row into balanced entries. Entry construction re-checks the double-entry
// invariant; a violation here is a generator bug and aborts the calculation.
func generateJournalEntries(in domain.LeaseInputs, leaseType domain.LeaseType, rec *domain.RecognitionResult, sched *domain.Schedule) (*domain.JournalEntries, error) {
	initial, err := initialEntry(in, rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrComputation, err)
	}

	periodic := make([]domain.JournalEntry, 0, len(sched.Rows))
	for _, row := range sched.Rows {
		entry, err := periodicEntry(in, leaseType, row)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrComputation, err)
		}
		periodic = append(periodic, entry)
	}

	return &domain.JournalEntries{
		Initial:  []domain.JournalEntry{initial},
		Periodic: periodic,
	}, nil
}

// initialEntry records recognition at commencement:
//
//	Dr ROU Asset          rou_asset
//	Cr Lease Liability    lease_liability
//	Cr Cash               prepaid rent (if any)
//	Cr Cash               initial direct costs (if any)
//	Dr Cash               lease incentives received (if any)
//
// The cash lines are what make the entry balance, since the adjustments are
// already embedded in the ROU asset. The first advance payment is NOT part of
// this entry; it belongs to month 1's periodic entry.
func initialEntry(in domain.LeaseInputs, rec *domain.RecognitionResult) (domain.JournalEntry, error) {
	lines := []domain.JournalLine{
		debitLine(domain.AccountROUAsset, "", rec.ROUAsset),
		creditLine(domain.AccountLeaseLiability, "", rec.LeaseLiability),
	}
	if rec.Components.PrepaidRent.IsPositive() {
		lines = append(lines, creditLine(domain.AccountCash, "Prepaid rent", rec.Components.PrepaidRent))
	}
	if rec.Components.InitialDirectCosts.IsPositive() {
		lines = append(lines, creditLine(domain.AccountCash, "Initial direct costs", rec.Components.InitialDirectCosts))
	}
	if rec.Components.LeaseIncentives.IsPositive() {
		lines = append(lines, debitLine(domain.AccountCash, "Lease incentives received", rec.Components.LeaseIncentives))
	}
	return domain.NewJournalEntry(uuid.NewString(), in.CommencementDate, 0, "Initial recognition of lease", lines)
}

// periodicEntry books one schedule row.
//
// Operating leases report a single expense line; the liability and ROU lines
// carry the split for the balance-sheet rollforward:
//
//	Dr Lease Expense      total_expense
//	Dr Lease Liability    principal
//	Cr ROU Asset          rou_amortization
//	Cr Cash               payment
//
// Finance leases split the expense:
//
//	Dr Interest Expense      interest
//	Dr Amortization Expense  rou_amortization
//	Dr Lease Liability       principal
//	Cr ROU Asset             rou_amortization
//	Cr Cash                  payment
//
// Both balance because payment = principal + interest and the amortization
// debit is the non-cash counterpart of the ROU credit.
func periodicEntry(in domain.LeaseInputs, leaseType domain.LeaseType, row domain.ScheduleRow) (domain.JournalEntry, error) {
	date := entryDate(in, row.Month)

	var lines []domain.JournalLine
	if leaseType == domain.Operating {
		memo := fmt.Sprintf("Interest %s + ROU amortization %s",
			row.Liability.Interest.Round(2).String(), row.ROUAsset.Amortization.Round(2).String())
		lines = []domain.JournalLine{
			debitLine(domain.AccountLeaseExpense, memo, row.TotalExpense),
			debitLine(domain.AccountLeaseLiability, "", row.Liability.Principal),
			creditLine(domain.AccountROUAsset, "", row.ROUAsset.Amortization),
			creditLine(domain.AccountCash, "", row.Payment),
		}
	} else {
		lines = []domain.JournalLine{
			debitLine(domain.AccountInterestExpense, "", row.Liability.Interest),
			debitLine(domain.AccountAmortizationExpense, "", row.ROUAsset.Amortization),
			debitLine(domain.AccountLeaseLiability, "", row.Liability.Principal),
			creditLine(domain.AccountROUAsset, "", row.ROUAsset.Amortization),
			creditLine(domain.AccountCash, "", row.Payment),
		}
	}

	desc := fmt.Sprintf("Lease payment - Month %d", row.Month)
	return domain.NewJournalEntry(uuid.NewString(), date, row.Month, desc, lines)
}

// entryDate places each month's entry relative to commencement. Payments in
// advance post on the first day of the period; month 1 posts at commencement
// under either timing.
func entryDate(in domain.LeaseInputs, month int) time.Time {
	date := in.CommencementDate.AddDate(0, month-1, 0)
	if in.PaymentTiming == domain.Advance && month > 1 {
		date = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	}
	return date
}
