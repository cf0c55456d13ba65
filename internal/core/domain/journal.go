package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Account names used by the generated entries.
const (
	AccountROUAsset            = "ROU Asset"
	AccountLeaseLiability      = "Lease Liability"
	AccountCash                = "Cash"
	AccountLeaseExpense        = "Lease Expense"
	AccountInterestExpense     = "Interest Expense"
	AccountAmortizationExpense = "Amortization Expense"
)

// BalanceTolerance is the largest debit/credit mismatch accepted in a journal
// entry. Amounts are carried unrounded, so any real mismatch indicates a bug
// in the generator rather than rounding noise.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// JournalLine is a single debit or credit against one account.
type JournalLine struct {
	Account string          `json:"account"`
	Memo    string          `json:"memo,omitempty"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// JournalEntry is an ordered set of lines posted on one date. Entries are only
// built through NewJournalEntry so the double-entry invariant holds for every
// instance in existence.
type JournalEntry struct {
	EntryID     string        `json:"entryID"`
	Date        time.Time     `json:"date"`
	Month       int           `json:"month,omitempty"` // 0 for the initial recognition entry
	Description string        `json:"description"`
	Lines       []JournalLine `json:"lines"`
}

// NewJournalEntry validates the double-entry invariant and returns the entry.
// Sum of debits must equal sum of credits within BalanceTolerance.
func NewJournalEntry(entryID string, date time.Time, month int, description string, lines []JournalLine) (JournalEntry, error) {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return JournalEntry{}, fmt.Errorf("journal line for account %q has a negative amount", line.Account)
		}
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}
	if debits.Sub(credits).Abs().GreaterThan(BalanceTolerance) {
		return JournalEntry{}, fmt.Errorf("journal entry %q does not balance: debits %s, credits %s",
			description, debits.String(), credits.String())
	}
	return JournalEntry{
		EntryID:     entryID,
		Date:        date,
		Month:       month,
		Description: description,
		Lines:       lines,
	}, nil
}

// JournalEntries groups the initial recognition entry with the periodic
// entries derived from the amortization schedule.
type JournalEntries struct {
	Initial  []JournalEntry `json:"initial"`
	Periodic []JournalEntry `json:"periodic"`
}
