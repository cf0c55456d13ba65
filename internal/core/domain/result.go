package domain

import "github.com/shopspring/decimal"

// CalculationSummary carries the headline figures of a full calculation.
type CalculationSummary struct {
	TotalPayments decimal.Decimal `json:"total_payments"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
}

// CalculationResult is the complete output of the unified pipeline:
// classification, initial recognition, the full schedule, and the journal
// entries implied by it. It is built fresh per request and never mutated
// after construction.
type CalculationResult struct {
	Classification     ClassificationResult `json:"classification"`
	InitialRecognition RecognitionResult    `json:"initial_recognition"`
	Schedule           Schedule             `json:"amortization_schedule"`
	JournalEntries     JournalEntries       `json:"journal_entries"`
	Summary            CalculationSummary   `json:"summary"`
}

// TreasuryRate is one point on the Treasury yield table.
type TreasuryRate struct {
	TermYears decimal.Decimal
	Rate      decimal.Decimal
}
