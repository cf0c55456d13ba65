package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gallusnever/asc842-calculator/internal/apperrors"
	"github.com/gallusnever/asc842-calculator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for all dates.
const dateLayout = "2006-01-02"

// CalculationRequest carries the lease terms for any of the calculation
// endpoints. Required numeric fields are pointers so a legitimate zero (e.g.
// a 0% discount rate) is distinguishable from an omitted field.
type CalculationRequest struct {
	CommencementDate   string           `json:"lease_commencement_date" binding:"required"`
	MonthlyPayment     *decimal.Decimal `json:"monthly_payment" binding:"required"`
	LeaseTermMonths    int              `json:"lease_term_months" binding:"required,gt=0"`
	PaymentTiming      string           `json:"payment_timing" binding:"omitempty"`
	DiscountRate       *decimal.Decimal `json:"discount_rate" binding:"required"`
	FairValue          *decimal.Decimal `json:"fair_value" binding:"omitempty"`
	AssetLifeMonths    *int             `json:"asset_life_months" binding:"omitempty"`
	HasTransferTitle   bool             `json:"has_transfer_title"`
	HasBargainPurchase bool             `json:"has_bargain_purchase"`
	IsSpecialized      bool             `json:"is_specialized"`
	PrepaidRent        decimal.Decimal  `json:"prepaid_rent"`
	InitialDirectCosts decimal.Decimal  `json:"initial_direct_costs"`
	LeaseIncentives    decimal.Decimal  `json:"lease_incentives"`
	FiscalYearEnd      string           `json:"fiscal_year_end" binding:"omitempty"`
	UseTreasuryRate    bool             `json:"use_treasury_rate"`

	// LeaseType is only consulted by the schedule-only endpoint, where the
	// caller supplies an already-known classification.
	LeaseType string `json:"lease_type" binding:"omitempty"`
}

// ToDomain validates and converts the request into immutable lease inputs.
// Omitted adjustments default to zero; omitted timing defaults to arrears;
// omitted fiscal year end defaults to 12/31.
func (r CalculationRequest) ToDomain() (domain.LeaseInputs, error) {
	var in domain.LeaseInputs

	commencement, err := time.Parse(dateLayout, r.CommencementDate)
	if err != nil {
		return in, fmt.Errorf("%w: lease_commencement_date must be in YYYY-MM-DD format", apperrors.ErrValidation)
	}

	timing, err := parseTiming(r.PaymentTiming)
	if err != nil {
		return in, err
	}

	fye, err := parseFiscalYearEnd(r.FiscalYearEnd)
	if err != nil {
		return in, err
	}

	in = domain.LeaseInputs{
		CommencementDate:   commencement,
		MonthlyPayment:     *r.MonthlyPayment,
		LeaseTermMonths:    r.LeaseTermMonths,
		PaymentTiming:      timing,
		DiscountRate:       *r.DiscountRate,
		FairValue:          r.FairValue,
		AssetLifeMonths:    r.AssetLifeMonths,
		HasTransferTitle:   r.HasTransferTitle,
		HasBargainPurchase: r.HasBargainPurchase,
		IsSpecialized:      r.IsSpecialized,
		PrepaidRent:        r.PrepaidRent,
		InitialDirectCosts: r.InitialDirectCosts,
		LeaseIncentives:    r.LeaseIncentives,
		FiscalYearEnd:      fye,
	}
	return in, nil
}

// ParseLeaseType converts the wire lease type for the schedule-only endpoint.
func (r CalculationRequest) ParseLeaseType() (domain.LeaseType, error) {
	switch strings.ToUpper(r.LeaseType) {
	case "FINANCE":
		return domain.Finance, nil
	case "OPERATING", "":
		return domain.Operating, nil
	default:
		return "", fmt.Errorf("%w: lease_type must be Finance or Operating", apperrors.ErrValidation)
	}
}

func parseTiming(s string) (domain.PaymentTiming, error) {
	switch strings.ToUpper(s) {
	case "", "ARREARS":
		return domain.Arrears, nil
	case "ADVANCE":
		return domain.Advance, nil
	default:
		return "", fmt.Errorf("%w: payment_timing must be ADVANCE or ARREARS", apperrors.ErrValidation)
	}
}

// parseFiscalYearEnd parses "MM/DD", defaulting to 12/31.
func parseFiscalYearEnd(s string) (domain.FiscalYearEnd, error) {
	if s == "" {
		return domain.FiscalYearEnd{Month: time.December, Day: 31}, nil
	}
	parts := strings.Split(s, "/")
	invalid := fmt.Errorf("%w: fiscal_year_end must be in MM/DD format", apperrors.ErrValidation)
	if len(parts) != 2 {
		return domain.FiscalYearEnd{}, invalid
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return domain.FiscalYearEnd{}, invalid
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil || day < 1 || day > 31 {
		return domain.FiscalYearEnd{}, invalid
	}
	return domain.FiscalYearEnd{Month: time.Month(month), Day: day}, nil
}

// JournalLineResponse is one debit or credit line on the wire.
type JournalLineResponse struct {
	Account string          `json:"account"`
	Memo    string          `json:"memo,omitempty"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// JournalEntryResponse is a journal entry with its date flattened to the wire
// date format.
type JournalEntryResponse struct {
	EntryID     string                `json:"entryID"`
	Date        string                `json:"date"`
	Month       int                   `json:"month,omitempty"`
	Description string                `json:"description"`
	Lines       []JournalLineResponse `json:"lines"`
}

// JournalEntriesResponse groups initial and periodic entries.
type JournalEntriesResponse struct {
	Initial  []JournalEntryResponse `json:"initial"`
	Periodic []JournalEntryResponse `json:"periodic"`
}

// CalculationResponse is the unified-calculation success payload.
type CalculationResponse struct {
	Success              bool                        `json:"success"`
	Classification       domain.ClassificationResult `json:"classification"`
	InitialRecognition   domain.RecognitionResult    `json:"initial_recognition"`
	AmortizationSchedule []domain.ScheduleRow        `json:"amortization_schedule"`
	JournalEntries       JournalEntriesResponse      `json:"journal_entries"`
	Summary              domain.CalculationSummary   `json:"summary"`
	Warnings             []string                    `json:"warnings,omitempty"`
}

// ClassificationResponse is the classify-only success payload.
type ClassificationResponse struct {
	Success bool `json:"success"`
	domain.ClassificationResult
}

// RecognitionResponse is the initial-recognition-only success payload.
type RecognitionResponse struct {
	Success bool `json:"success"`
	domain.RecognitionResult
}

// ScheduleSummaryResponse mirrors the summary block of the schedule-only
// endpoint.
type ScheduleSummaryResponse struct {
	InitialLiability decimal.Decimal `json:"initial_liability"`
	InitialROU       decimal.Decimal `json:"initial_rou"`
	TotalPayments    decimal.Decimal `json:"total_payments"`
}

// ScheduleResponse is the schedule-only success payload.
type ScheduleResponse struct {
	Success  bool                    `json:"success"`
	Schedule []domain.ScheduleRow    `json:"schedule"`
	Summary  ScheduleSummaryResponse `json:"summary"`
	Warnings []string                `json:"warnings,omitempty"`
}

// ToJournalEntryResponse converts a domain entry for the wire.
func ToJournalEntryResponse(entry domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(entry.Lines))
	for i, l := range entry.Lines {
		lines[i] = JournalLineResponse(l)
	}
	return JournalEntryResponse{
		EntryID:     entry.EntryID,
		Date:        entry.Date.Format(dateLayout),
		Month:       entry.Month,
		Description: entry.Description,
		Lines:       lines,
	}
}

// ToJournalEntryResponses converts a slice of domain entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToJournalEntryResponse(e)
	}
	return out
}

// ToCalculationResponse converts the full pipeline result for the wire.
func ToCalculationResponse(result *domain.CalculationResult) CalculationResponse {
	return CalculationResponse{
		Success:              true,
		Classification:       result.Classification,
		InitialRecognition:   result.InitialRecognition,
		AmortizationSchedule: result.Schedule.Rows,
		JournalEntries: JournalEntriesResponse{
			Initial:  ToJournalEntryResponses(result.JournalEntries.Initial),
			Periodic: ToJournalEntryResponses(result.JournalEntries.Periodic),
		},
		Summary:  result.Summary,
		Warnings: result.Schedule.Warnings,
	}
}
