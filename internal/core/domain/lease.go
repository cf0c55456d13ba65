package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaseType is the ASC 842 classification outcome.
type LeaseType string

const (
	Finance   LeaseType = "Finance"
	Operating LeaseType = "Operating"
)

// PaymentTiming indicates whether payments fall due at the start or the end of
// each period.
type PaymentTiming string

const (
	Advance PaymentTiming = "ADVANCE"
	Arrears PaymentTiming = "ARREARS"
)

// Classification thresholds per ASC 842-10-55-2.
var (
	MajorPartThreshold        = decimal.NewFromFloat(0.75) // lease term test
	SubstantiallyAllThreshold = decimal.NewFromFloat(0.90) // present value test
)

// FiscalYearEnd is a month/day pair, e.g. 12/31.
type FiscalYearEnd struct {
	Month time.Month
	Day   int
}

// LeaseInputs holds the complete lease terms for one calculation.
// Instances are validated once and never mutated afterwards.
type LeaseInputs struct {
	CommencementDate   time.Time
	MonthlyPayment     decimal.Decimal
	LeaseTermMonths    int
	PaymentTiming      PaymentTiming
	DiscountRate       decimal.Decimal // annual, as a decimal fraction
	FairValue          *decimal.Decimal
	AssetLifeMonths    *int
	HasTransferTitle   bool
	HasBargainPurchase bool
	IsSpecialized      bool
	PrepaidRent        decimal.Decimal
	InitialDirectCosts decimal.Decimal
	LeaseIncentives    decimal.Decimal
	FiscalYearEnd      FiscalYearEnd
}

// MonthlyRate converts the annual discount rate to a monthly rate.
func (in LeaseInputs) MonthlyRate() decimal.Decimal {
	return in.DiscountRate.Div(decimal.NewFromInt(12))
}

// TestName identifies one of the five ASC 842 classification tests.
type TestName string

const (
	TestTransferOwnership TestName = "transfer_ownership"
	TestBargainPurchase   TestName = "bargain_purchase"
	TestLeaseTerm         TestName = "lease_term"
	TestPresentValue      TestName = "present_value"
	TestSpecializedAsset  TestName = "specialized_asset"
)

// TestResult is the outcome of a single classification test. Value and
// Threshold are nil for the boolean tests, and Value is nil when a ratio test
// was skipped for lack of an input.
type TestResult struct {
	Met       bool             `json:"met"`
	Value     *decimal.Decimal `json:"value"`
	Threshold *decimal.Decimal `json:"threshold"`
}

// ClassificationTests is the closed set of the five tests. Keeping it a fixed
// record (rather than a string-keyed map) means the engine and any rendering
// layer iterate the same five entries.
type ClassificationTests struct {
	TransferOwnership TestResult `json:"transfer_ownership"`
	BargainPurchase   TestResult `json:"bargain_purchase"`
	LeaseTerm         TestResult `json:"lease_term"`
	PresentValue      TestResult `json:"present_value"`
	SpecializedAsset  TestResult `json:"specialized_asset"`
}

// NamedTest pairs a test name with its result for ordered iteration.
type NamedTest struct {
	Name   TestName
	Result TestResult
}

// Ordered returns the five tests in their conventional ASC 842 order.
func (t ClassificationTests) Ordered() []NamedTest {
	return []NamedTest{
		{TestTransferOwnership, t.TransferOwnership},
		{TestBargainPurchase, t.BargainPurchase},
		{TestLeaseTerm, t.LeaseTerm},
		{TestPresentValue, t.PresentValue},
		{TestSpecializedAsset, t.SpecializedAsset},
	}
}

// AnyMet reports whether at least one test is met; a lease is a finance lease
// iff this is true.
func (t ClassificationTests) AnyMet() bool {
	for _, nt := range t.Ordered() {
		if nt.Result.Met {
			return true
		}
	}
	return false
}

// ClassificationCalculations carries the intermediate values behind the ratio
// tests. PVLeasePayments is always populated, even when the present value test
// itself was skipped.
type ClassificationCalculations struct {
	PVLeasePayments decimal.Decimal  `json:"pv_lease_payments"`
	LeaseTermPct    *decimal.Decimal `json:"lease_term_percentage"`
	PVPct           *decimal.Decimal `json:"pv_percentage"`
}

// ClassificationResult is the full outcome of the five-test classification.
type ClassificationResult struct {
	LeaseType    LeaseType                  `json:"lease_type"`
	Tests        ClassificationTests        `json:"tests"`
	Calculations ClassificationCalculations `json:"calculations"`
}

// RecognitionComponents itemizes the adjustments applied on top of the lease
// liability when deriving the ROU asset.
type RecognitionComponents struct {
	PrepaidRent        decimal.Decimal `json:"prepaid_rent"`
	InitialDirectCosts decimal.Decimal `json:"initial_direct_costs"`
	LeaseIncentives    decimal.Decimal `json:"lease_incentives"`
}

// RecognitionResult is the initial recognition per ASC 842-20-30-5.
// ROUAsset = LeaseLiability + PrepaidRent + InitialDirectCosts - LeaseIncentives.
// A negative ROU asset is carried through as-is; callers decide how to surface it.
type RecognitionResult struct {
	LeaseLiability decimal.Decimal       `json:"lease_liability"`
	ROUAsset       decimal.Decimal       `json:"rou_asset"`
	Components     RecognitionComponents `json:"components"`
}

// ROURollforward is the right-of-use asset side of one schedule row.
type ROURollforward struct {
	Beginning    decimal.Decimal `json:"beginning"`
	Amortization decimal.Decimal `json:"amortization"`
	Ending       decimal.Decimal `json:"ending"`
}

// LiabilityRollforward is the lease liability side of one schedule row.
type LiabilityRollforward struct {
	Beginning decimal.Decimal `json:"beginning"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	Ending    decimal.Decimal `json:"ending"`
}

// ScheduleRow is one month of the amortization schedule, carried at full
// precision; rounding happens only at the display/export boundary.
type ScheduleRow struct {
	Month        int                  `json:"month"`
	ROUAsset     ROURollforward       `json:"rou_asset"`
	Liability    LiabilityRollforward `json:"liability"`
	Payment      decimal.Decimal      `json:"payment"`
	TotalExpense decimal.Decimal      `json:"total_expense"`
}

// Schedule is the complete rollforward. Warnings records residual drift that
// exceeded the rounding tolerance instead of silently absorbing it.
type Schedule struct {
	Rows     []ScheduleRow `json:"rows"`
	Warnings []string      `json:"warnings,omitempty"`
}
