package services

import (
	"context"
	"log/slog"

	"github.com/gallusnever/asc842-calculator/internal/core/domain"
	"github.com/gallusnever/asc842-calculator/internal/middleware"
	"github.com/shopspring/decimal"
)

// boolTest wraps a boolean criterion; it has no value or threshold to report.
func boolTest(met bool) domain.TestResult {
	return domain.TestResult{Met: met}
}

// ratioTest compares a computed ratio against its threshold.
func ratioTest(value, threshold decimal.Decimal) domain.TestResult {
	return domain.TestResult{
		Met:       value.GreaterThanOrEqual(threshold),
		Value:     &value,
		Threshold: &threshold,
	}
}

// skippedTest marks a ratio test that could not run for lack of an input.
// It still reports its threshold so a rendering layer can show the full set.
func skippedTest(threshold decimal.Decimal) domain.TestResult {
	return domain.TestResult{Met: false, Threshold: &threshold}
}

// Classify runs the five ASC 842 classification tests. The lease is a finance
// lease if ANY test is met. All five tests are computed before the decision;
// there is no ordering dependency between them.
func (s *calculationService) Classify(ctx context.Context, in domain.LeaseInputs) (*domain.ClassificationResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateInputs(in); err != nil {
		return nil, err
	}

	// The PV of the payment stream is computed unconditionally: it doubles as
	// the lease liability at recognition, even when the PV test is skipped.
	pv, err := PresentValue(in.MonthlyPayment, in.DiscountRate, in.LeaseTermMonths, in.PaymentTiming)
	if err != nil {
		return nil, err
	}

	tests := domain.ClassificationTests{
		TransferOwnership: boolTest(in.HasTransferTitle),
		BargainPurchase:   boolTest(in.HasBargainPurchase),
		SpecializedAsset:  boolTest(in.IsSpecialized),
	}
	calcs := domain.ClassificationCalculations{PVLeasePayments: pv}

	// Test 3: lease term covers the major part (75%) of the asset's life.
	if in.AssetLifeMonths != nil {
		pct := decimal.NewFromInt(int64(in.LeaseTermMonths)).Div(decimal.NewFromInt(int64(*in.AssetLifeMonths)))
		tests.LeaseTerm = ratioTest(pct, domain.MajorPartThreshold)
		calcs.LeaseTermPct = &pct
	} else {
		tests.LeaseTerm = skippedTest(domain.MajorPartThreshold)
	}

	// Test 4: PV of payments is substantially all (90%) of fair value.
	if in.FairValue != nil {
		pct := pv.Div(*in.FairValue)
		tests.PresentValue = ratioTest(pct, domain.SubstantiallyAllThreshold)
		calcs.PVPct = &pct
	} else {
		tests.PresentValue = skippedTest(domain.SubstantiallyAllThreshold)
	}

	leaseType := domain.Operating
	if tests.AnyMet() {
		leaseType = domain.Finance
	}

	logger.Debug("lease classified",
		slog.String("lease_type", string(leaseType)),
		slog.String("pv_lease_payments", pv.Round(2).String()),
	)

	return &domain.ClassificationResult{
		LeaseType:    leaseType,
		Tests:        tests,
		Calculations: calcs,
	}, nil
}
