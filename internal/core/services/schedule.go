package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gallusnever/asc842-calculator/internal/apperrors"
	"github.com/gallusnever/asc842-calculator/internal/core/domain"
	"github.com/gallusnever/asc842-calculator/internal/middleware"
	"github.com/shopspring/decimal"
)

// residualTolerance is the largest balance allowed to remain after the final
// month before it stops being rounding drift and becomes a reportable
// discrepancy.
var residualTolerance = decimal.NewFromFloat(0.01)

// interestScale bounds the decimal scale of the monthly interest accrual so
// coefficients stay a fixed size over long terms. Twelve places is ten orders
// of magnitude inside the cent tolerance.
const interestScale = 12

// AmortizationSchedule builds the month-by-month rollforward of the ROU asset
// and lease liability for a lease whose classification is already known.
func (s *calculationService) AmortizationSchedule(ctx context.Context, in domain.LeaseInputs, leaseType domain.LeaseType) (*domain.Schedule, *domain.RecognitionResult, error) {
	if err := validateInputs(in); err != nil {
		return nil, nil, err
	}
	if leaseType != domain.Finance && leaseType != domain.Operating {
		return nil, nil, fmt.Errorf("%w: lease_type must be Finance or Operating", apperrors.ErrValidation)
	}

	liability, err := PresentValue(in.MonthlyPayment, in.DiscountRate, in.LeaseTermMonths, in.PaymentTiming)
	if err != nil {
		return nil, nil, err
	}
	rec := recognitionFromLiability(in, liability)

	schedule, err := buildSchedule(ctx, in, leaseType, rec)
	if err != nil {
		return nil, nil, err
	}
	return schedule, rec, nil
}

// buildSchedule runs the rollforward state machine over months 1..N.
// State per month is the pair of beginning balances; each month's endings
// become the next month's beginnings. All amounts are carried unrounded.
func buildSchedule(ctx context.Context, in domain.LeaseInputs, leaseType domain.LeaseType, rec *domain.RecognitionResult) (*domain.Schedule, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	n := in.LeaseTermMonths
	monthlyRate := in.MonthlyRate()
	termDec := decimal.NewFromInt(int64(n))

	// Operating leases expense a constant straight-line amount: the total
	// undiscounted cost of the lease (payments plus the recognition
	// adjustments) spread evenly. Spreading the adjustments too is what makes
	// the plug amortization sum exactly to the ROU asset over the term.
	straightLineExpense := in.MonthlyPayment.Mul(termDec).
		Add(in.PrepaidRent).
		Add(in.InitialDirectCosts).
		Sub(in.LeaseIncentives).
		Div(termDec)

	// Finance leases amortize the ROU asset straight-line on its own.
	financeAmortization := rec.ROUAsset.Div(termDec)

	sched := &domain.Schedule{Rows: make([]domain.ScheduleRow, 0, n)}
	liability := rec.LeaseLiability
	rou := rec.ROUAsset

	for month := 1; month <= n; month++ {
		interest := liability.Mul(monthlyRate).RoundBank(interestScale)

		var principal decimal.Decimal
		if in.PaymentTiming == domain.Advance && month == 1 {
			// The first advance payment is made at commencement, before any
			// interest can accrue: the entire payment reduces the liability.
			// This mirrors the (1+r) factor in the advance PV convention.
			interest = decimal.Zero
			principal = in.MonthlyPayment
		} else {
			principal = in.MonthlyPayment.Sub(interest)
		}

		var rouAmortization, totalExpense decimal.Decimal
		switch leaseType {
		case domain.Operating:
			// Plug method: ROU amortization absorbs whatever the fixed
			// straight-line expense does not consume as interest.
			rouAmortization = straightLineExpense.Sub(interest)
			totalExpense = straightLineExpense
		case domain.Finance:
			rouAmortization = financeAmortization
			totalExpense = interest.Add(rouAmortization)
		}

		liabilityEnding := liability.Sub(principal)
		rouEnding := rou.Sub(rouAmortization)

		if month < n && liabilityEnding.LessThan(residualTolerance.Neg()) {
			return nil, fmt.Errorf("%w: lease liability went negative (%s) at month %d of %d; inputs are inconsistent",
				apperrors.ErrComputation, liabilityEnding.Round(4).String(), month, n)
		}

		if month == n {
			liabilityEnding = settleResidual(sched, "lease liability", liabilityEnding)
			if leaseType == domain.Finance {
				rouEnding = settleResidual(sched, "ROU asset", rouEnding)
			} else if rouEnding.Abs().LessThanOrEqual(residualTolerance) {
				rouEnding = decimal.Zero
			}
		}

		sched.Rows = append(sched.Rows, domain.ScheduleRow{
			Month: month,
			ROUAsset: domain.ROURollforward{
				Beginning:    rou,
				Amortization: rouAmortization,
				Ending:       rouEnding,
			},
			Liability: domain.LiabilityRollforward{
				Beginning: liability,
				Interest:  interest,
				Principal: principal,
				Ending:    liabilityEnding,
			},
			Payment:      in.MonthlyPayment,
			TotalExpense: totalExpense,
		})

		liability = liabilityEnding
		rou = rouEnding
	}

	if len(sched.Warnings) > 0 {
		logger.Warn("amortization schedule completed with residual drift",
			slog.Int("warnings", len(sched.Warnings)),
		)
	}
	return sched, nil
}

// settleResidual forces a near-zero final balance to exactly zero. Anything
// beyond the tolerance is preserved and recorded as a warning rather than
// silently absorbed.
func settleResidual(sched *domain.Schedule, name string, ending decimal.Decimal) decimal.Decimal {
	if ending.IsZero() {
		return ending
	}
	if ending.Abs().LessThanOrEqual(residualTolerance) {
		return decimal.Zero
	}
	sched.Warnings = append(sched.Warnings,
		fmt.Sprintf("%s ending balance of %s remains after the final month", name, ending.Round(4).String()))
	return ending
}
