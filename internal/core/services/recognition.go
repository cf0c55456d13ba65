package services

import (
	"context"
	"log/slog"

	"github.com/gallusnever/asc842-calculator/internal/core/domain"
	"github.com/gallusnever/asc842-calculator/internal/middleware"
	"github.com/shopspring/decimal"
)

// recognitionFromLiability derives the ROU asset from an already-computed
// lease liability per ASC 842-20-30-5:
//
//	ROU = liability + prepaid rent + initial direct costs - lease incentives
//
// A negative ROU asset is returned as-is; it signals inconsistent inputs and
// must be surfaced to the caller, not clamped.
func recognitionFromLiability(in domain.LeaseInputs, liability decimal.Decimal) *domain.RecognitionResult {
	rou := liability.Add(in.PrepaidRent).Add(in.InitialDirectCosts).Sub(in.LeaseIncentives)
	return &domain.RecognitionResult{
		LeaseLiability: liability,
		ROUAsset:       rou,
		Components: domain.RecognitionComponents{
			PrepaidRent:        in.PrepaidRent,
			InitialDirectCosts: in.InitialDirectCosts,
			LeaseIncentives:    in.LeaseIncentives,
		},
	}
}

// InitialRecognition computes the lease liability and ROU asset. The liability
// is the same PV the classifier reports, so classification and recognition can
// never disagree on it.
func (s *calculationService) InitialRecognition(ctx context.Context, in domain.LeaseInputs) (*domain.RecognitionResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateInputs(in); err != nil {
		return nil, err
	}
	liability, err := PresentValue(in.MonthlyPayment, in.DiscountRate, in.LeaseTermMonths, in.PaymentTiming)
	if err != nil {
		return nil, err
	}

	rec := recognitionFromLiability(in, liability)
	if rec.ROUAsset.IsNegative() {
		logger.Warn("initial recognition produced a negative ROU asset",
			slog.String("rou_asset", rec.ROUAsset.Round(2).String()),
		)
	}
	return rec, nil
}
