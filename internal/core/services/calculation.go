package services

import (
	"context"
	"log/slog"

	"github.com/gallusnever/asc842-calculator/internal/core/domain"
	portssvc "github.com/gallusnever/asc842-calculator/internal/core/ports/services"
	"github.com/gallusnever/asc842-calculator/internal/middleware"
	"github.com/shopspring/decimal"
)

// calculationService implements the lease-accounting engine. It carries no
// state: every request is one uninterrupted computation over its own stack.
type calculationService struct{}

// NewCalculationService creates the engine facade.
func NewCalculationService() portssvc.CalculationSvcFacade {
	return &calculationService{}
}

var _ portssvc.CalculationSvcFacade = (*calculationService)(nil)

// Calculate runs the full pipeline: classification, initial recognition,
// amortization schedule, and journal entries. The lease liability flows from
// the classifier's PV straight into recognition so the two can never diverge.
func (s *calculationService) Calculate(ctx context.Context, in domain.LeaseInputs) (*domain.CalculationResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	classification, err := s.Classify(ctx, in)
	if err != nil {
		return nil, err
	}

	rec := recognitionFromLiability(in, classification.Calculations.PVLeasePayments)

	sched, err := buildSchedule(ctx, in, classification.LeaseType, rec)
	if err != nil {
		return nil, err
	}

	entries, err := generateJournalEntries(in, classification.LeaseType, rec, sched)
	if err != nil {
		return nil, err
	}

	totalInterest := decimal.Zero
	for _, row := range sched.Rows {
		totalInterest = totalInterest.Add(row.Liability.Interest)
	}

	result := &domain.CalculationResult{
		Classification:     *classification,
		InitialRecognition: *rec,
		Schedule:           *sched,
		JournalEntries:     *entries,
		Summary: domain.CalculationSummary{
			TotalPayments: in.MonthlyPayment.Mul(decimal.NewFromInt(int64(in.LeaseTermMonths))),
			TotalInterest: totalInterest,
			EffectiveRate: in.DiscountRate,
		},
	}

	logger.Info("lease calculation completed",
		slog.String("lease_type", string(classification.LeaseType)),
		slog.Int("schedule_months", len(sched.Rows)),
		slog.String("lease_liability", rec.LeaseLiability.Round(2).String()),
	)
	return result, nil
}
