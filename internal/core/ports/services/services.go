package services

import (
	"context"

	"github.com/gallusnever/asc842-calculator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculationSvcFacade is the lease-accounting engine as seen by the handlers.
// Every method is a pure function of its inputs; implementations hold no state
// between calls.
type CalculationSvcFacade interface {
	// Classify runs the five ASC 842 tests and derives the lease type.
	Classify(ctx context.Context, in domain.LeaseInputs) (*domain.ClassificationResult, error)
	// InitialRecognition derives the lease liability and ROU asset.
	InitialRecognition(ctx context.Context, in domain.LeaseInputs) (*domain.RecognitionResult, error)
	// AmortizationSchedule builds the month-by-month rollforward for a lease
	// whose classification is already known.
	AmortizationSchedule(ctx context.Context, in domain.LeaseInputs, leaseType domain.LeaseType) (*domain.Schedule, *domain.RecognitionResult, error)
	// Calculate runs the full pipeline: classification, recognition, schedule
	// and journal entries.
	Calculate(ctx context.Context, in domain.LeaseInputs) (*domain.CalculationResult, error)
}

// TreasurySvcFacade exposes the risk-free-rate practical expedient table.
type TreasurySvcFacade interface {
	// Rates returns the yield table in ascending term order.
	Rates() []domain.TreasuryRate
	// RateForTermMonths selects the rate whose term is closest to the lease
	// term; on an exact tie the shorter term wins.
	RateForTermMonths(leaseTermMonths int) (decimal.Decimal, bool)
}

// ExportSvcFacade renders calculation results into a downloadable workbook.
type ExportSvcFacade interface {
	// CompleteWorkbook returns an xlsx file containing the summary,
	// classification tests, schedule, and journal entries.
	CompleteWorkbook(ctx context.Context, results *domain.CalculationResult, in domain.LeaseInputs) ([]byte, error)
}

// ServiceContainer holds instances of all the application services.
// It is assembled once at startup and passed to the route registration.
type ServiceContainer struct {
	Calculation CalculationSvcFacade
	Treasury    TreasurySvcFacade
	Export      ExportSvcFacade
}
