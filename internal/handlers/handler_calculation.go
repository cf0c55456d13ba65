package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gallusnever/asc842-calculator/internal/core/domain"
	portssvc "github.com/gallusnever/asc842-calculator/internal/core/ports/services"
	"github.com/gallusnever/asc842-calculator/internal/dto"
	"github.com/gallusnever/asc842-calculator/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// calculationHandler handles HTTP requests for the lease-accounting engine.
type calculationHandler struct {
	calcService     portssvc.CalculationSvcFacade
	treasuryService portssvc.TreasurySvcFacade
}

// newCalculationHandler creates a new calculationHandler
func newCalculationHandler(cs portssvc.CalculationSvcFacade, ts portssvc.TreasurySvcFacade) *calculationHandler {
	return &calculationHandler{
		calcService:     cs,
		treasuryService: ts,
	}
}

// registerCalculationRoutes registers the calculation endpoints
func registerCalculationRoutes(rg *gin.RouterGroup, cs portssvc.CalculationSvcFacade, ts portssvc.TreasurySvcFacade) {
	h := newCalculationHandler(cs, ts)

	rg.POST("/unified-calculation", h.unifiedCalculation)
	rg.POST("/classify", h.classify)
	rg.POST("/initial-recognition", h.initialRecognition)
	rg.POST("/amortization", h.amortization)
}

// bindInputs binds the request body. It responds on failure and reports
// whether the caller should continue.
func (h *calculationHandler) bindInputs(c *gin.Context) (req dto.CalculationRequest, ok bool) {
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return req, false
	}
	return req, true
}

// resolveInputs converts the request to domain inputs, swapping in the
// risk-free rate when the caller opted into the Treasury-rate practical
// expedient.
func (h *calculationHandler) resolveInputs(c *gin.Context, req dto.CalculationRequest) (in domain.LeaseInputs, ok bool) {
	in, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return in, false
	}

	if req.UseTreasuryRate {
		rate, found := h.treasuryService.RateForTermMonths(in.LeaseTermMonths)
		if found {
			middleware.GetLoggerFromCtx(c.Request.Context()).Info("Applying Treasury risk-free rate",
				slog.String("rate", rate.String()),
				slog.Int("lease_term_months", in.LeaseTermMonths))
			in.DiscountRate = rate
		}
	}
	return in, true
}

// unifiedCalculation godoc
// @Summary Run the complete lease calculation
// @Description Classifies the lease, derives initial recognition, builds the amortization schedule and generates journal entries in one call
// @Tags calculation
// @Accept json
// @Produce json
// @Param request body dto.CalculationRequest true "Lease terms"
// @Success 200 {object} dto.CalculationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Terms of use not accepted"
// @Failure 422 {object} dto.ErrorResponse "Computation failure"
// @Router /unified-calculation [post]
func (h *calculationHandler) unifiedCalculation(c *gin.Context) {
	req, ok := h.bindInputs(c)
	if !ok {
		return
	}
	in, ok := h.resolveInputs(c, req)
	if !ok {
		return
	}

	result, err := h.calcService.Calculate(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCalculationResponse(result))
}

// classify godoc
// @Summary Classify a lease
// @Description Runs the five ASC 842 classification tests and returns the lease type
// @Tags calculation
// @Accept json
// @Produce json
// @Param request body dto.CalculationRequest true "Lease terms"
// @Success 200 {object} dto.ClassificationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /classify [post]
func (h *calculationHandler) classify(c *gin.Context) {
	req, ok := h.bindInputs(c)
	if !ok {
		return
	}
	in, ok := h.resolveInputs(c, req)
	if !ok {
		return
	}

	result, err := h.calcService.Classify(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ClassificationResponse{Success: true, ClassificationResult: *result})
}

// initialRecognition godoc
// @Summary Calculate initial recognition
// @Description Derives the lease liability and right-of-use asset from the lease terms
// @Tags calculation
// @Accept json
// @Produce json
// @Param request body dto.CalculationRequest true "Lease terms"
// @Success 200 {object} dto.RecognitionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /initial-recognition [post]
func (h *calculationHandler) initialRecognition(c *gin.Context) {
	req, ok := h.bindInputs(c)
	if !ok {
		return
	}
	in, ok := h.resolveInputs(c, req)
	if !ok {
		return
	}

	result, err := h.calcService.InitialRecognition(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RecognitionResponse{Success: true, RecognitionResult: *result})
}

// amortization godoc
// @Summary Build the amortization schedule
// @Description Builds the month-by-month liability and ROU rollforward for a lease whose classification is already known
// @Tags calculation
// @Accept json
// @Produce json
// @Param request body dto.CalculationRequest true "Lease terms with lease_type"
// @Success 200 {object} dto.ScheduleResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 422 {object} dto.ErrorResponse "Computation failure"
// @Router /amortization [post]
func (h *calculationHandler) amortization(c *gin.Context) {
	req, ok := h.bindInputs(c)
	if !ok {
		return
	}
	leaseType, err := req.ParseLeaseType()
	if err != nil {
		respondError(c, err)
		return
	}
	in, ok := h.resolveInputs(c, req)
	if !ok {
		return
	}

	schedule, recognition, err := h.calcService.AmortizationSchedule(c.Request.Context(), in, leaseType)
	if err != nil {
		respondError(c, err)
		return
	}

	totalPayments := in.MonthlyPayment.Mul(decimal.NewFromInt(int64(in.LeaseTermMonths)))
	c.JSON(http.StatusOK, dto.ScheduleResponse{
		Success:  true,
		Schedule: schedule.Rows,
		Summary: dto.ScheduleSummaryResponse{
			InitialLiability: recognition.LeaseLiability,
			InitialROU:       recognition.ROUAsset,
			TotalPayments:    totalPayments,
		},
		Warnings: schedule.Warnings,
	})
}
