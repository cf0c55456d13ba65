package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/gallusnever/asc842-calculator/internal/core/ports/services"
	"github.com/gallusnever/asc842-calculator/internal/dto"
	"github.com/gallusnever/asc842-calculator/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportHandler serves the downloadable workbook.
type exportHandler struct {
	calcService     portssvc.CalculationSvcFacade
	treasuryService portssvc.TreasurySvcFacade
	exportService   portssvc.ExportSvcFacade
}

// registerExportRoutes registers the download endpoint
func registerExportRoutes(rg *gin.RouterGroup, cs portssvc.CalculationSvcFacade, ts portssvc.TreasurySvcFacade, es portssvc.ExportSvcFacade) {
	h := &exportHandler{calcService: cs, treasuryService: ts, exportService: es}
	rg.POST("/download-complete", h.downloadComplete)
}

// downloadComplete godoc
// @Summary Download the complete analysis workbook
// @Description Recomputes the full calculation from the posted inputs and returns it as an xlsx workbook
// @Tags export
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body dto.DownloadRequest true "Lease inputs (posted results are ignored; the export recomputes)"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Terms of use not accepted"
// @Failure 422 {object} dto.ErrorResponse "Computation failure"
// @Router /download-complete [post]
func (h *exportHandler) downloadComplete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	in, err := req.Inputs.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Inputs.UseTreasuryRate {
		if rate, found := h.treasuryService.RateForTermMonths(in.LeaseTermMonths); found {
			in.DiscountRate = rate
		}
	}

	result, err := h.calcService.Calculate(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	workbook, err := h.exportService.CompleteWorkbook(c.Request.Context(), result, in)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("ASC842_Complete_Analysis_%s.xlsx", time.Now().Format("20060102"))
	logger.Info("Workbook generated", slog.String("filename", filename), slog.Int("size_bytes", len(workbook)))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, workbook)
}
