package handlers

import (
	"net/http"

	portssvc "github.com/gallusnever/asc842-calculator/internal/core/ports/services"
	"github.com/gallusnever/asc842-calculator/internal/dto"
	"github.com/gin-gonic/gin"
)

// treasuryHandler serves the Treasury yield table.
type treasuryHandler struct {
	treasuryService portssvc.TreasurySvcFacade
}

// registerTreasuryRoutes registers the rate table endpoint
func registerTreasuryRoutes(rg *gin.RouterGroup, ts portssvc.TreasurySvcFacade) {
	h := &treasuryHandler{treasuryService: ts}
	rg.GET("/treasury-rates", h.getRates)
}

// getRates godoc
// @Summary Get Treasury rates
// @Description Returns the Treasury yield table used for the risk-free-rate practical expedient, keyed by term in years
// @Tags treasury
// @Produce json
// @Success 200 {object} dto.TreasuryRatesResponse
// @Router /treasury-rates [get]
func (h *treasuryHandler) getRates(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToTreasuryRatesResponse(h.treasuryService.Rates()))
}
