package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gallusnever/asc842-calculator/internal/dto"
	"github.com/gallusnever/asc842-calculator/internal/middleware"
	"github.com/gallusnever/asc842-calculator/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// termsHandler manages the anonymous terms-of-use acceptance gate.
type termsHandler struct {
	cfg *config.Config
}

// registerTermsRoutes registers the acceptance endpoints
func registerTermsRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	h := &termsHandler{cfg: cfg}
	rg.GET("/check-acceptance", h.checkAcceptance)
	rg.POST("/accept-terms", h.acceptTerms)
}

// checkAcceptance godoc
// @Summary Check terms acceptance
// @Description Reports whether the current session holds a valid terms-acceptance token
// @Tags terms
// @Produce json
// @Success 200 {object} dto.TermsStatusResponse
// @Router /check-acceptance [get]
func (h *termsHandler) checkAcceptance(c *gin.Context) {
	accepted := middleware.HasAcceptedTerms(c, h.cfg.TermsSecret)
	c.JSON(http.StatusOK, dto.TermsStatusResponse{Success: true, Accepted: accepted})
}

// acceptTerms godoc
// @Summary Accept the terms of use
// @Description Issues a signed, expiring acceptance token as a cookie
// @Tags terms
// @Produce json
// @Success 200 {object} dto.TermsStatusResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /accept-terms [post]
func (h *termsHandler) acceptTerms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	token, err := middleware.IssueAcceptanceToken(h.cfg.TermsSecret, h.cfg.TermsExpiryDuration, time.Now())
	if err != nil {
		logger.Error("Failed to sign acceptance token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Error: "Internal server error"})
		return
	}

	maxAge := int(h.cfg.TermsExpiryDuration.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TermsCookieName, token, maxAge, "/", "", h.cfg.IsProduction, true)

	logger.Info("Terms of use accepted")
	c.JSON(http.StatusOK, dto.TermsStatusResponse{Success: true, Accepted: true})
}
