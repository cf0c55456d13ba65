package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gallusnever/asc842-calculator/internal/apperrors"
	"github.com/gallusnever/asc842-calculator/internal/dto"
	"github.com/gallusnever/asc842-calculator/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps engine errors to HTTP statuses and emits the uniform
// failure payload. Validation problems are the client's fault (400);
// computation failures mean the inputs were well-formed but describe a lease
// the engine cannot amortize (422).
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status := http.StatusInternalServerError
	message := "Internal server error"
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
		message = userMessage(err)
	case errors.Is(err, apperrors.ErrComputation):
		status = http.StatusUnprocessableEntity
		message = userMessage(err)
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
		message = userMessage(err)
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		message = userMessage(err)
	default:
		logger.Error("Unhandled error", slog.String("error", err.Error()))
	}

	if status != http.StatusInternalServerError {
		logger.Warn("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, dto.ErrorResponse{Success: false, Error: message})
}

// userMessage strips the sentinel prefix ("invalid input: ", etc.) so clients
// see only the specific explanation.
func userMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

// respondBindingError handles gin binding failures, which are always the
// client's fault.
func respondBindingError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Request binding failed", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Error: "Invalid request body: " + err.Error()})
}
