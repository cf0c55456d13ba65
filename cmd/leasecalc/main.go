package main

import (
	"log/slog"
	"os"

	_ "github.com/gallusnever/asc842-calculator/cmd/docs"
	portssvc "github.com/gallusnever/asc842-calculator/internal/core/ports/services"
	"github.com/gallusnever/asc842-calculator/internal/core/services"
	"github.com/gallusnever/asc842-calculator/internal/handlers"
	"github.com/gallusnever/asc842-calculator/internal/middleware"
	"github.com/gallusnever/asc842-calculator/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title ASC 842 Lease Calculator API
// @version 1.0
// @description Lease classification, initial recognition, amortization and journal entry engine per ASC 842.

// @host localhost:8080
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The engine is stateless, so the container holds pure services only.
	container := &portssvc.ServiceContainer{
		Calculation: services.NewCalculationService(),
		Treasury:    services.NewTreasuryService(),
		Export:      services.NewExportService(),
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
