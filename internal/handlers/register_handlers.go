package handlers

import (
	"log/slog"
	"time"

	"github.com/gallusnever/asc842-calculator/cmd/docs"
	portssvc "github.com/gallusnever/asc842-calculator/internal/core/ports/services"
	"github.com/gallusnever/asc842-calculator/internal/middleware"
	"github.com/gallusnever/asc842-calculator/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.Use(cors.New(corsConfig(cfg)))

	// Add health check route
	r.GET("/health", getHealth)

	setupAPIRoutes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group. The calculation and download
// routes sit behind the rate limiter and the terms-acceptance gate; the
// read-only routes and the acceptance endpoints themselves stay open.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api")

	registerTermsRoutes(api, cfg)
	registerTreasuryRoutes(api, services.Treasury)

	gated := api.Group("", middleware.RateLimit(newRateLimiter(cfg)), middleware.RequireTermsAcceptance(cfg.TermsSecret))
	registerCalculationRoutes(gated, services.Calculation, services.Treasury)
	registerExportRoutes(gated, services.Calculation, services.Treasury, services.Export)
}

// newRateLimiter builds an in-memory limiter from the configured rate. The
// engine is stateless, so a per-process store is all the deployment needs.
func newRateLimiter(cfg *config.Config) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		slog.Warn("Invalid RATE_LIMIT value, falling back to 120-M", slog.String("value", cfg.RateLimit), slog.String("error", err.Error()))
		rate = limiter.Rate{Period: time.Minute, Limit: 120}
	}
	return limiter.New(memory.NewStore(), rate)
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSAllowOrigins
	// Cookies carry the terms-acceptance token.
	corsCfg.AllowCredentials = true
	corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, "Content-Disposition", "X-Request-ID")
	return corsCfg
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
