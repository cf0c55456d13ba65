package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Terms-of-use acceptance gate
	TermsSecret         string
	TermsExpiryDuration time.Duration

	// Rate limiting, in ulule/limiter format (e.g. "120-M" = 120 per minute)
	RateLimit string

	// CORS
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("TERMS_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("TERMS_EXPIRY_DURATION", "24h")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.TermsSecret = viper.GetString("TERMS_SECRET")
	if cfg.TermsSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: TERMS_SECRET environment variable not set. Using default insecure key.")
	}

	termsExpiryStr := viper.GetString("TERMS_EXPIRY_DURATION")
	termsExpiry, err := time.ParseDuration(termsExpiryStr)
	if err != nil {
		termsExpiry = 24 * time.Hour
		log.Printf("Warning: Invalid value for TERMS_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", termsExpiryStr, termsExpiry.String())
	}
	cfg.TermsExpiryDuration = termsExpiry

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOW_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
		}
	}

	return cfg, nil
}
