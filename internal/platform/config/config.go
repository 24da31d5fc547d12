package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// CatalogBypassEnabled gates the staging-only "all cars" resolution path.
	// Keep this false in production.
	CatalogBypassEnabled bool

	RatesAPIBaseURL string
	RatesCacheTTL   time.Duration

	GeoCacheTTL        time.Duration
	GeoProviderTimeout time.Duration

	PayPalBaseURL  string
	PayPalClientID string
	PayPalSecret   string

	PosthogAPIKey string

	// PublicRateLimit is an ulule/limiter formatted rate, e.g. "300-H".
	PublicRateLimit string

	AllowedOrigins []string

	// AdminEmail/AdminPassword bootstrap the first back-office user on
	// startup. Seeding is skipped when either is empty or the user exists.
	AdminEmail    string
	AdminPassword string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "carvoy-backend")
	viper.SetDefault("CATALOG_BYPASS_ENABLED", false)
	viper.SetDefault("RATES_API_BASE_URL", "https://open.er-api.com/v6")
	viper.SetDefault("RATES_CACHE_TTL", "1h")
	viper.SetDefault("GEO_CACHE_TTL", "30m")
	viper.SetDefault("GEO_PROVIDER_TIMEOUT", "3s")
	viper.SetDefault("PAYPAL_BASE_URL", "https://api-m.sandbox.paypal.com")
	viper.SetDefault("PAYPAL_CLIENT_ID", "")
	viper.SetDefault("PAYPAL_SECRET", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("PUBLIC_RATE_LIMIT", "300-H")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.CatalogBypassEnabled = viper.GetBool("CATALOG_BYPASS_ENABLED")
	if cfg.CatalogBypassEnabled && cfg.IsProduction {
		log.Println("Warning: CATALOG_BYPASS_ENABLED is set on a production deployment.")
	}

	cfg.RatesAPIBaseURL = viper.GetString("RATES_API_BASE_URL")
	cfg.RatesCacheTTL = parseDurationOrDefault("RATES_CACHE_TTL", time.Hour)
	cfg.GeoCacheTTL = parseDurationOrDefault("GEO_CACHE_TTL", 30*time.Minute)
	cfg.GeoProviderTimeout = parseDurationOrDefault("GEO_PROVIDER_TIMEOUT", 3*time.Second)

	cfg.PayPalBaseURL = viper.GetString("PAYPAL_BASE_URL")
	cfg.PayPalClientID = viper.GetString("PAYPAL_CLIENT_ID")
	cfg.PayPalSecret = viper.GetString("PAYPAL_SECRET")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PublicRateLimit = viper.GetString("PUBLIC_RATE_LIMIT")
	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")
	cfg.AdminEmail = viper.GetString("ADMIN_EMAIL")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")

	return cfg, nil
}

func parseDurationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		return fallback
	}
	return d
}
