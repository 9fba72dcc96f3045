package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	TICKER_FILE=./data/ticker.json
//	LOOKBACK_PERIOD=1y
//	FETCH_MAX_RETRIES=3
//	FETCH_RETRY_DELAY=1s
//	APP_ENV=development
//	FRONTEND_URL=http://localhost:3001
type Config struct {
	Server ServerConfig // HTTP server configuration
	Market MarketConfig // market-data fetch settings
	CORS   CORSConfig   // cross-origin policy
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// MarketConfig defines the ticker dataset location and the price-history
// fetch policy.
//
// Fields:
//   - TickerFile: path of the static company/ticker JSON dataset.
//   - Lookback: history window requested from the provider (e.g., "1y").
//   - MaxRetries: attempts before a fetch is declared unavailable.
//   - RetryDelay: fixed backoff between attempts.
type MarketConfig struct {
	TickerFile string
	Lookback   string
	MaxRetries int
	RetryDelay time.Duration
}

// CORSConfig controls which browser origins may call the API.
//
// In production only the configured frontend origin is allowed; in
// development every origin is accepted.
type CORSConfig struct {
	Environment    string
	FrontendURL    string
	AllowedOrigins []string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the
//     app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("TICKER_FILE", "./data/ticker.json")
	viper.SetDefault("LOOKBACK_PERIOD", "1y")
	viper.SetDefault("FETCH_MAX_RETRIES", 3)
	viper.SetDefault("FETCH_RETRY_DELAY", "1s")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("FRONTEND_URL", "http://localhost:3001")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Market: MarketConfig{
			TickerFile: viper.GetString("TICKER_FILE"),
			Lookback:   viper.GetString("LOOKBACK_PERIOD"),
			MaxRetries: viper.GetInt("FETCH_MAX_RETRIES"),
			RetryDelay: viper.GetDuration("FETCH_RETRY_DELAY"),
		},
		CORS: CORSConfig{
			Environment: viper.GetString("APP_ENV"),
			FrontendURL: viper.GetString("FRONTEND_URL"),
		},
	}

	AppConfig.CORS.AllowedOrigins = allowedOrigins(AppConfig.CORS)

	// Validate critical fields
	validateConfig()
}

// allowedOrigins derives the origin whitelist from the environment: the
// configured frontend only in production, everything in development.
func allowedOrigins(c CORSConfig) []string {
	if c.Environment == "production" {
		return []string{c.FrontendURL}
	}
	return []string{"*"}
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Market.TickerFile == "" {
		missing = append(missing, "TICKER_FILE")
	}
	if AppConfig.Market.Lookback == "" {
		missing = append(missing, "LOOKBACK_PERIOD")
	}
	if AppConfig.Market.MaxRetries < 1 {
		missing = append(missing, "FETCH_MAX_RETRIES")
	}
	if AppConfig.Market.RetryDelay <= 0 {
		missing = append(missing, "FETCH_RETRY_DELAY")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
