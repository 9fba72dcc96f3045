package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/fincrack/stocklens/config"
	"github.com/fincrack/stocklens/internal/api"
	"github.com/fincrack/stocklens/internal/logger"
	"github.com/fincrack/stocklens/internal/marketdata"
	"github.com/fincrack/stocklens/internal/service"
	"github.com/fincrack/stocklens/internal/ticker"
)

// recordsLoader is an indirection for loading the ticker dataset;
// overridden in tests to avoid touching the filesystem.
var recordsLoader = ticker.LoadCompanyRecords

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Loads the static company/ticker dataset and builds the alias table.
//   - Initializes the Yahoo market-data provider and the retrying fetcher.
//   - Creates the service and HTTP handler layers.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Build the immutable alias table; lives for the process lifetime
	records, err := recordsLoader(cfg.Market.TickerFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load ticker dataset: %w", err)
	}
	resolver := ticker.NewResolver(records)
	logger.L().Info().Int("aliases", resolver.Size()).Str("file", cfg.Market.TickerFile).Msg("alias table built")

	// Market data: Yahoo provider behind the bounded-retry fetcher
	provider := marketdata.NewYahooProvider()
	fetcher := marketdata.NewFetcher(provider, cfg.Market.MaxRetries, cfg.Market.RetryDelay)

	// Initialize service layer (business logic)
	svc := service.NewStockService(resolver, fetcher, cfg.Market.Lookback)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler, cfg.CORS)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(func() error {
		if resolver.Size() == 0 {
			return errors.New("alias table is empty")
		}
		return nil
	})
	healthHandler.Register(router)

	// Nothing to close: all state is in-memory and request-scoped
	cleanup := func() {}

	return router, cleanup, nil
}
