package service

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fincrack/stocklens/internal/domain/models"
	"github.com/fincrack/stocklens/internal/indicator"
	"github.com/fincrack/stocklens/internal/logger"
)

// defaultWindow is the moving-average window used when a request does not
// specify one.
const defaultWindow = 14

// batchParallel bounds how many batch constituents are processed at once.
// Parallelism here is purely an optimization; per-ticker isolation holds
// regardless.
const batchParallel = 4

// TickerResolver resolves free-text company input to a canonical ticker.
type TickerResolver interface {
	Resolve(input string) (string, error)
}

// MarketFetcher retrieves price history and fundamentals for a ticker.
type MarketFetcher interface {
	FetchHistory(ctx context.Context, symbol, period string) (models.PriceSeries, error)
	FetchFundamentals(ctx context.Context, symbol string) (models.Fundamentals, error)
}

// BatchResult is the outcome for one constituent of a batch request:
// either a report or the error that stopped it.
type BatchResult struct {
	Report *models.MetricsReport
	Err    error
}

// StockService composes resolver, fetcher, and indicator engine into the
// report shapes the API exposes.
type StockService interface {
	// GetStockData resolves the input and returns the full report: headline
	// metrics plus the chart-ready series with per-day SMA/EMA.
	GetStockData(ctx context.Context, companyInput string, window int) (*models.MetricsReport, []models.ChartPoint, error)

	// GetStockMetrics resolves the input and returns headline metrics only.
	GetStockMetrics(ctx context.Context, companyInput string) (*models.MetricsReport, error)

	// GetMultiStockMetrics processes each input independently and returns a
	// result per key: the resolved ticker, or the raw input when resolution
	// failed before a ticker was known. One failure never aborts siblings.
	GetMultiStockMetrics(ctx context.Context, inputs []string) map[string]BatchResult

	// GetSimpleMetrics bypasses resolution and computes headline metrics for
	// the uppercased ticker directly.
	GetSimpleMetrics(ctx context.Context, symbol string) (*models.MetricsReport, error)
}

type stockService struct {
	resolver TickerResolver
	fetcher  MarketFetcher
	lookback string
}

// NewStockService builds a StockService fetching history over the given
// lookback period (e.g., "1y").
func NewStockService(resolver TickerResolver, fetcher MarketFetcher, lookback string) StockService {
	return &stockService{resolver: resolver, fetcher: fetcher, lookback: lookback}
}

func (s *stockService) GetStockData(ctx context.Context, companyInput string, window int) (*models.MetricsReport, []models.ChartPoint, error) {
	if window < 1 {
		window = defaultWindow
	}
	symbol, err := s.resolver.Resolve(companyInput)
	if err != nil {
		return nil, nil, err
	}
	series, err := s.fetcher.FetchHistory(ctx, symbol, s.lookback)
	if err != nil {
		return nil, nil, err
	}
	report := s.buildReport(ctx, symbol, series, window)
	return report, chartSeries(series, window), nil
}

func (s *stockService) GetStockMetrics(ctx context.Context, companyInput string) (*models.MetricsReport, error) {
	symbol, err := s.resolver.Resolve(companyInput)
	if err != nil {
		return nil, err
	}
	return s.metricsForSymbol(ctx, symbol)
}

func (s *stockService) GetSimpleMetrics(ctx context.Context, symbol string) (*models.MetricsReport, error) {
	return s.metricsForSymbol(ctx, strings.ToUpper(strings.TrimSpace(symbol)))
}

func (s *stockService) GetMultiStockMetrics(ctx context.Context, inputs []string) map[string]BatchResult {
	results := make(map[string]BatchResult, len(inputs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchParallel)

	for _, input := range inputs {
		input := input // per-iteration copy; required under go < 1.22 loopvar semantics
		g.Go(func() error {
			key := input
			var result BatchResult
			if symbol, err := s.resolver.Resolve(input); err != nil {
				result.Err = err
			} else {
				key = symbol
				result.Report, result.Err = s.metricsForSymbol(gctx, symbol)
			}

			mu.Lock()
			results[key] = result
			mu.Unlock()
			// errors stay in the result map; never cancel siblings
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// metricsForSymbol fetches history once and derives every headline metric
// from that single series.
func (s *stockService) metricsForSymbol(ctx context.Context, symbol string) (*models.MetricsReport, error) {
	series, err := s.fetcher.FetchHistory(ctx, symbol, s.lookback)
	if err != nil {
		return nil, err
	}
	return s.buildReport(ctx, symbol, series, defaultWindow), nil
}

// buildReport computes the metrics report from an already-fetched series.
// A fundamentals failure degrades to the all-zero snapshot instead of
// failing the report.
func (s *stockService) buildReport(ctx context.Context, symbol string, series models.PriceSeries, window int) *models.MetricsReport {
	fundamentals, err := s.fetcher.FetchFundamentals(ctx, symbol)
	if err != nil {
		logger.L().Warn().Str("ticker", symbol).Err(err).Msg("fundamentals unavailable, using defaults")
		fundamentals = models.Fundamentals{}
	}

	closes := series.Closes()
	line, signal, histogram := indicator.MACD(closes)

	return &models.MetricsReport{
		Ticker:       symbol,
		LatestPrice:  series.Latest(),
		SMA:          indicator.SMA(closes, window),
		EMA:          indicator.EMA(closes, window),
		RSI:          indicator.RSI(closes),
		MACDLine:     line,
		MACDSignal:   signal,
		MACDHist:     histogram,
		Fundamentals: fundamentals,
	}
}

// chartSeries aligns per-day SMA/EMA values with the price series for
// visualization.
func chartSeries(series models.PriceSeries, window int) []models.ChartPoint {
	closes := series.Closes()
	sma := indicator.SMASeries(closes, window)
	ema := indicator.EMASeries(closes, window)

	points := make([]models.ChartPoint, len(series.Bars))
	for i, bar := range series.Bars {
		points[i] = models.ChartPoint{
			Date:  bar.Date.Format("2006-01-02"),
			Close: bar.Close,
			SMA:   sma[i],
			EMA:   ema[i],
		}
	}
	return points
}
