package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fincrack/stocklens/internal/domain/models"
	"github.com/fincrack/stocklens/internal/marketdata"
	"github.com/fincrack/stocklens/internal/ticker"
)

type stubResolver struct {
	table map[string]string
}

func (s *stubResolver) Resolve(input string) (string, error) {
	if symbol, ok := s.table[strings.ToUpper(input)]; ok {
		return symbol, nil
	}
	return "", &ticker.UnresolvedError{Input: input}
}

type stubFetcher struct {
	mu           sync.Mutex
	historyCalls int

	series       models.PriceSeries
	histErr      error
	fundamentals models.Fundamentals
	fundErr      error
}

func (s *stubFetcher) FetchHistory(_ context.Context, symbol, _ string) (models.PriceSeries, error) {
	s.mu.Lock()
	s.historyCalls++
	s.mu.Unlock()
	if s.histErr != nil {
		return models.PriceSeries{}, s.histErr
	}
	series := s.series
	series.Ticker = symbol
	return series, nil
}

func (s *stubFetcher) FetchFundamentals(_ context.Context, _ string) (models.Fundamentals, error) {
	return s.fundamentals, s.fundErr
}

var (
	_ TickerResolver = (*stubResolver)(nil)
	_ MarketFetcher  = (*stubFetcher)(nil)
)

func testSeries(n int) models.PriceSeries {
	series := models.PriceSeries{}
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		series.Bars = append(series.Bars, models.PriceBar{
			Date:  day.AddDate(0, 0, i),
			Close: 100 + float64(i),
		})
	}
	return series
}

func newTestService(fetcher *stubFetcher) StockService {
	resolver := &stubResolver{table: map[string]string{
		"AAPL":       "AAPL",
		"APPLE INC.": "AAPL",
		"MSFT":       "MSFT",
	}}
	return NewStockService(resolver, fetcher, "1y")
}

func TestGetStockMetrics(t *testing.T) {
	fetcher := &stubFetcher{
		series:       testSeries(60),
		fundamentals: models.Fundamentals{PERatio: 28.9, ROE: 1.4},
	}
	svc := newTestService(fetcher)

	report, err := svc.GetStockMetrics(context.Background(), "Apple Inc.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Ticker != "AAPL" {
		t.Fatalf("expected resolved ticker AAPL, got %s", report.Ticker)
	}
	if report.LatestPrice != 159 {
		t.Fatalf("expected latest close 159, got %v", report.LatestPrice)
	}
	if report.Fundamentals.PERatio != 28.9 {
		t.Fatalf("fundamentals not attached: %+v", report.Fundamentals)
	}
	if math.IsNaN(report.RSI) || report.RSI < 0 || report.RSI > 100 {
		t.Fatalf("RSI out of bounds: %v", report.RSI)
	}
	if fetcher.historyCalls != 1 {
		t.Fatalf("history must be fetched exactly once, got %d", fetcher.historyCalls)
	}
}

func TestGetStockMetrics_Unresolved(t *testing.T) {
	fetcher := &stubFetcher{series: testSeries(10)}
	svc := newTestService(fetcher)

	_, err := svc.GetStockMetrics(context.Background(), "NotARealCompanyXYZ")
	var unresolved *ticker.UnresolvedError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected *UnresolvedError, got %v", err)
	}
	if fetcher.historyCalls != 0 {
		t.Fatalf("no fetch should happen for unresolved input")
	}
}

func TestGetStockMetrics_FundamentalsDegrade(t *testing.T) {
	fetcher := &stubFetcher{
		series:  testSeries(30),
		fundErr: errors.New("quoteSummary down"),
	}
	svc := newTestService(fetcher)

	report, err := svc.GetStockMetrics(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("fundamentals failure must not fail the report: %v", err)
	}
	if report.Fundamentals != (models.Fundamentals{}) {
		t.Fatalf("expected zero fundamentals, got %+v", report.Fundamentals)
	}
}

func TestGetStockData_ChartAligned(t *testing.T) {
	fetcher := &stubFetcher{series: testSeries(40)}
	svc := newTestService(fetcher)

	report, chart, err := svc.GetStockData(context.Background(), "AAPL", 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chart) != 40 {
		t.Fatalf("chart must have one point per bar, got %d", len(chart))
	}
	if chart[0].Date != "2025-01-01" {
		t.Fatalf("unexpected first chart date: %s", chart[0].Date)
	}
	// SMA undefined until the window fills, defined afterwards
	if !math.IsNaN(chart[12].SMA) {
		t.Fatalf("SMA should be NaN before the window fills")
	}
	if math.IsNaN(chart[13].SMA) {
		t.Fatalf("SMA should be defined once the window fills")
	}
	// EMA is seeded from the first bar and always defined
	if math.IsNaN(chart[0].EMA) {
		t.Fatalf("EMA should be defined from the first bar")
	}
	last := chart[len(chart)-1]
	if last.SMA != report.SMA || last.EMA != report.EMA {
		t.Fatalf("headline SMA/EMA must equal the final chart values")
	}
}

func TestGetStockData_DefaultWindow(t *testing.T) {
	fetcher := &stubFetcher{series: testSeries(40)}
	svc := newTestService(fetcher)

	withDefault, _, err := svc.GetStockData(context.Background(), "AAPL", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	explicit, _, err := svc.GetStockData(context.Background(), "AAPL", 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withDefault.SMA != explicit.SMA {
		t.Fatalf("window 0 should fall back to the 14-day default")
	}
}

func TestGetSimpleMetrics_UppercasesTicker(t *testing.T) {
	fetcher := &stubFetcher{series: testSeries(20)}
	svc := newTestService(fetcher)

	report, err := svc.GetSimpleMetrics(context.Background(), " aapl ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Ticker != "AAPL" {
		t.Fatalf("expected AAPL, got %s", report.Ticker)
	}
}

func TestGetMultiStockMetrics_PartialFailure(t *testing.T) {
	fetcher := &stubFetcher{series: testSeries(30)}
	svc := newTestService(fetcher)

	results := svc.GetMultiStockMetrics(context.Background(), []string{"AAPL", "NotReal", "MSFT"})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if result, ok := results["AAPL"]; !ok || result.Err != nil || result.Report == nil {
		t.Fatalf("AAPL should succeed: %+v", result)
	}
	if result, ok := results["MSFT"]; !ok || result.Err != nil {
		t.Fatalf("MSFT should succeed: %+v", result)
	}

	// failed resolution is keyed by the raw input
	result, ok := results["NotReal"]
	if !ok {
		t.Fatalf("missing entry for raw input NotReal: %v", results)
	}
	var unresolved *ticker.UnresolvedError
	if !errors.As(result.Err, &unresolved) {
		t.Fatalf("expected *UnresolvedError, got %v", result.Err)
	}
}

func TestGetMultiStockMetrics_FetchFailureIsolated(t *testing.T) {
	fetcher := &stubFetcher{
		histErr: &marketdata.DataUnavailableError{Ticker: "AAPL", Attempts: 3, NoData: true},
	}
	svc := newTestService(fetcher)

	results := svc.GetMultiStockMetrics(context.Background(), []string{"AAPL", "NotReal"})

	if results["AAPL"].Err == nil {
		t.Fatalf("expected fetch error for AAPL")
	}
	if results["NotReal"].Err == nil {
		t.Fatalf("expected resolution error for NotReal")
	}
}
