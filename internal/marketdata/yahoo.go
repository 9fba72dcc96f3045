package marketdata

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"

	"github.com/fincrack/stocklens/internal/domain/models"
)

const quoteSummaryBaseURL = "https://query1.finance.yahoo.com"

// YahooProvider implements Provider against Yahoo Finance: price history via
// the finance-go chart API, fundamentals via the quoteSummary endpoint.
type YahooProvider struct {
	client *resty.Client
}

// NewYahooProvider builds a provider with a 30s HTTP timeout for the
// fundamentals client.
func NewYahooProvider() *YahooProvider {
	client := resty.New().
		SetBaseURL(quoteSummaryBaseURL).
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", "Mozilla/5.0")
	return &YahooProvider{client: client}
}

// NewYahooProviderWithBaseURL is used by tests to point the fundamentals
// client at a stub server.
func NewYahooProviderWithBaseURL(baseURL string) *YahooProvider {
	p := NewYahooProvider()
	p.client.SetBaseURL(baseURL)
	return p
}

// GetHistory fetches daily bars over the lookback period, sorted ascending
// by date. An empty result is returned as-is; the Fetcher owns the retry
// decision.
func (p *YahooProvider) GetHistory(ctx context.Context, symbol, period string) (models.PriceSeries, error) {
	end := time.Now()
	start := lookbackStart(end, period)

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}
	params.Context = &ctx

	iter := chart.Get(params)
	var bars []models.PriceBar
	for iter.Next() {
		bar := iter.Bar()
		if bar.Close.Equal(decimal.Zero) {
			// null bar (holiday or padding row)
			continue
		}
		bars = append(bars, models.PriceBar{
			Date:  time.Unix(int64(bar.Timestamp), 0).UTC(),
			Close: bar.Close.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return models.PriceSeries{}, fmt.Errorf("yahoo history for %s: %w", symbol, err)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return models.PriceSeries{Ticker: symbol, Bars: bars}, nil
}

// quoteSummaryResponse mirrors the subset of the Yahoo quoteSummary payload
// the fundamentals snapshot needs. Every numeric shows up as {"raw": n}.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			SummaryDetail struct {
				TrailingPE   yahooValue `json:"trailingPE"`
				PriceToSales yahooValue `json:"priceToSalesTrailing12Months"`
				TrailingPeg  yahooValue `json:"trailingPegRatio"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics struct {
				ForwardPE   yahooValue `json:"forwardPE"`
				PriceToBook yahooValue `json:"priceToBook"`
				PegRatio    yahooValue `json:"pegRatio"`
			} `json:"defaultKeyStatistics"`
			FinancialData struct {
				ReturnOnEquity yahooValue `json:"returnOnEquity"`
			} `json:"financialData"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

type yahooValue struct {
	Raw *float64 `json:"raw"`
}

// GetFundamentals fetches the valuation ratios for symbol. Fields the
// provider does not report stay at their zero sentinel; preferred fields
// fall back to their alternates (trailing PE before forward PE, trailing
// PEG before plain PEG).
func (p *YahooProvider) GetFundamentals(ctx context.Context, symbol string) (models.Fundamentals, error) {
	var out quoteSummaryResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("modules", "summaryDetail,defaultKeyStatistics,financialData").
		SetResult(&out).
		Get("/v10/finance/quoteSummary/" + symbol)
	if err != nil {
		return models.Fundamentals{}, fmt.Errorf("yahoo fundamentals for %s: %w", symbol, err)
	}
	if resp.StatusCode() != 200 {
		return models.Fundamentals{}, fmt.Errorf("yahoo fundamentals for %s: status %d", symbol, resp.StatusCode())
	}
	if out.QuoteSummary.Error != nil {
		return models.Fundamentals{}, fmt.Errorf("yahoo fundamentals for %s: %s", symbol, out.QuoteSummary.Error.Description)
	}
	if len(out.QuoteSummary.Result) == 0 {
		return models.Fundamentals{}, nil
	}

	r := out.QuoteSummary.Result[0]
	return models.Fundamentals{
		PERatio:  firstOf(r.SummaryDetail.TrailingPE, r.DefaultKeyStatistics.ForwardPE),
		PBRatio:  firstOf(r.DefaultKeyStatistics.PriceToBook),
		PSRatio:  firstOf(r.SummaryDetail.PriceToSales),
		PEGRatio: firstOf(r.SummaryDetail.TrailingPeg, r.DefaultKeyStatistics.PegRatio),
		ROE:      firstOf(r.FinancialData.ReturnOnEquity),
	}, nil
}

// firstOf returns the first populated raw value, or 0 when all are absent.
func firstOf(values ...yahooValue) float64 {
	for _, v := range values {
		if v.Raw != nil {
			return *v.Raw
		}
	}
	return 0
}

// lookbackStart maps a Yahoo-style period string onto a start date.
func lookbackStart(end time.Time, period string) time.Time {
	switch period {
	case "1mo":
		return end.AddDate(0, -1, 0)
	case "3mo":
		return end.AddDate(0, -3, 0)
	case "6mo":
		return end.AddDate(0, -6, 0)
	case "2y":
		return end.AddDate(-2, 0, 0)
	case "5y":
		return end.AddDate(-5, 0, 0)
	default: // "1y"
		return end.AddDate(-1, 0, 0)
	}
}
