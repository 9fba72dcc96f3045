package marketdata

import (
	"context"
	"time"

	"github.com/fincrack/stocklens/internal/domain/models"
	"github.com/fincrack/stocklens/internal/logger"
)

const (
	// DefaultMaxAttempts bounds how often a history fetch is tried.
	DefaultMaxAttempts = 3
	// DefaultBackoff is the fixed delay between attempts.
	DefaultBackoff = time.Second
)

// Fetcher wraps a Provider with the bounded retry policy for price history.
//
// A non-empty series returns immediately. An empty series or a provider
// error triggers a fixed backoff and another attempt, up to the bound;
// exhaustion yields *DataUnavailableError. The backoff honors context
// cancellation; the in-flight provider call is left to finish on its own.
type Fetcher struct {
	provider    Provider
	maxAttempts int
	backoff     time.Duration
}

// NewFetcher builds a Fetcher. Non-positive maxAttempts or backoff fall back
// to the defaults.
func NewFetcher(provider Provider, maxAttempts int, backoff time.Duration) *Fetcher {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	if backoff <= 0 {
		backoff = DefaultBackoff
	}
	return &Fetcher{provider: provider, maxAttempts: maxAttempts, backoff: backoff}
}

// FetchHistory retrieves the daily price series for symbol over the lookback
// period, retrying per the policy above.
func (f *Fetcher) FetchHistory(ctx context.Context, symbol, period string) (models.PriceSeries, error) {
	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		series, err := f.provider.GetHistory(ctx, symbol, period)
		if err != nil {
			if attempt == f.maxAttempts {
				return models.PriceSeries{}, &DataUnavailableError{Ticker: symbol, Attempts: attempt, Err: err}
			}
			logger.L().Warn().Str("ticker", symbol).Int("attempt", attempt).Err(err).Msg("history fetch failed, retrying")
		} else if len(series.Bars) > 0 {
			return series, nil
		} else {
			logger.L().Warn().Str("ticker", symbol).Int("attempt", attempt).Msg("history fetch returned empty series")
		}
		if attempt < f.maxAttempts {
			if err := sleep(ctx, f.backoff); err != nil {
				return models.PriceSeries{}, err
			}
		}
	}
	return models.PriceSeries{}, &DataUnavailableError{Ticker: symbol, Attempts: f.maxAttempts, NoData: true}
}

// FetchFundamentals passes through to the provider; retry adds little here
// because a missing ratio degrades to its zero sentinel anyway.
func (f *Fetcher) FetchFundamentals(ctx context.Context, symbol string) (models.Fundamentals, error) {
	return f.provider.GetFundamentals(ctx, symbol)
}

// sleep waits for d or until ctx is cancelled, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
