package marketdata

import (
	"context"
	"fmt"

	"github.com/fincrack/stocklens/internal/domain/models"
)

// Provider is the upstream market-data source. Implementations are treated
// as unreliable: GetHistory may return an empty series or fail transiently,
// which is why callers go through the retrying Fetcher.
type Provider interface {
	// GetHistory returns daily price bars for the symbol over a lookback
	// period such as "1y", ordered ascending by date.
	GetHistory(ctx context.Context, symbol, period string) (models.PriceSeries, error)

	// GetFundamentals returns the valuation ratio snapshot for the symbol.
	// Individual missing fields are zero; a failed call is reported as an
	// error and the caller decides whether to degrade.
	GetFundamentals(ctx context.Context, symbol string) (models.Fundamentals, error)
}

// DataUnavailableError is the terminal failure of a history fetch: the
// provider either kept returning empty series (NoData) or kept failing
// (Err holds the last cause). Callers should not retry further.
type DataUnavailableError struct {
	Ticker   string
	Attempts int
	NoData   bool
	Err      error
}

func (e *DataUnavailableError) Error() string {
	if e.NoData {
		return fmt.Sprintf("no data available for %s after %d attempts", e.Ticker, e.Attempts)
	}
	return fmt.Sprintf("failed to fetch data for %s after %d attempts: %v", e.Ticker, e.Attempts, e.Err)
}

func (e *DataUnavailableError) Unwrap() error { return e.Err }
