package collector

import (
	"context"

	"SwingScope/internal/model"
)

// Fetcher defines the interface for fetching daily price history. The
// lookback window is fixed at six months of daily bars. An explicit empty
// result (nil bars, nil error) means the provider has no data for the
// symbol; errors are reserved for transport and provider failures.
type Fetcher interface {
	FetchDailyBars(ctx context.Context, symbol string) ([]model.Bar, error)
	Name() string
}
