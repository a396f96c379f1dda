package collector

import (
	"context"

	"MarketAdvisor/internal/model"
)

// Fetcher defines the interface for fetching historical price data.
type Fetcher interface {
	FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.PriceBar, error)
	Name() string
}

// InfoFetcher retrieves fundamental fields for a symbol. Implementations
// return whatever subset is available; absent fields stay zero.
type InfoFetcher interface {
	FetchInfo(ctx context.Context, symbol string) (model.FundamentalInfo, error)
}

// SentimentFetcher retrieves aggregated news sentiment for a symbol.
type SentimentFetcher interface {
	FetchSentiment(ctx context.Context, symbol string) (model.SentimentSignal, error)
}
