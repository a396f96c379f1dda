package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"MarketAdvisor/internal/calculator"
	"MarketAdvisor/internal/model"
)

// Collector orchestrates data fetching and indicator computation. A fetch
// failure is the only error it surfaces; indicator computations degrade to
// their documented fallback values instead.
type Collector struct {
	Prices    Fetcher
	Info      InfoFetcher
	Sentiment SentimentFetcher
	log       zerolog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(prices Fetcher, info InfoFetcher, sentiment SentimentFetcher, log zerolog.Logger) *Collector {
	return &Collector{
		Prices:    prices,
		Info:      info,
		Sentiment: sentiment,
		log:       log.With().Str("component", "collector").Logger(),
	}
}

// Snapshot fetches up to `days` daily bars for a symbol and computes the full
// indicator set. The series' last close doubles as the current price.
func (c *Collector) Snapshot(ctx context.Context, symbol string, days int) (*model.PriceSeries, *model.Indicators, error) {
	bars, err := c.Prices.FetchDailyBars(ctx, symbol, days)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch daily bars for %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, nil, fmt.Errorf("no bars returned for %s", symbol)
	}

	series := &model.PriceSeries{
		Symbol:       symbol,
		Bars:         bars,
		CurrentPrice: bars[len(bars)-1].Close,
		FetchedAt:    time.Now().UTC(),
	}
	return series, c.computeIndicators(series), nil
}

func (c *Collector) computeIndicators(series *model.PriceSeries) *model.Indicators {
	closes := series.Closes()
	volumes := series.Volumes()
	ind := &model.Indicators{CurrentPrice: series.CurrentPrice}

	if rsi, err := calculator.CalculateRSI(closes, 14); err != nil {
		c.log.Warn().Err(err).Str("symbol", series.Symbol).Msg("rsi failed, defaulting to 50")
		ind.RSI14 = 50
	} else {
		ind.RSI14 = rsi
	}

	if sma, err := calculator.CalculateSMA(closes, 20); err != nil {
		c.log.Warn().Err(err).Str("symbol", series.Symbol).Msg("sma20 failed, using current price")
		ind.SMA20 = series.CurrentPrice
	} else {
		ind.SMA20 = sma
	}

	if sma, err := calculator.CalculateSMA(closes, 50); err != nil {
		c.log.Warn().Err(err).Str("symbol", series.Symbol).Msg("sma50 failed, using current price")
		ind.SMA50 = series.CurrentPrice
	} else {
		ind.SMA50 = sma
	}

	if ratio, err := calculator.CalculateVolumeRatio(volumes); err != nil {
		ind.VolumeRatio = 1
	} else {
		ind.VolumeRatio = ratio
	}

	if vol, err := calculator.CalculateVolatility(closes); err != nil {
		c.log.Warn().Err(err).Str("symbol", series.Symbol).Msg("volatility failed, defaulting to 0")
	} else {
		ind.Volatility = vol
	}

	if ret, err := calculator.CalculateAnnualizedReturn(closes); err == nil {
		ind.AnnualizedReturn = ret
	}
	if sharpe, err := calculator.CalculateSharpeRatio(closes); err == nil {
		ind.SharpeRatio = sharpe
	}
	if sortino, err := calculator.CalculateSortinoRatio(closes); err == nil {
		ind.SortinoRatio = sortino
	}
	if dd, err := calculator.CalculateMaxDrawdown(closes); err == nil {
		ind.MaxDrawdown = dd
	}

	// Period returns stay zero when the series is shorter than the lookback;
	// that is routine for short fetch windows, not worth a warning.
	if r, err := calculator.CalculatePeriodReturn(closes, 21); err == nil {
		ind.Return1M = r
	}
	if r, err := calculator.CalculatePeriodReturn(closes, 63); err == nil {
		ind.Return3M = r
	}
	if r, err := calculator.CalculatePeriodReturn(closes, 252); err == nil {
		ind.Return1Y = r
	}

	return ind
}

// FetchInfo retrieves fundamentals, absorbing failures into an empty struct.
func (c *Collector) FetchInfo(ctx context.Context, symbol string) model.FundamentalInfo {
	if c.Info == nil {
		return model.FundamentalInfo{}
	}
	info, err := c.Info.FetchInfo(ctx, symbol)
	if err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("info fetch failed, using empty fundamentals")
		return model.FundamentalInfo{}
	}
	return info
}

// FetchSentiment retrieves news sentiment, absorbing failures into the
// neutral default.
func (c *Collector) FetchSentiment(ctx context.Context, symbol string) model.SentimentSignal {
	if c.Sentiment == nil {
		return model.NeutralSentiment()
	}
	sent, err := c.Sentiment.FetchSentiment(ctx, symbol)
	if err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("sentiment fetch failed, using neutral")
		return model.NeutralSentiment()
	}
	return sent
}

// IndexQuote is one entry of the market overview.
type IndexQuote struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	ChangePct float64 `json:"change_pct"`
}

// overviewIndices are the major indices shown on the dashboard.
var overviewIndices = []string{"^GSPC", "^DJI", "^IXIC"}

// MarketOverview returns the latest close and day-over-day change for the
// major indices. Indices that fail to fetch are skipped.
func (c *Collector) MarketOverview(ctx context.Context) []IndexQuote {
	quotes := make([]IndexQuote, 0, len(overviewIndices))
	for _, symbol := range overviewIndices {
		bars, err := c.Prices.FetchDailyBars(ctx, symbol, 5)
		if err != nil || len(bars) < 2 {
			c.log.Warn().Err(err).Str("symbol", symbol).Msg("overview fetch failed, skipping")
			continue
		}
		last := bars[len(bars)-1].Close
		prev := bars[len(bars)-2].Close
		changePct := 0.0
		if prev != 0 {
			changePct = (last - prev) / prev * 100
		}
		quotes = append(quotes, IndexQuote{Symbol: symbol, Price: last, ChangePct: changePct})
	}
	return quotes
}
