package collector

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketAdvisor/internal/model"
)

func TestSnapshot(t *testing.T) {
	fetcher := &MockFetcher{Price: 100}
	col := NewCollector(fetcher, fetcher, fetcher, zerolog.Nop())

	series, ind, err := col.Snapshot(context.Background(), "TEST.NS", 63)
	require.NoError(t, err)

	assert.Equal(t, "TEST.NS", series.Symbol)
	assert.Len(t, series.Bars, 63)
	assert.Equal(t, series.Bars[62].Close, series.CurrentPrice, "last close is the current price")

	assert.Equal(t, ind.CurrentPrice, series.CurrentPrice)
	assert.Greater(t, ind.RSI14, 0.0)
	assert.Greater(t, ind.SMA20, 0.0)
	assert.Greater(t, ind.SMA50, 0.0)
	assert.NotZero(t, ind.Return1M, "63 bars cover the 21-bar lookback")
	assert.NotZero(t, ind.Return3M, "63 bars cover the 63-bar lookback")
	assert.Zero(t, ind.Return1Y, "63 bars cannot cover the 252-bar lookback")
}

func TestSnapshot_FetchFailure(t *testing.T) {
	fetcher := &MockFetcher{FailAll: true}
	col := NewCollector(fetcher, fetcher, fetcher, zerolog.Nop())

	_, _, err := col.Snapshot(context.Background(), "TEST.NS", 63)
	assert.Error(t, err)
}

func TestSnapshot_EmptySeries(t *testing.T) {
	fetcher := &MockFetcher{Bars: map[string][]model.PriceBar{"EMPTY.NS": {}}}
	col := NewCollector(fetcher, fetcher, fetcher, zerolog.Nop())

	_, _, err := col.Snapshot(context.Background(), "EMPTY.NS", 63)
	assert.Error(t, err)
}

func TestSnapshot_ShortSeriesDegrades(t *testing.T) {
	bars := []model.PriceBar{
		{Time: time.Now().AddDate(0, 0, -2), Close: 100, Volume: 1000},
		{Time: time.Now().AddDate(0, 0, -1), Close: 102, Volume: 1100},
		{Time: time.Now(), Close: 101, Volume: 900},
	}
	fetcher := &MockFetcher{Bars: map[string][]model.PriceBar{"SHORT.NS": bars}}
	col := NewCollector(fetcher, fetcher, fetcher, zerolog.Nop())

	_, ind, err := col.Snapshot(context.Background(), "SHORT.NS", 63)
	require.NoError(t, err, "a short series is degraded, not rejected")

	assert.Equal(t, 50.0, ind.RSI14, "too few bars for RSI defaults to neutral")
	assert.InDelta(t, 101.0, ind.SMA20, 1.0, "short series SMA is the full-series mean")
	assert.Zero(t, ind.Return1M)
}

func TestFetchInfo_AbsorbsFailure(t *testing.T) {
	fetcher := &MockFetcher{FailsFor: map[string]bool{"BAD.NS": true}}
	col := NewCollector(fetcher, fetcher, fetcher, zerolog.Nop())

	info := col.FetchInfo(context.Background(), "BAD.NS")
	assert.Equal(t, model.FundamentalInfo{}, info)
}

func TestFetchSentiment_AbsorbsFailure(t *testing.T) {
	fetcher := &MockFetcher{FailsFor: map[string]bool{"BAD.NS": true}}
	col := NewCollector(fetcher, fetcher, fetcher, zerolog.Nop())

	sent := col.FetchSentiment(context.Background(), "BAD.NS")
	assert.Equal(t, model.NeutralSentiment(), sent)
}

func TestFetchSentiment_NilFetcher(t *testing.T) {
	fetcher := &MockFetcher{Price: 100}
	col := NewCollector(fetcher, fetcher, nil, zerolog.Nop())

	sent := col.FetchSentiment(context.Background(), "TEST.NS")
	assert.Equal(t, model.NeutralSentiment(), sent)
}

func TestMarketOverview(t *testing.T) {
	fetcher := &MockFetcher{Price: 5000}
	col := NewCollector(fetcher, fetcher, fetcher, zerolog.Nop())

	quotes := col.MarketOverview(context.Background())
	require.Len(t, quotes, 3)
	for _, q := range quotes {
		assert.NotEmpty(t, q.Symbol)
		assert.Positive(t, q.Price)
	}
}

func TestMarketOverview_AllFail(t *testing.T) {
	fetcher := &MockFetcher{FailAll: true}
	col := NewCollector(fetcher, fetcher, fetcher, zerolog.Nop())

	quotes := col.MarketOverview(context.Background())
	assert.Empty(t, quotes)
}
