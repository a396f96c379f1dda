package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketAdvisor/internal/model"
)

func bullishStockFixture() (*model.Indicators, *model.FundamentalInfo, model.SentimentSignal) {
	ind := &model.Indicators{
		CurrentPrice: 110,
		SMA20:        100,
		SMA50:        95,
		RSI14:        25,
		VolumeRatio:  1.3,
		Volatility:   18,
	}
	info := &model.FundamentalInfo{
		LongName:  "Test Corp",
		Sector:    "Technology",
		PERatio:   8,
		MarketCap: 1e9,
	}
	sent := model.SentimentSignal{Score: 0.75, SampleCount: 12}
	return ind, info, sent
}

func TestScoreStock_EveryRuleFires(t *testing.T) {
	ind, info, sent := bullishStockFixture()
	s := ScoreStock(ind, info, sent)

	// +2 trend, +1 oversold RSI, +1 volume, +2 low P/E, +1 small cap, +1 sentiment
	assert.InDelta(t, 4.0, s.Technical, 1e-9)
	assert.InDelta(t, 3.0, s.Fundamental, 1e-9)
	assert.InDelta(t, 1.0, s.Sentiment, 1e-9)
	assert.InDelta(t, 8.0, s.Total, 1e-9)
}

func TestAnalyzeStock_StrongBuy(t *testing.T) {
	ind, info, sent := bullishStockFixture()
	rec := AnalyzeStock("TEST.NS", ind, info, sent)

	require.NotNil(t, rec)
	assert.Equal(t, model.ActionBuy, rec.Action)
	assert.InDelta(t, 0.85, rec.Confidence, 1e-9, "confidence caps at 0.85")
	assert.InDelta(t, 8.0, rec.Score, 1e-9)
	assert.InDelta(t, 132.0, rec.TargetPrice, 1e-9, "110 * (1.10 + 5*0.02)")
	assert.Equal(t, "medium term", rec.TimeHorizon)
	assert.Equal(t, model.AssetStock, rec.AssetClass)
	assert.Equal(t, "Test Corp", rec.Name)

	assert.Contains(t, rec.Reasoning, "Strong technical uptrend with price above key moving averages")
	assert.Contains(t, rec.Reasoning, "RSI indicates oversold conditions, potential buying opportunity")
	assert.Contains(t, rec.Reasoning, "Positive news sentiment supports the outlook")
	assert.Contains(t, rec.Reasoning, "Attractive valuation with low P/E ratio")
	assert.LessOrEqual(t, len(rec.RiskFactors), 4)
	assert.LessOrEqual(t, len(rec.KeyFactors), 4)
}

func TestAnalyzeStock_Sell(t *testing.T) {
	ind := &model.Indicators{
		CurrentPrice: 80,
		SMA20:        100,
		SMA50:        95,
		RSI14:        78,
		VolumeRatio:  0.6,
		Volatility:   42,
	}
	info := &model.FundamentalInfo{PERatio: 45, MarketCap: 50e9}
	sent := model.SentimentSignal{Score: 0.2}

	rec := AnalyzeStock("WEAK.NS", ind, info, sent)

	// -2 trend, -1 RSI, -0.5 volume, -1 P/E, -1 sentiment = -5.5
	assert.InDelta(t, -5.5, rec.Score, 1e-9)
	assert.Equal(t, model.ActionSell, rec.Action)
	assert.InDelta(t, 0.775, rec.Confidence, 1e-9)
	assert.InDelta(t, 80*(0.90-3.5*0.02), rec.TargetPrice, 1e-9)
	assert.Contains(t, rec.Reasoning, "Technical downtrend with price below moving averages")
	assert.Contains(t, rec.RiskFactors, "High volatility increases investment risk")
}

func TestAnalyzeStock_HoldWithDefaults(t *testing.T) {
	// All-neutral inputs: absent P/E uses the neutral 20 and absent market cap
	// still scores the small-cap point.
	ind := &model.Indicators{
		CurrentPrice: 100,
		SMA20:        99,
		SMA50:        101,
		RSI14:        50,
		VolumeRatio:  1.0,
	}
	info := &model.FundamentalInfo{}
	sent := model.NeutralSentiment()

	rec := AnalyzeStock("MID.NS", ind, info, sent)

	// +1 mild uptrend, +1 neutral P/E band, +1 absent cap
	assert.InDelta(t, 3.0, rec.Score, 1e-9)
	assert.Equal(t, model.ActionBuy, rec.Action, "score exactly at the buy threshold")

	// Default narratives fill in when no risk/key rule matched.
	weaker := AnalyzeStock("MID.NS", &model.Indicators{
		CurrentPrice: 100, SMA20: 101, SMA50: 99, RSI14: 50, VolumeRatio: 1.0,
	}, &model.FundamentalInfo{MarketCap: 50e9, PERatio: 20}, model.NeutralSentiment())
	assert.Equal(t, model.ActionHold, weaker.Action)
	assert.Equal(t, []string{"Market volatility", "Economic conditions"}, weaker.RiskFactors)
}

func TestScoreStock_AbsentMarketCapCountsAsSmallCap(t *testing.T) {
	ind := &model.Indicators{CurrentPrice: 100, SMA20: 101, SMA50: 102, RSI14: 50, VolumeRatio: 1}
	sent := model.NeutralSentiment()

	absent := ScoreStock(ind, &model.FundamentalInfo{PERatio: 20}, sent)
	small := ScoreStock(ind, &model.FundamentalInfo{PERatio: 20, MarketCap: 1e9}, sent)
	assert.Equal(t, small.Fundamental, absent.Fundamental)
}
