package collector

import (
	"context"
	"fmt"
	"time"

	"MarketAdvisor/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price     float64
	Bars      map[string][]model.PriceBar // per-symbol override
	FailAll   bool
	FailsFor  map[string]bool
	Info      model.FundamentalInfo
	Sentiment model.SentimentSignal
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, symbol string, days int) ([]model.PriceBar, error) {
	if m.FailAll || m.FailsFor[symbol] {
		return nil, fmt.Errorf("mock: fetch failed for %s", symbol)
	}
	if bars, ok := m.Bars[symbol]; ok {
		return bars, nil
	}
	return GenerateMockBars(m.Price, days), nil
}

func (m *MockFetcher) FetchInfo(_ context.Context, symbol string) (model.FundamentalInfo, error) {
	if m.FailAll || m.FailsFor[symbol] {
		return model.FundamentalInfo{}, fmt.Errorf("mock: info failed for %s", symbol)
	}
	return m.Info, nil
}

func (m *MockFetcher) FetchSentiment(_ context.Context, symbol string) (model.SentimentSignal, error) {
	if m.FailAll || m.FailsFor[symbol] {
		return model.NeutralSentiment(), fmt.Errorf("mock: sentiment failed for %s", symbol)
	}
	if m.Sentiment == (model.SentimentSignal{}) {
		return model.NeutralSentiment(), nil
	}
	return m.Sentiment, nil
}

// GenerateMockBars produces a gently trending synthetic series around a base
// price, oldest bar first.
func GenerateMockBars(basePrice float64, count int) []model.PriceBar {
	bars := make([]model.PriceBar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PriceBar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
