package model

import "time"

// AssetClass distinguishes the two supported instrument types.
type AssetClass string

const (
	AssetStock AssetClass = "STOCK"
	AssetFund  AssetClass = "FUND"
)

// PriceBar represents a single daily candlestick bar.
type PriceBar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds raw chronological price data for one symbol.
// It is owned by the analysis that fetched it and never mutated afterwards.
type PriceSeries struct {
	Symbol       string
	Bars         []PriceBar
	CurrentPrice float64
	FetchedAt    time.Time
}

// Closes extracts the closing prices in chronological order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Volumes extracts the traded volumes in chronological order.
func (s *PriceSeries) Volumes() []float64 {
	volumes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		volumes[i] = b.Volume
	}
	return volumes
}
