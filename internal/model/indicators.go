package model

// Indicators holds all derived technical and performance metrics for one
// series. Values are recomputed per analysis; fields whose lookback exceeds
// the series length carry their documented fallback value.
type Indicators struct {
	CurrentPrice     float64 `json:"current_price"`
	RSI14            float64 `json:"rsi_14"`
	SMA20            float64 `json:"sma_20"`
	SMA50            float64 `json:"sma_50"`
	VolumeRatio      float64 `json:"volume_ratio"`      // recent 5d avg / 20d avg
	Volatility       float64 `json:"volatility"`        // annualized, percent
	AnnualizedReturn float64 `json:"annualized_return"` // percent
	SharpeRatio      float64 `json:"sharpe_ratio"`
	SortinoRatio     float64 `json:"sortino_ratio"`
	MaxDrawdown      float64 `json:"max_drawdown"` // percent, <= 0
	Return1M         float64 `json:"return_1m"`    // percent, 0 when unavailable
	Return3M         float64 `json:"return_3m"`
	Return1Y         float64 `json:"return_1y"`
}
