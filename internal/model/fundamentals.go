package model

// FundamentalInfo holds the sparse fundamental fields used by scoring.
// Any field may be absent; the zero value means "not available".
type FundamentalInfo struct {
	LongName     string  `json:"long_name,omitempty"`
	Sector       string  `json:"sector,omitempty"`
	Category     string  `json:"category,omitempty"` // fund category, e.g. "Large Cap"
	MarketCap    float64 `json:"market_cap,omitempty"`
	PERatio      float64 `json:"pe_ratio,omitempty"`
	ExpenseRatio float64 `json:"expense_ratio,omitempty"` // percent, e.g. 0.45 for 0.45%
	TotalAssets  float64 `json:"total_assets,omitempty"`
}

// SentimentSignal is the aggregated news sentiment for a symbol.
// Score is in [0,1] where 0.5 is neutral.
type SentimentSignal struct {
	Score       float64 `json:"score"`
	SampleCount int     `json:"sample_count"`
}

// NeutralSentiment is the stand-in used when no sentiment data is available.
func NeutralSentiment() SentimentSignal {
	return SentimentSignal{Score: 0.5, SampleCount: 0}
}
