package model

import "time"

// Action is the discrete advice produced for an instrument.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// Direction selects which side of the market a universe scan looks for.
// BUY-search and SELL-search use independent rule sets, not sign inversions.
type Direction string

const (
	DirectionBuy  Direction = "BUY"
	DirectionSell Direction = "SELL"
)

// Recommendation is the final output of a full single-symbol analysis.
type Recommendation struct {
	Symbol       string     `json:"symbol"`
	Name         string     `json:"name,omitempty"`
	AssetClass   AssetClass `json:"asset_class"`
	Action       Action     `json:"action"`
	Confidence   float64    `json:"confidence"` // [0,1]
	Score        float64    `json:"score"`
	CurrentPrice float64    `json:"current_price"`
	TargetPrice  float64    `json:"target_price"`
	Reasoning    []string   `json:"reasoning"`
	RiskFactors  []string   `json:"risk_factors"`
	KeyFactors   []string   `json:"key_factors,omitempty"` // stocks
	Strengths    []string   `json:"strengths,omitempty"`   // funds
	Weaknesses   []string   `json:"weaknesses,omitempty"`  // funds
	TimeHorizon  string     `json:"time_horizon"`
	GeneratedAt  time.Time  `json:"generated_at"`
}

// Pick is one ranked entry of a universe scan.
type Pick struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Sector       string  `json:"sector"`
	CurrentPrice float64 `json:"current_price"`
	TargetPrice  float64 `json:"target_price"`
	Confidence   float64 `json:"confidence"`
	PriceChange  float64 `json:"price_change"` // expected move, percent
	Reasoning    string  `json:"reasoning"`
	Score        float64 `json:"score"`
}
