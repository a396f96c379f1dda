package universe

import "MarketAdvisor/internal/model"

// Canned recommendations returned when the entire universe fails to fetch
// (no network, upstream outage). They keep the caller contract intact: a
// non-empty, well-formed five-item list.

var fallbackStocks = []model.Pick{
	{Symbol: "RELIANCE.NS", Name: "Reliance Industries Limited", Sector: "Energy", CurrentPrice: 2850.00, TargetPrice: 3000.00, Confidence: 0.75, PriceChange: 5.3, Reasoning: "Strong refining and telecom business growth."},
	{Symbol: "TCS.NS", Name: "Tata Consultancy Services Limited", Sector: "Technology", CurrentPrice: 3650.00, TargetPrice: 3850.00, Confidence: 0.80, PriceChange: 5.5, Reasoning: "IT services leadership and digital transformation."},
	{Symbol: "HDFCBANK.NS", Name: "HDFC Bank Limited", Sector: "Financial Services", CurrentPrice: 1720.00, TargetPrice: 1850.00, Confidence: 0.70, PriceChange: 7.6, Reasoning: "Strong banking fundamentals and digital initiatives."},
	{Symbol: "INFY.NS", Name: "Infosys Limited", Sector: "Technology", CurrentPrice: 1890.00, TargetPrice: 2000.00, Confidence: 0.65, PriceChange: 5.8, Reasoning: "Strong IT consulting and automation services."},
	{Symbol: "ITC.NS", Name: "ITC Limited", Sector: "Consumer Goods", CurrentPrice: 465.00, TargetPrice: 500.00, Confidence: 0.72, PriceChange: 7.5, Reasoning: "Diversified FMCG portfolio and dividend yield."},
}

var fallbackFunds = []model.Pick{
	{Symbol: "SBI-BLUECHIP", Name: "SBI Bluechip Fund", Sector: "Large Cap", CurrentPrice: 85.50, TargetPrice: 89.00, Confidence: 0.75, PriceChange: 4.1, Reasoning: "Strong large-cap portfolio with consistent performance."},
	{Symbol: "HDFC-TOP100", Name: "HDFC Top 100 Fund", Sector: "Large Cap", CurrentPrice: 920.00, TargetPrice: 950.00, Confidence: 0.70, PriceChange: 3.3, Reasoning: "Diversified blue-chip equity exposure."},
	{Symbol: "ICICI-BLUECHIP", Name: "ICICI Prudential Bluechip Fund", Sector: "Large Cap", CurrentPrice: 65.40, TargetPrice: 68.00, Confidence: 0.65, PriceChange: 4.0, Reasoning: "Well-managed large-cap fund with stable returns."},
	{Symbol: "AXIS-BLUECHIP", Name: "Axis Bluechip Fund", Sector: "Large Cap", CurrentPrice: 52.80, TargetPrice: 55.00, Confidence: 0.68, PriceChange: 4.2, Reasoning: "Quality large-cap stocks with growth potential."},
	{Symbol: "MIRAE-LARGECAP", Name: "Mirae Asset Large Cap Fund", Sector: "Large Cap", CurrentPrice: 98.20, TargetPrice: 102.00, Confidence: 0.72, PriceChange: 3.9, Reasoning: "Systematic large-cap investment approach."},
}

// FallbackStocks returns the canned stock list for a direction. SELL-search
// rewrites targets to a mild downside.
func FallbackStocks(direction model.Direction) []model.Pick {
	picks := make([]model.Pick, len(fallbackStocks))
	copy(picks, fallbackStocks)
	if direction == model.DirectionSell {
		for i := range picks {
			picks[i].TargetPrice = picks[i].CurrentPrice * 0.95
			picks[i].PriceChange = -2.0
			picks[i].Reasoning = "Technical indicators suggest potential downside."
		}
	}
	return picks
}

// FallbackFunds returns the canned fund list for a direction.
func FallbackFunds(direction model.Direction) []model.Pick {
	picks := make([]model.Pick, len(fallbackFunds))
	copy(picks, fallbackFunds)
	if direction == model.DirectionSell {
		for i := range picks {
			picks[i].TargetPrice = picks[i].CurrentPrice * 0.97
			picks[i].PriceChange = -1.5
			picks[i].Reasoning = "Consider rebalancing portfolio allocation."
		}
	}
	return picks
}
