package advisor

import (
	"time"

	"MarketAdvisor/internal/model"
)

// neutralPERatio substitutes for an unknown P/E so the valuation rules still
// see a "reasonable" multiple rather than skipping entirely.
const neutralPERatio = 20.0

// StockScore is the composite equity score with its additive components.
type StockScore struct {
	Technical   float64
	Fundamental float64
	Sentiment   float64
	Total       float64
}

// ScoreStock applies the equity rule set: trend vs moving averages, RSI
// extremes, volume confirmation, valuation, size and sentiment. Each rule
// contributes independently; the total is the plain sum.
func ScoreStock(ind *model.Indicators, info *model.FundamentalInfo, sent model.SentimentSignal) StockScore {
	var s StockScore
	price := ind.CurrentPrice

	// Trend vs SMA20/SMA50.
	switch {
	case price > ind.SMA20 && price > ind.SMA50:
		s.Technical += 2 // strong uptrend
	case price > ind.SMA20:
		s.Technical += 1 // mild uptrend
	case price < ind.SMA20 && price < ind.SMA50:
		s.Technical -= 2 // downtrend
	default:
		s.Technical -= 1 // mild downtrend
	}

	switch {
	case ind.RSI14 < 30:
		s.Technical += 1 // oversold, potential entry
	case ind.RSI14 > 70:
		s.Technical -= 1 // overbought
	}

	switch {
	case ind.VolumeRatio > 1.2:
		s.Technical += 1 // volume confirms the move
	case ind.VolumeRatio < 0.8:
		s.Technical -= 0.5 // weak confirmation
	}

	pe := info.PERatio
	if pe == 0 {
		pe = neutralPERatio
	}
	switch {
	case pe >= 10 && pe <= 25:
		s.Fundamental += 1
	case pe < 10:
		s.Fundamental += 2 // potentially undervalued
	case pe > 30:
		s.Fundamental -= 1
	}

	switch {
	case info.MarketCap > 200e9:
		s.Fundamental += 0.5 // large cap stability
	case info.MarketCap < 2e9:
		s.Fundamental += 1 // small cap growth potential, absent cap lands here too
	}

	switch {
	case sent.Score > 0.7:
		s.Sentiment = 1
	case sent.Score > 0.6:
		s.Sentiment = 0.5
	case sent.Score < 0.3:
		s.Sentiment = -1
	case sent.Score < 0.4:
		s.Sentiment = -0.5
	}

	s.Total = s.Technical + s.Fundamental + s.Sentiment
	return s
}

// AnalyzeStock produces the full recommendation for one equity.
func AnalyzeStock(symbol string, ind *model.Indicators, info *model.FundamentalInfo, sent model.SentimentSignal) *model.Recommendation {
	score := ScoreStock(ind, info, sent)
	action, confidence, multiplier := mapStockScore(score.Total)

	pe := info.PERatio
	if pe == 0 {
		pe = neutralPERatio
	}

	var reasoning []string
	switch {
	case ind.CurrentPrice > ind.SMA20 && ind.CurrentPrice > ind.SMA50:
		reasoning = append(reasoning, "Strong technical uptrend with price above key moving averages")
	case ind.CurrentPrice < ind.SMA20 && ind.CurrentPrice < ind.SMA50:
		reasoning = append(reasoning, "Technical downtrend with price below moving averages")
	default:
		reasoning = append(reasoning, "Mixed technical signals with consolidation pattern")
	}
	if ind.RSI14 < 30 {
		reasoning = append(reasoning, "RSI indicates oversold conditions, potential buying opportunity")
	} else if ind.RSI14 > 70 {
		reasoning = append(reasoning, "RSI shows overbought levels, caution advised")
	}
	if sent.Score > 0.6 {
		reasoning = append(reasoning, "Positive news sentiment supports the outlook")
	} else if sent.Score < 0.4 {
		reasoning = append(reasoning, "Negative news sentiment creates headwinds")
	}
	if pe < 15 {
		reasoning = append(reasoning, "Attractive valuation with low P/E ratio")
	} else if pe > 25 {
		reasoning = append(reasoning, "Premium valuation requires strong growth to justify")
	}

	var risks []string
	if ind.Volatility > 30 {
		risks = append(risks, "High volatility increases investment risk")
	}
	if pe > 30 {
		risks = append(risks, "High valuation multiples vulnerable to market corrections")
	}
	if sent.Score < 0.4 {
		risks = append(risks, "Negative sentiment could impact near-term performance")
	}
	if info.MarketCap < 2e9 {
		risks = append(risks, "Small-cap stock subject to higher volatility")
	}

	var keys []string
	if ind.VolumeRatio > 1.2 {
		keys = append(keys, "Strong volume confirms price action")
	}
	if ind.CurrentPrice > ind.SMA20 {
		keys = append(keys, "Positive momentum above 20-day average")
	}
	if sent.Score > 0.6 {
		keys = append(keys, "Favorable news coverage")
	}
	if pe < 20 {
		keys = append(keys, "Reasonable valuation metrics")
	}

	name := info.LongName
	return &model.Recommendation{
		Symbol:       symbol,
		Name:         name,
		AssetClass:   model.AssetStock,
		Action:       action,
		Confidence:   confidence,
		Score:        score.Total,
		CurrentPrice: ind.CurrentPrice,
		TargetPrice:  ind.CurrentPrice * multiplier,
		Reasoning:    reasoning,
		RiskFactors:  capList(risks, 4, []string{"Market volatility", "Economic conditions"}),
		KeyFactors:   capList(keys, 4, []string{"Price momentum", "Market conditions"}),
		TimeHorizon:  "medium term",
		GeneratedAt:  time.Now().UTC(),
	}
}
