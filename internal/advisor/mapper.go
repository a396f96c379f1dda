// Package advisor implements the rule-based scoring engine: composite scores
// from indicators, fundamentals and sentiment, and their mapping to discrete
// BUY/SELL/HOLD recommendations. Everything here is pure; collaborators are
// injected by the caller.
package advisor

import "MarketAdvisor/internal/model"

// Threshold tables for the score → recommendation mapping. The two asset
// classes use distinct constants; these define the observable contract and
// are not tunable.
const (
	stockBuyThreshold  = 3.0
	stockSellThreshold = -2.0
	fundBuyThreshold   = 4.0
	fundSellThreshold  = -2.0
)

// mapStockScore converts an equity composite score into an action, a bounded
// confidence and a target-price multiplier.
func mapStockScore(total float64) (model.Action, float64, float64) {
	switch {
	case total >= stockBuyThreshold:
		confidence := 0.6 + (total-stockBuyThreshold)*0.05
		if confidence > 0.85 {
			confidence = 0.85
		}
		return model.ActionBuy, confidence, 1.10 + (total-stockBuyThreshold)*0.02
	case total <= stockSellThreshold:
		excess := stockSellThreshold - total
		confidence := 0.6 + excess*0.05
		if confidence > 0.80 {
			confidence = 0.80
		}
		return model.ActionSell, confidence, 0.90 - excess*0.02
	default:
		multiplier := 0.97
		if total > 0 {
			multiplier = 1.03
		}
		return model.ActionHold, 0.60 + abs(total)*0.05, multiplier
	}
}

// mapFundScore converts a fund composite score into an action, a bounded
// confidence and a target-NAV multiplier.
func mapFundScore(total float64) (model.Action, float64, float64) {
	switch {
	case total >= fundBuyThreshold:
		confidence := 0.65 + (total-fundBuyThreshold)*0.03
		if confidence > 0.85 {
			confidence = 0.85
		}
		return model.ActionBuy, confidence, 1.08 + (total-fundBuyThreshold)*0.01
	case total <= fundSellThreshold:
		excess := fundSellThreshold - total
		confidence := 0.60 + excess*0.03
		if confidence > 0.80 {
			confidence = 0.80
		}
		return model.ActionSell, confidence, 0.92 - excess*0.01
	default:
		multiplier := 0.98
		if total > 0 {
			multiplier = 1.04
		}
		return model.ActionHold, 0.65 + abs(total)*0.02, multiplier
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// capList trims a generated narrative list to its maximum length, falling
// back to the defaults when no rule matched.
func capList(items []string, limit int, defaults []string) []string {
	if len(items) == 0 {
		return defaults
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
