package advisor

import (
	"fmt"

	"MarketAdvisor/internal/model"
)

// ScreenResult is the output of the lightweight per-candidate scoring used by
// universe scans.
type ScreenResult struct {
	Score            float64
	TargetMultiplier float64
	Confidence       float64
	Reasoning        string
}

// ScreenStock scores one equity candidate for a BUY or SELL search. The two
// directions are independent rule sets: the SELL search rewards steep recent
// decline rather than inverting the BUY criteria.
func ScreenStock(ind *model.Indicators, sector string, direction model.Direction) ScreenResult {
	momentum := 0.0
	if ind.SMA20 > 0 {
		momentum = (ind.CurrentPrice/ind.SMA20 - 1) * 100
	}

	var score float64
	if direction == model.DirectionSell {
		switch {
		case momentum < -5:
			score += 2
		case momentum < -2:
			score += 1
		case momentum > 5:
			score -= 1
		}
		switch {
		case ind.Return1M < -10:
			score += 2
		case ind.Return1M > 10:
			score -= 1
		}
		if ind.Volatility > 40 {
			score += 1
		}
	} else {
		switch {
		case momentum > 2:
			score += 2
		case momentum > 0:
			score += 1
		case momentum < -5:
			score -= 2
		case momentum < -2:
			score -= 1
		}
		switch {
		case ind.Return1M > 5:
			score += 1
		case ind.Return1M < -10:
			score -= 2
		}
		switch {
		case ind.Volatility < 25:
			score += 1
		case ind.Volatility > 40:
			score -= 1
		}
		if ind.VolumeRatio > 1.2 {
			score += 1
		}
		if sector == "Technology" || sector == "Healthcare" {
			score += 0.5
		}
	}

	res := ScreenResult{Score: score}
	positive := score
	if positive < 0 {
		positive = 0
	}
	if direction == model.DirectionSell {
		res.TargetMultiplier = 0.95 - positive*0.02
		res.Confidence = clamp(0.55+positive*0.05, 0.80)
		res.Reasoning = fmt.Sprintf("Technical indicators suggest downside risk. %+.1f%% vs 20-day average.", momentum)
	} else {
		res.TargetMultiplier = 1.05 + positive*0.02
		res.Confidence = clamp(0.55+positive*0.05, 0.85)
		res.Reasoning = fmt.Sprintf("Strong technical momentum and fundamentals. %+.1f%% vs 20-day average.", momentum)
	}
	return res
}

// ScreenFund scores one fund candidate for a BUY or SELL search. The Sharpe
// form here is (annual return - risk-free) / volatility, both in percent,
// because the screen thresholds were calibrated against it.
func ScreenFund(ind *model.Indicators, info *model.FundamentalInfo, category string, direction model.Direction) ScreenResult {
	sharpe := 0.0
	if ind.Volatility > 0 {
		sharpe = (ind.AnnualizedReturn - 2) / ind.Volatility
	}
	expense := expenseOrDefault(info)

	var score float64
	if direction == model.DirectionSell {
		switch {
		case ind.AnnualizedReturn < 0:
			score += 2
		case ind.AnnualizedReturn < 3:
			score += 1
		case ind.AnnualizedReturn > 12:
			score -= 1
		}
		switch {
		case sharpe < 0:
			score += 2
		case sharpe < 0.5:
			score += 1
		}
		if expense > 2.0 {
			score += 1
		}
		if ind.Return3M < -8 {
			score += 2
		}
	} else {
		switch {
		case ind.AnnualizedReturn > 10:
			score += 2
		case ind.AnnualizedReturn > 6:
			score += 1
		case ind.AnnualizedReturn < 2:
			score -= 1
		}
		switch {
		case sharpe > 1.0:
			score += 2
		case sharpe > 0.5:
			score += 1
		case sharpe < 0:
			score -= 1
		}
		switch {
		case expense < 0.5:
			score += 2
		case expense < 1.0:
			score += 1
		case expense > 2.0:
			score -= 2
		}
		switch {
		case ind.Return3M > 3:
			score += 1
		case ind.Return3M < -5:
			score -= 1
		}
		if category == "Large Blend" || category == "Intermediate-Term Bond" {
			score += 0.5
		}
	}

	res := ScreenResult{Score: score}
	positive := score
	if positive < 0 {
		positive = 0
	}
	if direction == model.DirectionSell {
		res.TargetMultiplier = 0.97 - positive*0.01
		res.Confidence = clamp(0.60+positive*0.04, 0.80)
		res.Reasoning = fmt.Sprintf("Underperforming with concerning risk metrics. %.1f%% annual return, %.2f%% fees.", ind.AnnualizedReturn, expense)
	} else {
		res.TargetMultiplier = 1.03 + positive*0.01
		res.Confidence = clamp(0.60+positive*0.04, 0.85)
		res.Reasoning = fmt.Sprintf("Strong risk-adjusted returns with reasonable fees. %.1f%% annual return, %.2f%% fees.", ind.AnnualizedReturn, expense)
	}
	return res
}

func clamp(v, upper float64) float64 {
	if v > upper {
		return upper
	}
	return v
}
