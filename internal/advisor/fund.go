package advisor

import (
	"fmt"
	"time"

	"MarketAdvisor/internal/model"
)

// neutralExpenseRatio substitutes for an unreported expense ratio (percent).
const neutralExpenseRatio = 1.0

// FundScore is the composite fund score with its additive components.
type FundScore struct {
	Performance float64
	Cost        float64
	Size        float64
	Momentum    float64
	Total       float64
}

// ScoreFund applies the fund rule set: risk-adjusted performance, expense
// drag, asset base and recent momentum. Branch ordering within each block is
// part of the contract (a negative annual return scores -1, not -2, because
// the < 2 band matches first).
func ScoreFund(ind *model.Indicators, info *model.FundamentalInfo) FundScore {
	var s FundScore

	switch {
	case ind.AnnualizedReturn > 12:
		s.Performance += 2
	case ind.AnnualizedReturn > 8:
		s.Performance += 1
	case ind.AnnualizedReturn < 2:
		s.Performance -= 1
	}

	switch {
	case ind.SharpeRatio > 1.5:
		s.Performance += 2
	case ind.SharpeRatio > 1.0:
		s.Performance += 1
	case ind.SharpeRatio < 0.5:
		s.Performance -= 1
	}

	switch {
	case ind.Volatility < 10:
		s.Performance += 1
	case ind.Volatility > 25:
		s.Performance -= 1
	}

	expense := expenseOrDefault(info)
	switch {
	case expense < 0.5:
		s.Cost += 2
	case expense < 1.0:
		s.Cost += 1
	case expense > 2.0:
		s.Cost -= 2
	case expense > 1.5:
		s.Cost -= 1
	}

	switch {
	case info.TotalAssets > 10e9:
		s.Size += 1
	case info.TotalAssets > 1e9:
		s.Size += 0.5
	case info.TotalAssets < 100e6:
		s.Size -= 1
	}

	// 1-month momentum; a series too short for the 21-bar return contributes
	// nothing because the value defaults to 0.
	switch {
	case ind.Return1M > 2:
		s.Momentum += 1
	case ind.Return1M < -5:
		s.Momentum -= 1
	}

	s.Total = s.Performance + s.Cost + s.Size + s.Momentum
	return s
}

func expenseOrDefault(info *model.FundamentalInfo) float64 {
	if info.ExpenseRatio == 0 {
		return neutralExpenseRatio
	}
	return info.ExpenseRatio
}

// AnalyzeFund produces the full recommendation for one mutual fund.
func AnalyzeFund(symbol string, ind *model.Indicators, info *model.FundamentalInfo) *model.Recommendation {
	score := ScoreFund(ind, info)
	action, confidence, multiplier := mapFundScore(score.Total)
	expense := expenseOrDefault(info)

	var reasoning []string
	switch {
	case ind.AnnualizedReturn > 10:
		reasoning = append(reasoning, fmt.Sprintf("Strong annual return of %.1f%% outperforms market averages", ind.AnnualizedReturn))
	case ind.AnnualizedReturn < 5:
		reasoning = append(reasoning, fmt.Sprintf("Modest annual return of %.1f%% below market expectations", ind.AnnualizedReturn))
	default:
		reasoning = append(reasoning, fmt.Sprintf("Reasonable annual return of %.1f%% in line with expectations", ind.AnnualizedReturn))
	}
	switch {
	case ind.SharpeRatio > 1.0:
		reasoning = append(reasoning, fmt.Sprintf("Excellent risk-adjusted returns with Sharpe ratio of %.2f", ind.SharpeRatio))
	case ind.SharpeRatio > 0.5:
		reasoning = append(reasoning, fmt.Sprintf("Decent risk-adjusted performance with Sharpe ratio of %.2f", ind.SharpeRatio))
	default:
		reasoning = append(reasoning, fmt.Sprintf("Poor risk-adjusted returns with Sharpe ratio of %.2f", ind.SharpeRatio))
	}
	switch {
	case expense < 0.5:
		reasoning = append(reasoning, fmt.Sprintf("Very low expense ratio of %.2f%% enhances net returns", expense))
	case expense < 1.0:
		reasoning = append(reasoning, fmt.Sprintf("Reasonable expense ratio of %.2f%%", expense))
	default:
		reasoning = append(reasoning, fmt.Sprintf("High expense ratio of %.2f%% reduces net returns", expense))
	}

	var strengths []string
	if ind.SharpeRatio > 1.0 {
		strengths = append(strengths, "Strong risk-adjusted returns")
	}
	if expense < 0.75 {
		strengths = append(strengths, "Low cost structure")
	}
	if info.TotalAssets > 1e9 {
		strengths = append(strengths, "Large asset base provides stability")
	}
	if ind.Volatility < 15 {
		strengths = append(strengths, "Low volatility provides stability")
	}
	if ind.AnnualizedReturn > 8 {
		strengths = append(strengths, "Consistent performance track record")
	}

	var weaknesses []string
	if expense > 1.5 {
		weaknesses = append(weaknesses, "High expense ratio reduces returns")
	}
	if ind.Volatility > 20 {
		weaknesses = append(weaknesses, "High volatility increases risk")
	}
	if ind.AnnualizedReturn < 5 {
		weaknesses = append(weaknesses, "Below-average performance")
	}
	if ind.SharpeRatio < 0.5 {
		weaknesses = append(weaknesses, "Poor risk-adjusted returns")
	}
	if info.TotalAssets < 100e6 {
		weaknesses = append(weaknesses, "Small asset base may limit liquidity")
	}

	var risks []string
	if ind.Volatility > 20 {
		risks = append(risks, "High volatility may result in significant losses")
	}
	if expense > 1.5 {
		risks = append(risks, "High fees erode long-term returns")
	}
	if ind.Return1M < -10 {
		risks = append(risks, "Recent poor performance indicates potential issues")
	}
	risks = append(risks, "Market risk", "Interest rate risk", "Manager risk")

	return &model.Recommendation{
		Symbol:       symbol,
		Name:         info.LongName,
		AssetClass:   model.AssetFund,
		Action:       action,
		Confidence:   confidence,
		Score:        score.Total,
		CurrentPrice: ind.CurrentPrice,
		TargetPrice:  ind.CurrentPrice * multiplier,
		Reasoning:    reasoning,
		RiskFactors:  capList(risks, 4, []string{"Market risk", "Interest rate risk"}),
		Strengths:    capList(strengths, 4, []string{"Professional management", "Diversification"}),
		Weaknesses:   capList(weaknesses, 3, []string{"Market dependency", "Interest rate sensitivity"}),
		TimeHorizon:  "long term",
		GeneratedAt:  time.Now().UTC(),
	}
}
