package calculator

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

const (
	// TradingDaysPerYear is the annualization factor for daily returns.
	TradingDaysPerYear = 252
	// RiskFreeRate is the fixed annual risk-free assumption for Sharpe/Sortino.
	RiskFreeRate = 0.02
)

// DailyReturns computes day-over-day percentage returns (as fractions).
// Bars whose predecessor closed at zero are skipped.
func DailyReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, closes[i]/closes[i-1]-1)
	}
	return returns
}

// CalculateVolatility returns the annualized volatility in percent:
// sample stdev of daily returns scaled by sqrt(252).
func CalculateVolatility(closes []float64) (float64, error) {
	returns := DailyReturns(closes)
	if len(returns) < 2 {
		return 0, errors.New("not enough data for volatility")
	}
	return stat.StdDev(returns, nil) * math.Sqrt(TradingDaysPerYear) * 100, nil
}

// CalculateAnnualizedReturn returns the annualized mean daily return in percent.
func CalculateAnnualizedReturn(closes []float64) (float64, error) {
	returns := DailyReturns(closes)
	if len(returns) == 0 {
		return 0, errors.New("not enough data for annualized return")
	}
	return stat.Mean(returns, nil) * TradingDaysPerYear * 100, nil
}

// CalculateSharpeRatio returns the annualized Sharpe ratio: mean daily excess
// return over the risk-free rate divided by the stdev of daily returns,
// scaled by sqrt(252). Zero volatility yields 0.
func CalculateSharpeRatio(closes []float64) (float64, error) {
	returns := DailyReturns(closes)
	if len(returns) < 2 {
		return 0, errors.New("not enough data for sharpe ratio")
	}
	std := stat.StdDev(returns, nil)
	if std == 0 {
		return 0, nil
	}
	excess := stat.Mean(returns, nil) - RiskFreeRate/TradingDaysPerYear
	return excess / std * math.Sqrt(TradingDaysPerYear), nil
}

// CalculateSortinoRatio is like Sharpe but divides by downside-only deviation,
// the stdev of the negative-return subset. No negative returns yields 0.
func CalculateSortinoRatio(closes []float64) (float64, error) {
	returns := DailyReturns(closes)
	if len(returns) < 2 {
		return 0, errors.New("not enough data for sortino ratio")
	}
	var downside []float64
	for _, r := range returns {
		if r < 0 {
			downside = append(downside, r)
		}
	}
	if len(downside) < 2 {
		return 0, nil
	}
	std := stat.StdDev(downside, nil)
	if std == 0 {
		return 0, nil
	}
	excess := stat.Mean(returns, nil) - RiskFreeRate/TradingDaysPerYear
	return excess / std * math.Sqrt(TradingDaysPerYear), nil
}

// CalculateMaxDrawdown returns the deepest peak-to-trough decline in percent
// (<= 0). The running maximum expands from the start and never resets.
func CalculateMaxDrawdown(closes []float64) (float64, error) {
	if len(closes) == 0 {
		return 0, errors.New("no prices provided")
	}
	runningMax := closes[0]
	minDrawdown := 0.0
	for _, c := range closes {
		if c > runningMax {
			runningMax = c
		}
		if runningMax == 0 {
			continue
		}
		dd := c/runningMax - 1
		if dd < minDrawdown {
			minDrawdown = dd
		}
	}
	return minDrawdown * 100, nil
}

// CalculatePeriodReturn returns the percentage change between the last close
// and the close `period` bars back. Series shorter than the period return an
// error; callers treat that as "metric unavailable".
func CalculatePeriodReturn(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(closes) < period {
		return 0, errors.New("not enough data for period return")
	}
	base := closes[len(closes)-period]
	if base == 0 {
		return 0, errors.New("zero base price")
	}
	return (closes[len(closes)-1]/base - 1) * 100, nil
}
