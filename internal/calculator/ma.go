package calculator

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// CalculateSMA computes the simple moving average of the last `period` values.
// A series shorter than the period degrades to the full-series mean.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) == 0 {
		return 0, errors.New("no prices provided")
	}
	if len(prices) < period {
		return stat.Mean(prices, nil), nil
	}
	return stat.Mean(prices[len(prices)-period:], nil), nil
}

// CalculateVolumeRatio compares the recent 5-bar average volume against the
// 20-bar average. A zero average volume yields the neutral ratio 1.
func CalculateVolumeRatio(volumes []float64) (float64, error) {
	if len(volumes) == 0 {
		return 1, errors.New("no volumes provided")
	}
	avg, err := CalculateSMA(volumes, 20)
	if err != nil || avg == 0 {
		return 1, nil
	}
	recent, err := CalculateSMA(volumes, 5)
	if err != nil {
		return 1, nil
	}
	return recent / avg, nil
}
