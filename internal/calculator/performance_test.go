package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyReturns(t *testing.T) {
	returns := DailyReturns([]float64{100, 110, 99})
	require.Len(t, returns, 2)
	assert.InDelta(t, 0.10, returns[0], 1e-9)
	assert.InDelta(t, -0.10, returns[1], 1e-9)

	assert.Nil(t, DailyReturns([]float64{100}))

	// Zero predecessor is skipped, not divided by.
	returns = DailyReturns([]float64{100, 0, 50})
	require.Len(t, returns, 1)
	assert.InDelta(t, -1.0, returns[0], 1e-9)
}

func TestCalculateVolatility_FlatSeries(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100
	}
	vol, err := CalculateVolatility(closes)
	require.NoError(t, err)
	assert.Equal(t, 0.0, vol)
}

func TestCalculateAnnualizedReturn(t *testing.T) {
	// Constant +1% daily return annualizes to 252%.
	closes := []float64{100}
	for i := 0; i < 10; i++ {
		closes = append(closes, closes[len(closes)-1]*1.01)
	}
	ann, err := CalculateAnnualizedReturn(closes)
	require.NoError(t, err)
	assert.InDelta(t, 252.0, ann, 1e-6)
}

func TestCalculateSharpeRatio_ZeroVolatility(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100
	}
	sharpe, err := CalculateSharpeRatio(closes)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sharpe)
}

func TestCalculateSharpeRatio_Sign(t *testing.T) {
	up := []float64{100}
	for i := 0; i < 30; i++ {
		// Alternate +2% / -1%: positive drift with real volatility.
		if i%2 == 0 {
			up = append(up, up[len(up)-1]*1.02)
		} else {
			up = append(up, up[len(up)-1]*0.99)
		}
	}
	sharpe, err := CalculateSharpeRatio(up)
	require.NoError(t, err)
	assert.Greater(t, sharpe, 0.0)
}

func TestCalculateSortinoRatio_NoDownside(t *testing.T) {
	closes := []float64{100}
	for i := 0; i < 20; i++ {
		closes = append(closes, closes[len(closes)-1]*1.01)
	}
	sortino, err := CalculateSortinoRatio(closes)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sortino, "fewer than two negative returns yields 0")
}

func TestCalculateMaxDrawdown(t *testing.T) {
	// Monotonic rise never draws down.
	dd, err := CalculateMaxDrawdown([]float64{100, 110, 120, 130})
	require.NoError(t, err)
	assert.Equal(t, 0.0, dd)

	// Peak 200 to trough 100 is -50%, even after recovery.
	dd, err = CalculateMaxDrawdown([]float64{100, 200, 100, 180})
	require.NoError(t, err)
	assert.InDelta(t, -50.0, dd, 1e-9)

	_, err = CalculateMaxDrawdown(nil)
	assert.Error(t, err)
}

func TestCalculatePeriodReturn(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	// Base is the close `period` bars back from the end.
	ret, err := CalculatePeriodReturn(closes, 21)
	require.NoError(t, err)
	base := closes[len(closes)-21]
	want := (closes[len(closes)-1]/base - 1) * 100
	assert.InDelta(t, want, ret, 1e-9)

	_, err = CalculatePeriodReturn(closes, 63)
	assert.Error(t, err, "series shorter than period is unavailable")

	_, err = CalculatePeriodReturn(closes, 0)
	assert.Error(t, err)
}

func TestCalculateVolatility_KnownValue(t *testing.T) {
	// Alternating +1%/-1% returns: sample stdev of the return series is
	// close to 0.01, so annualized volatility is near 1% * sqrt(252) * 100.
	closes := []float64{100}
	for i := 0; i < 40; i++ {
		if i%2 == 0 {
			closes = append(closes, closes[len(closes)-1]*1.01)
		} else {
			closes = append(closes, closes[len(closes)-1]*0.99)
		}
	}
	vol, err := CalculateVolatility(closes)
	require.NoError(t, err)
	assert.InDelta(t, 0.01*math.Sqrt(252)*100, vol, 0.5)
}
