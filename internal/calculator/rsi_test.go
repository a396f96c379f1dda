package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRSI_MonotonicIncrease(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	rsi, err := CalculateRSI(closes, 14)
	require.NoError(t, err)
	assert.Equal(t, 100.0, rsi, "no losses should saturate RSI")
}

func TestCalculateRSI_MonotonicDecrease(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 - float64(i)
	}
	rsi, err := CalculateRSI(closes, 14)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rsi)
}

func TestCalculateRSI_InsufficientData(t *testing.T) {
	closes := []float64{100, 101, 102}
	rsi, err := CalculateRSI(closes, 14)
	require.NoError(t, err)
	assert.Equal(t, 50.0, rsi, "short series defaults to neutral")
}

func TestCalculateRSI_Balanced(t *testing.T) {
	// Alternating +1/-1 changes: average gain == average loss.
	closes := make([]float64, 21)
	closes[0] = 100
	for i := 1; i < len(closes); i++ {
		if i%2 == 1 {
			closes[i] = closes[i-1] + 1
		} else {
			closes[i] = closes[i-1] - 1
		}
	}
	rsi, err := CalculateRSI(closes, 14)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, rsi, 1e-9)
}

func TestCalculateRSI_InvalidPeriod(t *testing.T) {
	_, err := CalculateRSI([]float64{1, 2, 3}, 0)
	assert.Error(t, err)
}
