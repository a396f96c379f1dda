package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSMA(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5, 6}

	sma, err := CalculateSMA(closes, 3)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, sma, 1e-9, "mean of last 3 values")

	// Shorter than the period: full-series mean, not an error.
	sma, err = CalculateSMA(closes, 20)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, sma, 1e-9)

	_, err = CalculateSMA(nil, 3)
	assert.Error(t, err)

	_, err = CalculateSMA(closes, 0)
	assert.Error(t, err)
}

func TestCalculateVolumeRatio(t *testing.T) {
	// 20 bars at 1000, then recent 5 at 2000: recent average well above base.
	volumes := make([]float64, 25)
	for i := 0; i < 20; i++ {
		volumes[i] = 1000
	}
	for i := 20; i < 25; i++ {
		volumes[i] = 2000
	}
	ratio, err := CalculateVolumeRatio(volumes)
	require.NoError(t, err)
	assert.Greater(t, ratio, 1.0)

	// Flat volume is exactly neutral.
	flat := make([]float64, 30)
	for i := range flat {
		flat[i] = 500
	}
	ratio, err = CalculateVolumeRatio(flat)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ratio, 1e-9)

	// All-zero volume degrades to neutral.
	ratio, err = CalculateVolumeRatio(make([]float64, 30))
	require.NoError(t, err)
	assert.Equal(t, 1.0, ratio)
}
