package calculator

import (
	"math"
	"testing"

	"factorlab/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCalculateMetrics(t *testing.T) {
	t.Run("annualizes monthly mean and stdev", func(t *testing.T) {
		factors := &domain.FactorSeries{
			MktRF: []float64{0.01, 0.03},
			SMB:   []float64{0.0, 0.0},
			HML:   []float64{-0.01, 0.01},
		}
		returns := &domain.ReturnSeries{Returns: []float64{0.02, 0.04}}

		metrics, err := CalculateMetrics(factors, returns, 0.02)
		require.NoError(t, err)

		require.Len(t, metrics.Factors, 3)
		mkt := metrics.Factors[0]
		require.Equal(t, "Mkt-RF", mkt.Name)
		require.InDelta(t, 0.02*12, mkt.AnnualizedReturn, 1e-12)
		// sample stdev of {0.01, 0.03} is sqrt(2)/100
		require.InDelta(t, math.Sqrt2/100*math.Sqrt(12), mkt.AnnualizedStdev, 1e-12)

		require.Equal(t, "Asset", metrics.Asset.Name)
		require.InDelta(t, 0.36, metrics.Asset.AnnualizedReturn, 1e-12)
		require.Greater(t, metrics.SharpeRatio, 0.0)
	})

	t.Run("zero-variance asset gets no sharpe", func(t *testing.T) {
		factors := &domain.FactorSeries{
			MktRF: []float64{0.01, 0.03},
			SMB:   []float64{0.01, 0.02},
			HML:   []float64{-0.01, 0.01},
		}
		returns := &domain.ReturnSeries{Returns: []float64{0.02, 0.02}}

		metrics, err := CalculateMetrics(factors, returns, 0.02)
		require.NoError(t, err)
		require.Zero(t, metrics.SharpeRatio)
	})

	t.Run("too few observations", func(t *testing.T) {
		factors := &domain.FactorSeries{
			MktRF: []float64{0.01},
			SMB:   []float64{0.01},
			HML:   []float64{0.01},
		}
		returns := &domain.ReturnSeries{Returns: []float64{0.02}}

		_, err := CalculateMetrics(factors, returns, 0.02)
		require.Error(t, err)
	})
}
