package app

import (
	"testing"

	"factorlab/internal/domain"
	"factorlab/internal/pricing"

	"github.com/stretchr/testify/require"
)

func TestPlaygroundRun(t *testing.T) {
	t.Run("full cycle with defaults", func(t *testing.T) {
		handler := PlaygroundHandler{}

		response, err := handler.Run(RunInput{Params: domain.DefaultParameterSet()})
		require.NoError(t, err)

		require.Equal(t, pricing.DefaultPeriods, response.Factors.Len())
		require.Equal(t, pricing.DefaultPeriods, response.Returns.Len())
		require.Len(t, response.Regression.Coefficients, 4)
		require.Len(t, response.Regression.Fitted, pricing.DefaultPeriods)
		require.Len(t, response.ExcessReturns, pricing.DefaultPeriods)
		require.Len(t, response.Metrics.Factors, 3)

		riskFree := response.Params.RiskFree
		for i, point := range response.ExcessReturns {
			require.Equal(t, response.Returns.Returns[i]-riskFree, point.Actual)
			require.Equal(t, response.Regression.Fitted[i], point.Predicted)
		}
	})

	t.Run("custom period count", func(t *testing.T) {
		handler := PlaygroundHandler{}

		response, err := handler.Run(RunInput{
			Params:  domain.DefaultParameterSet(),
			Periods: 120,
		})
		require.NoError(t, err)
		require.Equal(t, 120, response.Factors.Len())
	})

	t.Run("propagates pipeline errors", func(t *testing.T) {
		handler := PlaygroundHandler{}

		_, err := handler.Run(RunInput{
			Params:  domain.DefaultParameterSet(),
			Periods: -5,
		})
		require.Error(t, err)
	})
}
