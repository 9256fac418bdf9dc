package app

import (
	"fmt"

	"factorlab/internal/calculator"
	"factorlab/internal/domain"
	"factorlab/internal/pricing"
)

// PlaygroundHandler runs one full evaluation cycle: generate the factor
// history, simulate the asset under the requested parameters, then fit the
// regression back. It holds no state - every run re-derives everything
// from the input parameter set.
type PlaygroundHandler struct{}

type RunInput struct {
	Params  domain.ParameterSet
	Periods int
}

type ReturnPoint struct {
	Predicted float64 `json:"predicted"`
	Actual    float64 `json:"actual"`
}

type RunResponse struct {
	Params     domain.ParameterSet           `json:"params"`
	Factors    *domain.FactorSeries          `json:"factors"`
	Returns    *domain.ReturnSeries          `json:"returns"`
	Regression *domain.RegressionResult      `json:"regression"`
	Metrics    *calculator.SimulationMetrics `json:"metrics"`
	// actual-vs-predicted excess returns per period, for the scatter
	// plot
	ExcessReturns []ReturnPoint `json:"excessReturns"`
}

func (h PlaygroundHandler) Run(in RunInput) (*RunResponse, error) {
	periods := in.Periods
	if periods == 0 {
		periods = pricing.DefaultPeriods
	}

	factors, err := pricing.GenerateFactors(periods)
	if err != nil {
		return nil, fmt.Errorf("failed to generate factors: %w", err)
	}

	returns, err := pricing.SimulateReturns(in.Params, factors)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate returns: %w", err)
	}

	regression, err := pricing.Estimate(returns, factors, in.Params.RiskFree)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate factor model: %w", err)
	}

	metrics, err := calculator.CalculateMetrics(factors, returns, in.Params.RiskFree)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate metrics: %w", err)
	}

	excess := returns.ExcessReturns(in.Params.RiskFree)
	points := make([]ReturnPoint, len(excess))
	for i := range excess {
		points[i] = ReturnPoint{
			Predicted: regression.Fitted[i],
			Actual:    excess[i],
		}
	}

	return &RunResponse{
		Params:        in.Params,
		Factors:       factors,
		Returns:       returns,
		Regression:    regression,
		Metrics:       metrics,
		ExcessReturns: points,
	}, nil
}
