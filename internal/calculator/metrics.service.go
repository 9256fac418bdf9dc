package calculator

import (
	"fmt"
	"math"

	"factorlab/internal/domain"

	"github.com/montanaflynn/stats"
)

const periodsPerYear = 12

type SeriesMetrics struct {
	Name             string  `json:"name"`
	AnnualizedReturn float64 `json:"annualizedReturn"`
	AnnualizedStdev  float64 `json:"annualizedStdev"`
}

type SimulationMetrics struct {
	Factors []SeriesMetrics `json:"factors"`
	Asset   SeriesMetrics   `json:"asset"`
	// simulated asset excess return over its volatility, annualized
	SharpeRatio float64 `json:"sharpeRatio"`
}

// CalculateMetrics summarizes the factor history and the simulated asset
// series the way the factor-basics display expects: annualized premium and
// volatility per series, plus a Sharpe ratio for the asset.
func CalculateMetrics(factors *domain.FactorSeries, returns *domain.ReturnSeries, riskFree float64) (*SimulationMetrics, error) {
	factorColumns := []struct {
		name   string
		values []float64
	}{
		{"Mkt-RF", factors.MktRF},
		{"SMB", factors.SMB},
		{"HML", factors.HML},
	}

	out := &SimulationMetrics{}
	for _, col := range factorColumns {
		metrics, err := annualize(col.name, col.values)
		if err != nil {
			return nil, err
		}
		out.Factors = append(out.Factors, *metrics)
	}

	asset, err := annualize("Asset", returns.Returns)
	if err != nil {
		return nil, err
	}
	out.Asset = *asset

	if asset.AnnualizedStdev > 0 {
		out.SharpeRatio = (asset.AnnualizedReturn - riskFree) / asset.AnnualizedStdev
	}

	return out, nil
}

func annualize(name string, monthlyReturns []float64) (*SeriesMetrics, error) {
	if len(monthlyReturns) < 2 {
		return nil, fmt.Errorf("cannot calculate metrics on < 2 observations")
	}

	mean, err := stats.Mean(monthlyReturns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate mean for %s: %w", name, err)
	}
	stdev, err := stats.StandardDeviationSample(monthlyReturns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate stdev for %s: %w", name, err)
	}

	return &SeriesMetrics{
		Name:             name,
		AnnualizedReturn: mean * periodsPerYear,
		AnnualizedStdev:  stdev * math.Sqrt(periodsPerYear),
	}, nil
}
