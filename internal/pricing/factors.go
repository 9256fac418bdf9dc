package pricing

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"factorlab/internal/domain"
	"factorlab/internal/util"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultPeriods is five years of monthly observations.
	DefaultPeriods = 60

	// factorSeed fixes the factor history so repeated runs and all lab
	// presets see the same market environment. Only the simulated noise
	// varies between runs.
	factorSeed = 42
)

// annualized premiums and volatilities, converted to monthly units at
// draw time
var factorDistributions = []struct {
	annualMean  float64
	annualStdev float64
}{
	{annualMean: 0.05, annualStdev: 0.15}, // Mkt-RF
	{annualMean: 0.03, annualStdev: 0.10}, // SMB
	{annualMean: 0.04, annualStdev: 0.12}, // HML
}

// GenerateFactors produces a synthetic monthly history of the three
// factors, one observation per calendar month ending at the most recent
// month end. Draws are seeded, so the same period count always yields the
// same history.
func GenerateFactors(periods int) (*domain.FactorSeries, error) {
	return generateFactorsAt(periods, time.Now().UTC())
}

func generateFactorsAt(periods int, end time.Time) (*domain.FactorSeries, error) {
	if periods < 1 {
		return nil, InvalidArgumentError{fmt.Errorf("period count must be positive, got %d", periods)}
	}

	rng := rand.NewPCG(factorSeed, 0)
	series := domain.NewFactorSeries(periods)
	copy(series.Dates, util.MonthEnds(periods, end))

	columns := [][]float64{series.MktRF, series.SMB, series.HML}
	for i, fd := range factorDistributions {
		dist := distuv.Normal{
			Mu:    fd.annualMean / 12,
			Sigma: fd.annualStdev / math.Sqrt(12),
			Src:   rng,
		}
		for j := range columns[i] {
			columns[i][j] = dist.Rand()
		}
	}

	return series, nil
}
