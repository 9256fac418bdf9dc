package pricing

import (
	"fmt"

	"factorlab/internal/domain"

	"gonum.org/v1/gonum/stat/distuv"
)

// SimulateReturns applies the linear factor model to a factor history:
//
//	r[i] = alpha + betaMkt*mktRF[i] + betaSMB*smb[i] + betaHML*hml[i] + eps[i]
//
// where eps is N(0, noise). The noise draw deliberately comes from the
// process-global source rather than a fixed seed - rerunning with the same
// parameters gives a different simulated path over the same factor
// history, which is what lets a user eyeball estimation variability.
func SimulateReturns(params domain.ParameterSet, factors *domain.FactorSeries) (*domain.ReturnSeries, error) {
	if err := params.Validate(); err != nil {
		return nil, InvalidArgumentError{fmt.Errorf("bad parameter set: %w", err)}
	}
	if err := checkFactorShape(factors); err != nil {
		return nil, err
	}

	n := factors.Len()
	series := &domain.ReturnSeries{
		Dates:   factors.Dates,
		Returns: make([]float64, n),
	}

	noise := distuv.Normal{Mu: 0, Sigma: params.Noise}
	for i := 0; i < n; i++ {
		series.Returns[i] = params.Alpha +
			params.BetaMkt*factors.MktRF[i] +
			params.BetaSMB*factors.SMB[i] +
			params.BetaHML*factors.HML[i]
		if params.Noise > 0 {
			series.Returns[i] += noise.Rand()
		}
	}

	return series, nil
}

func checkFactorShape(factors *domain.FactorSeries) error {
	if factors == nil || factors.Len() == 0 {
		return InvalidArgumentError{fmt.Errorf("factor series is empty")}
	}
	n := factors.Len()
	if len(factors.MktRF) != n || len(factors.SMB) != n || len(factors.HML) != n {
		return ShapeMismatchError{fmt.Errorf(
			"factor columns disagree on length: dates=%d mktRF=%d smb=%d hml=%d",
			n, len(factors.MktRF), len(factors.SMB), len(factors.HML),
		)}
	}
	return nil
}
