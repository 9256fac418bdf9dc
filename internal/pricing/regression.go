package pricing

import (
	"fmt"
	"math"

	"factorlab/internal/domain"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const numCoefficients = 4 // intercept + three factors

var coefficientNames = [numCoefficients]string{"const", "Mkt-RF", "SMB", "HML"}

// Estimate regresses excess returns (returns minus the risk-free rate) on
// the three factors plus an intercept, using the closed-form OLS solution.
// The intercept estimate is the recovered alpha.
func Estimate(returns *domain.ReturnSeries, factors *domain.FactorSeries, riskFree float64) (*domain.RegressionResult, error) {
	if returns == nil || returns.Len() == 0 {
		return nil, InvalidArgumentError{fmt.Errorf("return series is empty")}
	}
	if err := checkFactorShape(factors); err != nil {
		return nil, err
	}

	n := returns.Len()
	if n != factors.Len() {
		return nil, ShapeMismatchError{fmt.Errorf("return series has %d observations, factor series has %d", n, factors.Len())}
	}
	if n < numCoefficients {
		return nil, SingularDesignError{fmt.Errorf("need at least %d observations to fit %d coefficients, got %d", numCoefficients, numCoefficients, n)}
	}

	x := mat.NewDense(n, numCoefficients, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
		x.Set(i, 1, factors.MktRF[i])
		x.Set(i, 2, factors.SMB[i])
		x.Set(i, 3, factors.HML[i])
	}
	excess := returns.ExcessReturns(riskFree)
	y := mat.NewVecDense(n, excess)

	var xtx mat.Dense
	xtx.Mul(x.T(), x)

	// a zero or collinear factor column makes X'X singular; surfacing
	// that beats silently reporting zero loadings for a factor the
	// sample carries no information about
	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, SingularDesignError{fmt.Errorf("design matrix is not full column rank: %w", err)}
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), y)
	var beta mat.VecDense
	beta.MulVec(&xtxInv, &xty)

	var fitted mat.VecDense
	fitted.MulVec(x, &beta)

	yMean := stat.Mean(excess, nil)
	var rss, tss float64
	for i := 0; i < n; i++ {
		residual := y.AtVec(i) - fitted.AtVec(i)
		rss += residual * residual
		centered := y.AtVec(i) - yMean
		tss += centered * centered
	}

	dof := n - numCoefficients
	var sigma2 float64
	if dof > 0 {
		sigma2 = rss / float64(dof)
	}
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dof)}

	coefficients := make([]domain.Coefficient, numCoefficients)
	for j := 0; j < numCoefficients; j++ {
		estimate := beta.AtVec(j)
		stdErr := math.Sqrt(sigma2 * xtxInv.At(j, j))

		// a perfect fit leaves no residual variance to test against;
		// report zero rather than an infinite t-stat
		var tStat, pValue float64
		if stdErr > 0 {
			tStat = estimate / stdErr
			pValue = 2 * tDist.CDF(-math.Abs(tStat))
		}

		coefficients[j] = domain.Coefficient{
			Name:     coefficientNames[j],
			Estimate: estimate,
			StdErr:   stdErr,
			TStat:    tStat,
			PValue:   pValue,
			CILower:  estimate - 1.96*stdErr,
			CIUpper:  estimate + 1.96*stdErr,
		}
	}

	// a constant target has no variance to explain
	rSquared := 0.0
	if tss > 0 {
		rSquared = 1 - rss/tss
	}

	return &domain.RegressionResult{
		Coefficients: coefficients,
		RSquared:     rSquared,
		Fitted:       fitted.RawVector().Data,
	}, nil
}
