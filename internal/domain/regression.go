package domain

// Coefficient is one estimated term of the factor regression.
type Coefficient struct {
	Name     string  `json:"name"`
	Estimate float64 `json:"estimate"`
	StdErr   float64 `json:"stdErr"`
	TStat    float64 `json:"tStat"`
	PValue   float64 `json:"pValue"`
	// 95% confidence bounds, estimate +/- 1.96 stderr. Used for the
	// error bars on the factor exposure chart.
	CILower float64 `json:"ciLower"`
	CIUpper float64 `json:"ciUpper"`
}

// RegressionResult holds the fitted factor model: the intercept plus the
// three factor loadings, in that order.
type RegressionResult struct {
	Coefficients []Coefficient `json:"coefficients"`
	RSquared     float64       `json:"rSquared"`
	// model-predicted excess return per period, aligned with the
	// input series
	Fitted []float64 `json:"fitted"`
}

func (r RegressionResult) Intercept() Coefficient {
	return r.Coefficients[0]
}

func (r RegressionResult) Coefficient(name string) (Coefficient, bool) {
	for _, c := range r.Coefficients {
		if c.Name == name {
			return c, true
		}
	}
	return Coefficient{}, false
}
