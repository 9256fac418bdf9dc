package domain

import (
	"errors"
	"math"
)

var (
	errNonFiniteParameter = errors.New("parameter is not a finite number")
	errNegativeNoise      = errors.New("noise stdev cannot be negative")
)

// ParameterSet is the user-editable model state. The presentation layer
// owns the current values and passes a snapshot into the pipeline on every
// evaluation cycle; the pipeline never mutates it.
type ParameterSet struct {
	Alpha    float64 `json:"alpha"`
	BetaMkt  float64 `json:"betaMkt"`
	BetaSMB  float64 `json:"betaSMB"`
	BetaHML  float64 `json:"betaHML"`
	RiskFree float64 `json:"riskFree"`
	Noise    float64 `json:"noise"`
}

// Validate reports whether the parameters are usable by the pipeline.
// Values are free-form reals - only non-finite inputs and a negative noise
// stdev are rejected. Range limits are a UI concern, see ParameterBounds.
func (p ParameterSet) Validate() error {
	for _, v := range []float64{p.Alpha, p.BetaMkt, p.BetaSMB, p.BetaHML, p.RiskFree, p.Noise} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errNonFiniteParameter
		}
	}
	if p.Noise < 0 {
		return errNegativeNoise
	}
	return nil
}

// ParameterBound describes the slider range the UI should offer for one
// parameter. The pipeline itself does not clamp to these.
type ParameterBound struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

func ParameterBounds() []ParameterBound {
	return []ParameterBound{
		{Name: "betaMkt", Label: "Market Beta", Min: -0.5, Max: 2.0, Step: 0.01, Default: 1.0},
		{Name: "betaSMB", Label: "SMB Beta", Min: -1.0, Max: 1.0, Step: 0.01, Default: 0.2},
		{Name: "betaHML", Label: "HML Beta", Min: -1.0, Max: 1.0, Step: 0.01, Default: -0.3},
		{Name: "alpha", Label: "Alpha", Min: -0.02, Max: 0.02, Step: 0.001, Default: 0.005},
		{Name: "riskFree", Label: "Risk-Free Rate", Min: 0, Max: 0.05, Step: 0.001, Default: 0.02},
		{Name: "noise", Label: "Idiosyncratic Volatility", Min: 0, Max: 0.05, Step: 0.01, Default: 0.02},
	}
}
