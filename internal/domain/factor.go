package domain

import "time"

// FactorSeries holds one observation per month for the three Fama-French
// factors. The three slices and Dates are always the same length.
type FactorSeries struct {
	Dates []time.Time `json:"dates"`
	MktRF []float64   `json:"mktRF"`
	SMB   []float64   `json:"smb"`
	HML   []float64   `json:"hml"`
}

func NewFactorSeries(n int) *FactorSeries {
	return &FactorSeries{
		Dates: make([]time.Time, n),
		MktRF: make([]float64, n),
		SMB:   make([]float64, n),
		HML:   make([]float64, n),
	}
}

func (f FactorSeries) Len() int {
	return len(f.Dates)
}

// ReturnSeries is a simulated asset return per period, aligned
// index-for-index with the FactorSeries it was built from.
type ReturnSeries struct {
	Dates   []time.Time `json:"dates"`
	Returns []float64   `json:"returns"`
}

func (r ReturnSeries) Len() int {
	return len(r.Returns)
}

// ExcessReturns subtracts the risk-free rate from every period.
func (r ReturnSeries) ExcessReturns(riskFree float64) []float64 {
	excess := make([]float64, len(r.Returns))
	for i, ret := range r.Returns {
		excess[i] = ret - riskFree
	}
	return excess
}
