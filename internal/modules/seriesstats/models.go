package seriesstats

import (
	"github.com/aristath/quantcalc/pkg/bands"
	"github.com/aristath/quantcalc/pkg/formulas"
)

// Frequency names the sampling interval of a return series.
type Frequency string

// Frequency constants.
const (
	FrequencyDaily   Frequency = "daily"
	FrequencyMonthly Frequency = "monthly"
	FrequencyAnnual  Frequency = "annual"
)

// PeriodsPerYear maps a frequency to its annualization constant; ok is false
// for unknown frequencies.
func PeriodsPerYear(f Frequency) (int, bool) {
	switch f {
	case FrequencyDaily:
		return formulas.PeriodsDaily, true
	case FrequencyMonthly:
		return formulas.PeriodsMonthly, true
	case FrequencyAnnual:
		return formulas.PeriodsAnnual, true
	}
	return 0, false
}

// DrawdownRequest holds a portfolio value path, either typed or as pasted
// text.
type DrawdownRequest struct {
	Values     []float64 `json:"values,omitempty"`
	ValuesText string    `json:"values_text,omitempty"`
}

// DrawdownResult pairs the drawdown metrics with a severity category.
type DrawdownResult struct {
	formulas.DrawdownResult
	Severity *bands.Result `json:"severity,omitempty"`
}

// TrackingRequest holds fund and benchmark return series. Either the typed
// fraction arrays or the raw pasted-text fields may be supplied; text fields
// go through the percent-detection parser.
type TrackingRequest struct {
	Fund          []float64 `json:"fund,omitempty"`
	Benchmark     []float64 `json:"benchmark,omitempty"`
	FundText      string    `json:"fund_text,omitempty"`
	BenchmarkText string    `json:"benchmark_text,omitempty"`
	Frequency     Frequency `json:"frequency"`
}

// WeightedItemRequest is one allocation row; both fields must be present for
// the row to participate.
type WeightedItemRequest struct {
	Weight    *float64 `json:"weight"`
	ReturnPct *float64 `json:"return_pct"`
}

// WeightedRequest holds the allocation list.
type WeightedRequest struct {
	Items []WeightedItemRequest `json:"items"`
}

// VolatilityRequest holds a value path and its sampling frequency.
type VolatilityRequest struct {
	Values    []float64 `json:"values"`
	Frequency Frequency `json:"frequency"`
}

// VolatilityResult is the annualized volatility of the derived return series.
type VolatilityResult struct {
	AnnualizedVolatility float64       `json:"annualized_volatility"`
	Periods              int           `json:"periods"`
	RiskLevel            *bands.Result `json:"risk_level,omitempty"`
}
