package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Periods-per-year constants for annualization.
const (
	PeriodsDaily   = 252 // Trading days per year
	PeriodsMonthly = 12
	PeriodsAnnual  = 1
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation (n−1 denominator) of a
// slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Variance calculates the sample variance of a slice of float64 values
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.Variance(data, nil)
}

// Returns converts a value path to periodic fractional returns
// Returns[i] = (Value[i] − Value[i-1]) / Value[i-1]
func Returns(values []float64) []float64 {
	if len(values) < 2 {
		return []float64{}
	}

	returns := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] != 0 {
			returns[i-1] = (values[i] - values[i-1]) / values[i-1]
		}
	}

	return returns
}

// AnnualizedVolatility calculates annualized volatility from periodic returns
// Formula: Std Dev of Periodic Returns × sqrt(periods per year)
func AnnualizedVolatility(returns []float64, periodsPerYear int) *float64 {
	if len(returns) < 2 || periodsPerYear < 1 {
		return nil
	}

	vol := StdDev(returns) * math.Sqrt(float64(periodsPerYear))
	return &vol
}

// VolatilityFromValues is a convenience wrapper that derives returns from a
// value path before annualizing.
func VolatilityFromValues(values []float64, periodsPerYear int) *float64 {
	if len(values) < 3 {
		return nil
	}
	return AnnualizedVolatility(Returns(values), periodsPerYear)
}
