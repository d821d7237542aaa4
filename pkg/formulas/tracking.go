package formulas

import "math"

// TrackingStats holds tracking difference and tracking error between a fund
// and its benchmark.
type TrackingStats struct {
	MeanDiff           float64 `json:"mean_diff"`            // Per-period tracking difference (fraction)
	StdDiff            float64 `json:"std_diff"`             // Per-period tracking error (fraction)
	AnnualizedMeanDiff float64 `json:"annualized_mean_diff"` // MeanDiff × periods per year
	AnnualizedStdDiff  float64 `json:"annualized_std_diff"`  // StdDiff × sqrt(periods per year)
	Periods            int     `json:"periods"`
}

// TrackingStatistics calculates tracking difference and tracking error from
// two return series of equal length.
//
// Formula:
//
//	d_i   = fund_i − benchmark_i
//	Tracking Difference = mean(d)
//	Tracking Error      = sample stddev(d), n−1 denominator
//
// Annualization multiplies the mean by periodsPerYear and the standard
// deviation by its square root (252 daily, 12 monthly, 1 annual).
//
// Args:
//
//	fund, benchmark: Periodic returns as fractions, equal length, ≥ 2 points
//	periodsPerYear: Annualization constant (must be ≥ 1)
//
// Returns:
//
//	Tracking statistics or nil if lengths differ or the series are too short
func TrackingStatistics(fund, benchmark []float64, periodsPerYear int) *TrackingStats {
	if len(fund) != len(benchmark) || len(fund) < 2 || periodsPerYear < 1 {
		return nil
	}

	diffs := make([]float64, len(fund))
	for i := range fund {
		diffs[i] = fund[i] - benchmark[i]
	}

	mean := Mean(diffs)
	std := StdDev(diffs)

	return &TrackingStats{
		MeanDiff:           mean,
		StdDiff:            std,
		AnnualizedMeanDiff: mean * float64(periodsPerYear),
		AnnualizedStdDiff:  std * math.Sqrt(float64(periodsPerYear)),
		Periods:            len(fund),
	}
}
