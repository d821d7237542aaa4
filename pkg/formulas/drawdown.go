package formulas

// DrawdownResult describes the worst peak-to-trough decline in a value path.
type DrawdownResult struct {
	MaxDrawdown float64 `json:"max_drawdown"` // As positive fraction (0.25 = 25% loss from peak)
	PeakValue   float64 `json:"peak_value"`
	PeakIndex   int     `json:"peak_index"`
	TroughValue float64 `json:"trough_value"`
	TroughIndex int     `json:"trough_index"`
}

// MaximumDrawdown finds the maximum drawdown of a series of portfolio values.
//
// Drawdown Formula:
//
//	Drawdown = (Peak Value − Value) / Peak Value
//	Max Drawdown = Maximum over all indices
//
// The peak reported is the one that preceded the trough of the maximum
// drawdown, not the global peak of the series: values that climb to new highs
// after a recovery do not retroactively enlarge an already-closed drawdown.
//
// Args:
//
//	values: Ordered portfolio values; all must be > 0 and at least 2 points
//
// Returns:
//
//	Drawdown result (MaxDrawdown in [0,1]; 0 only when the series never
//	declines) or nil if the series is too short or contains non-positive values
func MaximumDrawdown(values []float64) *DrawdownResult {
	if len(values) < 2 {
		return nil
	}
	for _, v := range values {
		if v <= 0 {
			return nil
		}
	}

	result := &DrawdownResult{
		PeakValue:   values[0],
		PeakIndex:   0,
		TroughValue: values[0],
		TroughIndex: 0,
	}

	peak := values[0]
	peakIndex := 0

	for i, v := range values {
		if v > peak {
			peak = v
			peakIndex = i
			continue
		}

		drawdown := (peak - v) / peak
		if drawdown > result.MaxDrawdown {
			result.MaxDrawdown = drawdown
			result.PeakValue = peak
			result.PeakIndex = peakIndex
			result.TroughValue = v
			result.TroughIndex = i
		}
	}

	return result
}

// CurrentDrawdown calculates the decline of the final value from the running
// peak of the whole series. Zero when the series ends at a new high.
func CurrentDrawdown(values []float64) *float64 {
	if len(values) < 2 {
		return nil
	}

	peak := values[0]
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		return nil
	}

	dd := (peak - values[len(values)-1]) / peak
	return &dd
}
