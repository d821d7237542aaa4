package formulas

// WeightedItem is one holding in a weighted-return calculation.
type WeightedItem struct {
	Weight float64 `json:"weight"` // Allocation weight in percent (0–100)
	Return float64 `json:"return"` // Return in percent
}

// WeightedReturnResult holds a weighted portfolio return and the actual
// weight total so callers can flag a non-100% allocation.
type WeightedReturnResult struct {
	WeightedReturn float64 `json:"weighted_return"` // In percent
	TotalWeight    float64 `json:"total_weight"`    // Σ weights, not renormalized
	Items          int     `json:"items"`
}

// WeightedAverageReturn calculates the weight-scaled portfolio return
//
//	Weighted Return = Σ (weight_i / 100) × return_i
//
// Weights are NOT renormalized: a 60/20 allocation contributes 80% of its
// returns and TotalWeight reports 80 so the caller can surface the gap.
//
// Returns nil for an empty item list.
func WeightedAverageReturn(items []WeightedItem) *WeightedReturnResult {
	if len(items) == 0 {
		return nil
	}

	result := &WeightedReturnResult{Items: len(items)}
	for _, item := range items {
		result.WeightedReturn += (item.Weight / 100) * item.Return
		result.TotalWeight += item.Weight
	}

	return result
}
