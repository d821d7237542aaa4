package formulas

import "testing"

func TestWeightedAverageReturn(t *testing.T) {
	tests := []struct {
		name       string
		items      []WeightedItem
		wantReturn float64
		wantWeight float64
	}{
		{
			name:       "Two-asset portfolio",
			items:      []WeightedItem{{Weight: 60, Return: 10}, {Weight: 40, Return: -5}},
			wantReturn: 4,
			wantWeight: 100,
		},
		{
			name:       "Single full-weight item reproduces the return exactly",
			items:      []WeightedItem{{Weight: 100, Return: 7.35}},
			wantReturn: 7.35,
			wantWeight: 100,
		},
		{
			name:       "Underallocated portfolio is not renormalized",
			items:      []WeightedItem{{Weight: 50, Return: 10}},
			wantReturn: 5,
			wantWeight: 50,
		},
		{
			name:       "Overallocation reported as-is",
			items:      []WeightedItem{{Weight: 80, Return: 10}, {Weight: 40, Return: 5}},
			wantReturn: 10,
			wantWeight: 120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedAverageReturn(tt.items)
			if got == nil {
				t.Fatal("Expected result, got nil")
			}
			if got.WeightedReturn != tt.wantReturn {
				t.Errorf("WeightedReturn = %v, want %v", got.WeightedReturn, tt.wantReturn)
			}
			if got.TotalWeight != tt.wantWeight {
				t.Errorf("TotalWeight = %v, want %v", got.TotalWeight, tt.wantWeight)
			}
			if got.Items != len(tt.items) {
				t.Errorf("Items = %d, want %d", got.Items, len(tt.items))
			}
		})
	}
}

func TestWeightedAverageReturn_Empty(t *testing.T) {
	if got := WeightedAverageReturn(nil); got != nil {
		t.Errorf("Expected nil for empty input, got %+v", got)
	}
}
