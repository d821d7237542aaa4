package formulas

import (
	"math"
	"testing"
)

func TestMaximumDrawdown(t *testing.T) {
	values := []float64{100000, 110000, 90000, 95000}

	got := MaximumDrawdown(values)
	if got == nil {
		t.Fatal("Expected result, got nil")
	}

	if math.Abs(got.MaxDrawdown-0.1818) > 0.0001 {
		t.Errorf("MaxDrawdown = %.4f, want 0.1818", got.MaxDrawdown)
	}
	if got.PeakValue != 110000 || got.PeakIndex != 1 {
		t.Errorf("Peak = %.0f at %d, want 110000 at 1", got.PeakValue, got.PeakIndex)
	}
	if got.TroughValue != 90000 || got.TroughIndex != 2 {
		t.Errorf("Trough = %.0f at %d, want 90000 at 2", got.TroughValue, got.TroughIndex)
	}
}

// The reported peak must be the one before the trough: a higher peak reached
// after the drawdown closed must not replace it.
func TestMaximumDrawdown_PeakPriorToTrough(t *testing.T) {
	values := []float64{100, 80, 120, 110}

	got := MaximumDrawdown(values)
	if got == nil {
		t.Fatal("Expected result, got nil")
	}

	if math.Abs(got.MaxDrawdown-0.20) > 1e-9 {
		t.Errorf("MaxDrawdown = %.4f, want 0.20", got.MaxDrawdown)
	}
	if got.PeakIndex != 0 || got.PeakValue != 100 {
		t.Errorf("Peak = %.0f at %d, want 100 at 0 (not the later global peak 120)",
			got.PeakValue, got.PeakIndex)
	}
	if got.TroughIndex != 1 || got.TroughValue != 80 {
		t.Errorf("Trough = %.0f at %d, want 80 at 1", got.TroughValue, got.TroughIndex)
	}
}

func TestMaximumDrawdown_NonDecreasingIsZero(t *testing.T) {
	series := [][]float64{
		{100, 100, 100},
		{100, 101, 105, 200},
		{1, 2},
	}

	for _, values := range series {
		got := MaximumDrawdown(values)
		if got == nil {
			t.Fatalf("MaximumDrawdown(%v) = nil", values)
		}
		if got.MaxDrawdown != 0 {
			t.Errorf("MaximumDrawdown(%v) = %.6f, want 0", values, got.MaxDrawdown)
		}
	}
}

func TestMaximumDrawdown_Bounds(t *testing.T) {
	series := [][]float64{
		{100, 50, 75, 25, 300},
		{5, 4, 3, 2, 1},
		{100, 0.0001},
	}

	for _, values := range series {
		got := MaximumDrawdown(values)
		if got == nil {
			t.Fatalf("MaximumDrawdown(%v) = nil", values)
		}
		if got.MaxDrawdown < 0 || got.MaxDrawdown > 1 {
			t.Errorf("MaximumDrawdown(%v) = %.6f, outside [0,1]", values, got.MaxDrawdown)
		}
	}
}

func TestMaximumDrawdown_NoResult(t *testing.T) {
	cases := [][]float64{
		nil,
		{100},
		{100, -50, 75}, // Non-positive values invalidate the path
		{100, 0, 75},
	}

	for _, values := range cases {
		if got := MaximumDrawdown(values); got != nil {
			t.Errorf("MaximumDrawdown(%v) = %+v, want nil", values, got)
		}
	}
}

func TestCurrentDrawdown(t *testing.T) {
	got := CurrentDrawdown([]float64{100, 120, 90})
	if got == nil {
		t.Fatal("Expected result, got nil")
	}
	if math.Abs(*got-0.25) > 1e-9 {
		t.Errorf("CurrentDrawdown = %.4f, want 0.25", *got)
	}

	atHigh := CurrentDrawdown([]float64{100, 120, 130})
	if atHigh == nil || *atHigh != 0 {
		t.Errorf("Series ending at a new high should have zero current drawdown")
	}
}
