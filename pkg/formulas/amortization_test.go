package formulas

import (
	"math"
	"testing"
)

func TestFixedPayment(t *testing.T) {
	tests := []struct {
		name        string
		principal   float64
		rate        float64
		periods     int
		want        float64
		tolerance   float64
		description string
	}{
		{
			name:        "30-year 100k at 5% APR",
			principal:   100000,
			rate:        0.05 / 12,
			periods:     360,
			want:        536.82,
			tolerance:   0.01,
			description: "Standard mortgage reference value",
		},
		{
			name:        "Zero rate degrades to straight division",
			principal:   12000,
			rate:        0,
			periods:     12,
			want:        1000,
			tolerance:   1e-9,
			description: "No interest means principal / periods",
		},
		{
			name:        "Single period repays principal plus one period of interest",
			principal:   1000,
			rate:        0.10,
			periods:     1,
			want:        1100,
			tolerance:   1e-9,
			description: "n=1 collapses to P(1+r)",
		},
		{
			name:        "Negative rate shrinks the payment",
			principal:   12000,
			rate:        -0.01,
			periods:     12,
			want:        936.20,
			tolerance:   0.01,
			description: "Negative rates are mathematically valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FixedPayment(tt.principal, tt.rate, tt.periods)
			if got == nil {
				t.Fatalf("Expected payment, got nil - %s", tt.description)
			}
			if math.Abs(*got-tt.want) > tt.tolerance {
				t.Errorf("Payment = %.4f, want %.4f - %s", *got, tt.want, tt.description)
			}
		})
	}
}

func TestFixedPayment_NoResult(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		periods   int
	}{
		{"Zero principal", 0, 0.01, 12},
		{"Negative principal", -100, 0.01, 12},
		{"Zero periods", 1000, 0.01, 0},
		{"Negative periods", 1000, 0.01, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixedPayment(tt.principal, tt.rate, tt.periods); got != nil {
				t.Errorf("Expected nil, got %.4f", *got)
			}
		})
	}
}

// The amortization formula must invert back to the original principal:
// payment × (1 − (1+r)^−n)/r ≈ P.
func TestFixedPayment_InvertsToPrincipal(t *testing.T) {
	principals := []float64{1000, 50000, 250000, 1_000_000}
	rates := []float64{0.001, 0.05 / 12, 0.01, 0.10 / 12}
	periods := []int{1, 12, 120, 360}

	for _, p := range principals {
		for _, r := range rates {
			for _, n := range periods {
				payment := FixedPayment(p, r, n)
				if payment == nil {
					t.Fatalf("FixedPayment(%v, %v, %v) = nil", p, r, n)
				}

				annuityFactor := (1 - math.Pow(1+r, -float64(n))) / r
				recovered := *payment * annuityFactor

				if math.Abs(recovered-p)/p > 1e-6 {
					t.Errorf("FixedPayment(%v, %v, %v) inverts to %.6f, want %.6f",
						p, r, n, recovered, p)
				}
			}
		}
	}
}

func TestSchedule(t *testing.T) {
	schedule := Schedule(10000, 0.01, 12)
	if schedule == nil {
		t.Fatal("Expected schedule, got nil")
	}

	if len(schedule.Rows) != 12 {
		t.Fatalf("Expected 12 rows, got %d", len(schedule.Rows))
	}

	// Final balance must be exactly zero
	last := schedule.Rows[len(schedule.Rows)-1]
	if last.Balance != 0 {
		t.Errorf("Final balance = %.6f, want 0", last.Balance)
	}

	// Balance must be non-increasing and never negative
	prev := 10000.0
	for _, row := range schedule.Rows {
		if row.Balance > prev {
			t.Errorf("Period %d: balance %.4f increased from %.4f", row.Period, row.Balance, prev)
		}
		if row.Balance < 0 {
			t.Errorf("Period %d: balance went negative: %.4f", row.Period, row.Balance)
		}
		prev = row.Balance
	}

	// Principal portions must sum to the loan amount
	var principalSum float64
	for _, row := range schedule.Rows {
		principalSum += row.Principal
	}
	if math.Abs(principalSum-10000) > 1e-6 {
		t.Errorf("Principal portions sum to %.6f, want 10000", principalSum)
	}

	if math.Abs(schedule.TotalPaid-(10000+schedule.TotalInterest)) > 1e-6 {
		t.Errorf("TotalPaid %.6f != principal + TotalInterest %.6f",
			schedule.TotalPaid, 10000+schedule.TotalInterest)
	}
}

func TestCompareAdjustable(t *testing.T) {
	cmp := CompareAdjustable(200000, 0.04/12, 0.05/12, 360)
	if cmp == nil {
		t.Fatal("Expected comparison, got nil")
	}

	if cmp.MaxPayment <= cmp.InitialPayment {
		t.Errorf("Max payment %.2f should exceed initial payment %.2f",
			cmp.MaxPayment, cmp.InitialPayment)
	}

	if cmp.TotalInterestEstimate <= 0 {
		t.Errorf("Total interest estimate should be positive, got %.2f", cmp.TotalInterestEstimate)
	}

	// Interest at the average rate must land between the two fixed-rate extremes
	initialOnly := Schedule(200000, 0.04/12, 360)
	maxOnly := Schedule(200000, 0.09/12, 360)
	if initialOnly == nil || maxOnly == nil {
		t.Fatal("Reference schedules not computable")
	}
	if cmp.TotalInterestEstimate < initialOnly.TotalInterest*0.9 ||
		cmp.TotalInterestEstimate > maxOnly.TotalInterest*1.1 {
		t.Errorf("Interest estimate %.2f outside plausible range [%.2f, %.2f]",
			cmp.TotalInterestEstimate, initialOnly.TotalInterest, maxOnly.TotalInterest)
	}
}

func TestCompareAdjustable_ZeroCap(t *testing.T) {
	cmp := CompareAdjustable(100000, 0.05/12, 0, 360)
	if cmp == nil {
		t.Fatal("Expected comparison, got nil")
	}

	if math.Abs(cmp.InitialPayment-cmp.MaxPayment) > 1e-9 {
		t.Errorf("With no cap room, initial %.4f and max %.4f payments should match",
			cmp.InitialPayment, cmp.MaxPayment)
	}
}
