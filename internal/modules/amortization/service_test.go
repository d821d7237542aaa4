package amortization

import (
	"math"
	"testing"

	"github.com/aristath/quantcalc/pkg/logger"
)

func newTestService() *Service {
	log := logger.New(logger.Config{Level: "error", Pretty: false})
	return NewService(log)
}

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func TestService_Payment(t *testing.T) {
	service := newTestService()

	result := service.Payment(PaymentRequest{
		Principal:     f(100000),
		AnnualRatePct: f(5),
		TermYears:     i(30),
	})
	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	if math.Abs(result.Payment-536.82) > 0.01 {
		t.Errorf("Payment = %.2f, want 536.82", result.Payment)
	}
	if result.Periods != 360 {
		t.Errorf("Periods = %d, want 360", result.Periods)
	}
	if math.Abs(result.TotalPaid-(result.Payment*360)) > 1e-6 {
		t.Errorf("TotalPaid = %.2f, want payment × periods", result.TotalPaid)
	}
	if math.Abs(result.TotalInterest-(result.TotalPaid-100000)) > 1e-6 {
		t.Errorf("TotalInterest = %.2f, want total paid − principal", result.TotalInterest)
	}
}

func TestService_Payment_MissingInput(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name string
		req  PaymentRequest
	}{
		{"No principal", PaymentRequest{AnnualRatePct: f(5), TermYears: i(30)}},
		{"No rate", PaymentRequest{Principal: f(100000), TermYears: i(30)}},
		{"No term", PaymentRequest{Principal: f(100000), AnnualRatePct: f(5)}},
		{"Zero term", PaymentRequest{Principal: f(100000), AnnualRatePct: f(5), TermYears: i(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := service.Payment(tt.req); got != nil {
				t.Errorf("Expected nil, got %+v", got)
			}
		})
	}
}

func TestService_Payment_ZeroRate(t *testing.T) {
	service := newTestService()

	result := service.Payment(PaymentRequest{
		Principal:     f(12000),
		AnnualRatePct: f(0),
		TermYears:     i(1),
	})
	if result == nil {
		t.Fatal("Expected result, got nil")
	}
	if result.Payment != 1000 {
		t.Errorf("Payment = %.2f, want 1000 (principal / periods)", result.Payment)
	}
	if math.Abs(result.TotalInterest) > 1e-9 {
		t.Errorf("TotalInterest = %.6f, want 0", result.TotalInterest)
	}
}

func TestService_Schedule(t *testing.T) {
	service := newTestService()

	result := service.Schedule(PaymentRequest{
		Principal:     f(10000),
		AnnualRatePct: f(12),
		TermYears:     i(1),
	})
	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	if len(result.Rows) != 12 {
		t.Fatalf("Expected 12 rows, got %d", len(result.Rows))
	}
	if result.Rows[11].Balance != 0 {
		t.Errorf("Final balance = %.6f, want 0", result.Rows[11].Balance)
	}
	if math.Abs(result.PeriodicRate-0.01) > 1e-12 {
		t.Errorf("PeriodicRate = %v, want 0.01", result.PeriodicRate)
	}
}

func TestService_Adjustable(t *testing.T) {
	service := newTestService()

	result := service.Adjustable(AdjustableRequest{
		Principal:      f(200000),
		InitialRatePct: f(4),
		RateCapPct:     f(5),
		TermYears:      i(30),
	})
	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	if result.MaxAnnualRatePct != 9 {
		t.Errorf("MaxAnnualRatePct = %v, want 9", result.MaxAnnualRatePct)
	}
	if result.MaxPayment <= result.InitialPayment {
		t.Errorf("Max payment %.2f should exceed initial %.2f", result.MaxPayment, result.InitialPayment)
	}
	if result.TotalInterestEstimate <= 0 {
		t.Errorf("Interest estimate should be positive, got %.2f", result.TotalInterestEstimate)
	}
}

func TestService_Adjustable_CapClampedAt100(t *testing.T) {
	service := newTestService()

	result := service.Adjustable(AdjustableRequest{
		Principal:      f(10000),
		InitialRatePct: f(90),
		RateCapPct:     f(50),
		TermYears:      i(5),
	})
	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	if result.MaxAnnualRatePct != 100 {
		t.Errorf("MaxAnnualRatePct = %v, want clamp at 100", result.MaxAnnualRatePct)
	}
}
