package amortization

import "github.com/aristath/quantcalc/pkg/formulas"

// PaymentRequest holds fixed-rate loan parameters. Optional fields are
// pointers: absent is distinct from zero (a 0% rate is a valid loan).
type PaymentRequest struct {
	Principal       *float64 `json:"principal"`
	AnnualRatePct   *float64 `json:"annual_rate_pct"`
	TermYears       *int     `json:"term_years"`
	PaymentsPerYear *int     `json:"payments_per_year,omitempty"` // Default 12
}

// PaymentResult is the headline fixed-payment output.
type PaymentResult struct {
	Payment       float64 `json:"payment"`
	PeriodicRate  float64 `json:"periodic_rate"`
	Periods       int     `json:"periods"`
	TotalPaid     float64 `json:"total_paid"`
	TotalInterest float64 `json:"total_interest"`
}

// ScheduleResult wraps the full amortization table.
type ScheduleResult struct {
	formulas.AmortizationSchedule
	PeriodicRate float64 `json:"periodic_rate"`
	Periods      int     `json:"periods"`
}

// AdjustableRequest holds adjustable-rate loan parameters.
type AdjustableRequest struct {
	Principal       *float64 `json:"principal"`
	InitialRatePct  *float64 `json:"initial_rate_pct"`
	RateCapPct      *float64 `json:"rate_cap_pct"`
	TermYears       *int     `json:"term_years"`
	PaymentsPerYear *int     `json:"payments_per_year,omitempty"`
}

// AdjustableResult is the adjustable-rate comparison output.
type AdjustableResult struct {
	InitialPayment        float64 `json:"initial_payment"`
	MaxPayment            float64 `json:"max_payment"`
	MaxAnnualRatePct      float64 `json:"max_annual_rate_pct"`
	TotalInterestEstimate float64 `json:"total_interest_estimate"`
}
