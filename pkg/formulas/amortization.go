package formulas

import "math"

// ScheduleRow is one period of an amortization schedule.
type ScheduleRow struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// AmortizationSchedule holds a full fixed-rate payment schedule.
type AmortizationSchedule struct {
	Payment       float64       `json:"payment"`
	TotalInterest float64       `json:"total_interest"`
	TotalPaid     float64       `json:"total_paid"`
	Rows          []ScheduleRow `json:"rows"`
}

// AdjustableComparison holds the payment range and interest estimate for an
// adjustable-rate loan.
type AdjustableComparison struct {
	InitialPayment        float64 `json:"initial_payment"`
	MaxPayment            float64 `json:"max_payment"`
	TotalInterestEstimate float64 `json:"total_interest_estimate"`
}

// FixedPayment calculates the level periodic payment for a fully amortizing loan.
//
// Amortization Formula:
//
//	Payment = P × r × (1+r)^n / ((1+r)^n − 1)
//
// Args:
//
//	principal: Loan amount (must be > 0)
//	periodicRate: Interest rate per period (monthly rate for monthly payments; 0 is valid)
//	periods: Number of payments (must be > 0)
//
// Returns:
//
//	Periodic payment or nil if the inputs cannot produce a payment
func FixedPayment(principal, periodicRate float64, periods int) *float64 {
	if principal <= 0 || periods <= 0 {
		return nil
	}

	// Zero-rate loans degrade to straight principal division
	if periodicRate == 0 {
		payment := principal / float64(periods)
		return &payment
	}

	growth := math.Pow(1+periodicRate, float64(periods))
	denom := growth - 1
	if denom == 0 {
		return nil
	}

	payment := principal * periodicRate * growth / denom
	return &payment
}

// Schedule builds the full period-by-period amortization schedule for a
// fixed-rate loan. The final row's balance is forced to zero to absorb
// accumulated rounding in the last payment.
func Schedule(principal, periodicRate float64, periods int) *AmortizationSchedule {
	payment := FixedPayment(principal, periodicRate, periods)
	if payment == nil {
		return nil
	}

	rows := make([]ScheduleRow, 0, periods)
	balance := principal
	totalInterest := 0.0

	for p := 1; p <= periods; p++ {
		interest := balance * periodicRate
		principalPaid := *payment - interest
		if p == periods || principalPaid > balance {
			// Last payment clears whatever is left
			principalPaid = balance
		}
		balance -= principalPaid
		totalInterest += interest

		rows = append(rows, ScheduleRow{
			Period:    p,
			Payment:   interest + principalPaid,
			Interest:  interest,
			Principal: principalPaid,
			Balance:   balance,
		})
	}

	return &AmortizationSchedule{
		Payment:       *payment,
		TotalInterest: totalInterest,
		TotalPaid:     principal + totalInterest,
		Rows:          rows,
	}
}

// CompareAdjustable estimates the payment range for an adjustable-rate loan.
//
// The initial payment uses the starting rate; the maximum payment uses the
// starting rate plus the lifetime cap (clamped at 100% per period). Total
// interest is estimated by amortizing period-by-period at the average of the
// initial and maximum rates as a stand-in for the unknown real rate path.
// Each period pays min(balance × (1+avgRate), scheduled payment) so the
// balance can never go negative.
//
// Args:
//
//	principal: Loan amount (must be > 0)
//	periodicRate: Starting rate per period
//	rateCap: Lifetime rate increase cap per period (≥ 0)
//	periods: Number of payments (must be > 0)
//
// Returns:
//
//	Comparison result or nil if the loan parameters are unusable
func CompareAdjustable(principal, periodicRate, rateCap float64, periods int) *AdjustableComparison {
	initial := FixedPayment(principal, periodicRate, periods)
	if initial == nil {
		return nil
	}

	maxRate := math.Min(periodicRate+rateCap, 1.0)
	maxPayment := FixedPayment(principal, maxRate, periods)
	if maxPayment == nil {
		return nil
	}

	avgRate := (periodicRate + maxRate) / 2
	scheduled := FixedPayment(principal, avgRate, periods)
	if scheduled == nil {
		return nil
	}

	balance := principal
	totalInterest := 0.0
	for p := 0; p < periods && balance > 0; p++ {
		interest := balance * avgRate
		payment := math.Min(balance*(1+avgRate), *scheduled)
		principalPaid := payment - interest
		if principalPaid > balance {
			principalPaid = balance
		}
		balance -= principalPaid
		totalInterest += interest
	}

	return &AdjustableComparison{
		InitialPayment:        *initial,
		MaxPayment:            *maxPayment,
		TotalInterestEstimate: totalInterest,
	}
}
