package formulas

import "math"

// AnnualCashFlow calculates the per-period cash flow of a unit-economics
// scenario.
//
// Formula:
//
//	Cash Flow = price × volume − variableCost × volume − fixedCost
func AnnualCashFlow(unitPrice, volume, unitVariableCost, fixedCost float64) float64 {
	return unitPrice*volume - unitVariableCost*volume - fixedCost
}

// NPV calculates the net present value of a level cash flow stream.
//
// Formula:
//
//	NPV = −initialInvestment + Σ_{t=1..n} cashFlow / (1+d)^t
//
// Args:
//
//	cashFlow: Cash flow per period (level across the horizon)
//	discountRate: Discount rate per period as a fraction (0.10 = 10%)
//	initialInvestment: Up-front outlay at t=0
//	periods: Project life in periods (must be > 0)
//
// Returns:
//
//	NPV or nil if the horizon is empty or the discount factor degenerates
func NPV(cashFlow, discountRate, initialInvestment float64, periods int) *float64 {
	if periods <= 0 {
		return nil
	}

	// A discount rate of exactly -100% makes every discount factor divide
	// by zero; there is no meaningful valuation at that point.
	if 1+discountRate == 0 {
		return nil
	}

	npv := -initialInvestment
	for t := 1; t <= periods; t++ {
		npv += cashFlow / math.Pow(1+discountRate, float64(t))
	}

	if math.IsNaN(npv) || math.IsInf(npv, 0) {
		return nil
	}

	return &npv
}
