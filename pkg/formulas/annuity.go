package formulas

import "math"

// PaymentForPresentValue solves for the level payment that amortizes a
// present value over n periods.
//
// Formula:
//
//	Payment = PV × r / (1 − (1+r)^−n)
//
// A zero rate degrades to PV/n. Returns nil when pv ≤ 0 or periods ≤ 0.
func PaymentForPresentValue(pv, periodicRate float64, periods int) *float64 {
	if pv <= 0 || periods <= 0 {
		return nil
	}

	if periodicRate == 0 {
		payment := pv / float64(periods)
		return &payment
	}

	denom := 1 - math.Pow(1+periodicRate, -float64(periods))
	if denom == 0 {
		return nil
	}

	payment := pv * periodicRate / denom
	return &payment
}

// PaymentForFutureValue solves for the level payment that accumulates to a
// future value after n periods.
//
// Formula:
//
//	Payment = FV × r / ((1+r)^n − 1)
//
// A zero rate degrades to FV/n. Returns nil when fv ≤ 0 or periods ≤ 0.
func PaymentForFutureValue(fv, periodicRate float64, periods int) *float64 {
	if fv <= 0 || periods <= 0 {
		return nil
	}

	if periodicRate == 0 {
		payment := fv / float64(periods)
		return &payment
	}

	denom := math.Pow(1+periodicRate, float64(periods)) - 1
	if denom == 0 {
		return nil
	}

	payment := fv * periodicRate / denom
	return &payment
}

// FutureValueOfPayments accumulates a level payment stream at a periodic rate.
// Inverse of PaymentForFutureValue; used to echo the accumulated value back to
// callers for display.
func FutureValueOfPayments(payment, periodicRate float64, periods int) *float64 {
	if periods <= 0 {
		return nil
	}

	if periodicRate == 0 {
		fv := payment * float64(periods)
		return &fv
	}

	fv := payment * (math.Pow(1+periodicRate, float64(periods)) - 1) / periodicRate
	return &fv
}
