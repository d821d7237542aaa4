package amortization

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/aristath/quantcalc/pkg/formulas"
)

const defaultPaymentsPerYear = 12

// Service computes loan payment schedules. Stateless; every call works on the
// request it was handed.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new amortization service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("component", "amortization").Logger(),
	}
}

// Payment calculates the level payment for a fixed-rate loan. Returns nil
// when a required parameter is absent or the loan is degenerate (the caller
// renders no result).
func (s *Service) Payment(req PaymentRequest) *PaymentResult {
	if req.Principal == nil || req.AnnualRatePct == nil || req.TermYears == nil {
		return nil
	}

	ppy := paymentsPerYear(req.PaymentsPerYear)
	periods := *req.TermYears * ppy
	rate := *req.AnnualRatePct / 100 / float64(ppy)

	payment := formulas.FixedPayment(*req.Principal, rate, periods)
	if payment == nil {
		s.log.Debug().
			Float64("principal", *req.Principal).
			Int("periods", periods).
			Msg("Fixed payment not computable")
		return nil
	}

	totalPaid := *payment * float64(periods)
	return &PaymentResult{
		Payment:       *payment,
		PeriodicRate:  rate,
		Periods:       periods,
		TotalPaid:     totalPaid,
		TotalInterest: totalPaid - *req.Principal,
	}
}

// Schedule builds the period-by-period amortization table.
func (s *Service) Schedule(req PaymentRequest) *ScheduleResult {
	if req.Principal == nil || req.AnnualRatePct == nil || req.TermYears == nil {
		return nil
	}

	ppy := paymentsPerYear(req.PaymentsPerYear)
	periods := *req.TermYears * ppy
	rate := *req.AnnualRatePct / 100 / float64(ppy)

	schedule := formulas.Schedule(*req.Principal, rate, periods)
	if schedule == nil {
		return nil
	}

	return &ScheduleResult{
		AmortizationSchedule: *schedule,
		PeriodicRate:         rate,
		Periods:              periods,
	}
}

// Adjustable compares initial and worst-case payments for an adjustable-rate
// loan. The lifetime cap is applied to the annual rate and clamped at 100%.
func (s *Service) Adjustable(req AdjustableRequest) *AdjustableResult {
	if req.Principal == nil || req.InitialRatePct == nil || req.RateCapPct == nil || req.TermYears == nil {
		return nil
	}

	ppy := paymentsPerYear(req.PaymentsPerYear)
	periods := *req.TermYears * ppy

	maxAnnualPct := math.Min(*req.InitialRatePct+*req.RateCapPct, 100)
	initialRate := *req.InitialRatePct / 100 / float64(ppy)
	capRate := (maxAnnualPct - *req.InitialRatePct) / 100 / float64(ppy)

	cmp := formulas.CompareAdjustable(*req.Principal, initialRate, capRate, periods)
	if cmp == nil {
		s.log.Debug().
			Float64("principal", *req.Principal).
			Int("periods", periods).
			Msg("Adjustable comparison not computable")
		return nil
	}

	return &AdjustableResult{
		InitialPayment:        cmp.InitialPayment,
		MaxPayment:            cmp.MaxPayment,
		MaxAnnualRatePct:      maxAnnualPct,
		TotalInterestEstimate: cmp.TotalInterestEstimate,
	}
}

func paymentsPerYear(override *int) int {
	if override != nil && *override > 0 {
		return *override
	}
	return defaultPaymentsPerYear
}
