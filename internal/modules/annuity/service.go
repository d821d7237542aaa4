package annuity

import (
	"github.com/rs/zerolog"

	"github.com/aristath/quantcalc/pkg/formulas"
)

const defaultPaymentsPerYear = 12

// Service solves for the periodic payment that meets a present- or
// future-value target.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new annuity service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("component", "annuity").Logger(),
	}
}

// Payment solves the request's target. Returns nil when required parameters
// are absent, the target type is unknown, or the formula degenerates.
func (s *Service) Payment(req PaymentRequest) *PaymentResult {
	if req.TargetValue == nil || req.AnnualRatePct == nil || req.Years == nil {
		return nil
	}

	ppy := defaultPaymentsPerYear
	if req.PaymentsPerYear != nil && *req.PaymentsPerYear > 0 {
		ppy = *req.PaymentsPerYear
	}
	periods := *req.Years * ppy
	rate := *req.AnnualRatePct / 100 / float64(ppy)

	var payment *float64
	switch req.TargetType {
	case TargetPresentValue:
		payment = formulas.PaymentForPresentValue(*req.TargetValue, rate, periods)
	case TargetFutureValue:
		payment = formulas.PaymentForFutureValue(*req.TargetValue, rate, periods)
	default:
		s.log.Debug().Str("target_type", string(req.TargetType)).Msg("Unknown target type")
		return nil
	}

	if payment == nil {
		return nil
	}

	result := &PaymentResult{
		Payment:          *payment,
		PeriodicRate:     rate,
		Periods:          periods,
		TotalContributed: *payment * float64(periods),
	}

	if req.TargetType == TargetFutureValue {
		result.AccumulatedValue = formulas.FutureValueOfPayments(*payment, rate, periods)
	}

	return result
}
