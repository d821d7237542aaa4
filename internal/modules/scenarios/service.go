package scenarios

import (
	"github.com/rs/zerolog"

	"github.com/aristath/quantcalc/internal/modules/classification"
	"github.com/aristath/quantcalc/pkg/bands"
	"github.com/aristath/quantcalc/pkg/formulas"
)

// viability labels an NPV against the strict zero threshold: any NPV ≥ 0 is
// viable.
func viability(npv float64) string {
	table, ok := classification.Table("npv_viability")
	if !ok {
		return ""
	}
	return bands.Classify(npv, table).Label
}

// Service evaluates discounted cash-flow scenarios.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new scenario valuation service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("component", "scenarios").Logger(),
	}
}

// NPV values a single level cash-flow stream. Returns nil when required
// inputs are absent or the valuation degenerates.
func (s *Service) NPV(req NPVRequest) *NPVResult {
	if req.InitialInvestment == nil || req.DiscountRatePct == nil ||
		req.ProjectYears == nil || req.AnnualCashFlow == nil {
		return nil
	}

	npv := formulas.NPV(
		*req.AnnualCashFlow,
		*req.DiscountRatePct/100,
		*req.InitialInvestment,
		*req.ProjectYears,
	)
	if npv == nil {
		return nil
	}

	return &NPVResult{
		NPV:       *npv,
		Viability: viability(*npv),
	}
}

// Run evaluates every scenario independently against the shared inputs.
// Scenarios with missing fields come back with Computed=false instead of a
// zero NPV, so they cannot be mistaken for break-even cases. Returns nil when
// the shared inputs themselves are unusable.
func (s *Service) Run(req RunRequest) []ScenarioResult {
	if req.InitialInvestment == nil || req.DiscountRatePct == nil || req.ProjectYears == nil {
		return nil
	}

	results := make([]ScenarioResult, 0, len(req.Scenarios))
	for _, sc := range req.Scenarios {
		results = append(results, s.runOne(sc, req.Shared))
	}

	return results
}

func (s *Service) runOne(sc Scenario, shared Shared) ScenarioResult {
	if sc.Volume == nil || sc.UnitPrice == nil || sc.UnitVariableCost == nil || sc.FixedCost == nil {
		s.log.Debug().Str("scenario", sc.Name).Msg("Scenario incomplete, skipping")
		return ScenarioResult{Name: sc.Name, Computed: false}
	}

	cashFlow := formulas.AnnualCashFlow(*sc.UnitPrice, *sc.Volume, *sc.UnitVariableCost, *sc.FixedCost)
	npv := formulas.NPV(cashFlow, *shared.DiscountRatePct/100, *shared.InitialInvestment, *shared.ProjectYears)
	if npv == nil {
		return ScenarioResult{Name: sc.Name, Computed: false}
	}

	return ScenarioResult{
		Name:           sc.Name,
		Computed:       true,
		AnnualCashFlow: &cashFlow,
		NPV:            npv,
		Viability:      viability(*npv),
	}
}
