package scenarios

// Shared holds the valuation inputs common to every scenario.
type Shared struct {
	InitialInvestment *float64 `json:"initial_investment"`
	DiscountRatePct   *float64 `json:"discount_rate_pct"`
	ProjectYears      *int     `json:"project_years"`
}

// Scenario is one named unit-economics case. Every field is optional; a
// scenario missing any of them is skipped, never assumed zero.
type Scenario struct {
	Name             string   `json:"name"`
	Volume           *float64 `json:"volume"`
	UnitPrice        *float64 `json:"unit_price"`
	UnitVariableCost *float64 `json:"unit_variable_cost"`
	FixedCost        *float64 `json:"fixed_cost"`
}

// NPVRequest values a single level cash flow stream.
type NPVRequest struct {
	Shared
	AnnualCashFlow *float64 `json:"annual_cash_flow"`
}

// RunRequest values N scenarios against the same shared inputs.
type RunRequest struct {
	Shared
	Scenarios []Scenario `json:"scenarios"`
}

// NPVResult is a single-stream valuation.
type NPVResult struct {
	NPV       float64 `json:"npv"`
	Viability string  `json:"viability"`
}

// ScenarioResult is one row of a multi-scenario comparison. Computed is false
// when the scenario was skipped for missing fields; NPV and cash flow are
// then absent so a skipped scenario can never read as break-even.
type ScenarioResult struct {
	Name           string   `json:"name"`
	Computed       bool     `json:"computed"`
	AnnualCashFlow *float64 `json:"annual_cash_flow,omitempty"`
	NPV            *float64 `json:"npv,omitempty"`
	Viability      string   `json:"viability,omitempty"`
}
