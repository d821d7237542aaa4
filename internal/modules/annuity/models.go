package annuity

// Target selects which value the solver's target represents.
type Target string

// Target constants.
const (
	TargetPresentValue Target = "present" // Solve a loan-style payment for a present value
	TargetFutureValue  Target = "future"  // Solve a savings-style contribution for a future value
)

// PaymentRequest holds payment-solver parameters. Optional fields are
// pointers so absent never collides with a legitimate zero.
type PaymentRequest struct {
	TargetValue     *float64 `json:"target_value"`
	TargetType      Target   `json:"target_type"`
	AnnualRatePct   *float64 `json:"annual_rate_pct"`
	Years           *int     `json:"years"`
	PaymentsPerYear *int     `json:"payments_per_year,omitempty"` // Default 12
}

// PaymentResult is the solved periodic payment with display context.
type PaymentResult struct {
	Payment          float64  `json:"payment"`
	PeriodicRate     float64  `json:"periodic_rate"`
	Periods          int      `json:"periods"`
	TotalContributed float64  `json:"total_contributed"`
	AccumulatedValue *float64 `json:"accumulated_value,omitempty"` // Future-value targets only
}
