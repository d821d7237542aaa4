package classification

import (
	"sort"

	"github.com/aristath/quantcalc/pkg/bands"
)

// Built-in band tables. Each table grades one domain score; the classifier
// itself carries no domain knowledge. The lowest band of every table is the
// catch-all, so its bound is notional.
var tables = map[string]bands.Table{
	// Annualized volatility as a fraction (0.15 = 15%)
	"risk_level": {
		{LowerBound: 0, Label: "Low", Color: "green",
			Recommendations: []string{"Volatility consistent with conservative portfolios"}},
		{LowerBound: 0.10, Label: "Moderate", Color: "yellow",
			Recommendations: []string{"Typical for diversified equity exposure"}},
		{LowerBound: 0.20, Label: "High", Color: "orange",
			Recommendations: []string{"Expect large swings", "Size positions accordingly"}},
		{LowerBound: 0.30, Label: "Very High", Color: "red",
			Recommendations: []string{"Suitable only for risk capital"}},
	},

	// Maximum drawdown as a fraction
	"drawdown_severity": {
		{LowerBound: 0, Label: "Minor", Color: "green",
			Recommendations: []string{"Normal market fluctuation, no action needed"}},
		{LowerBound: 0.10, Label: "Moderate", Color: "yellow",
			Recommendations: []string{"Review position sizing"}},
		{LowerBound: 0.20, Label: "Severe", Color: "orange",
			Recommendations: []string{"Reassess the strategy before adding capital"}},
		{LowerBound: 0.40, Label: "Critical", Color: "red",
			Recommendations: []string{"Drawdowns this deep take years to recover from"}},
	},

	// Debt-to-equity ratio
	"leverage_level": {
		{LowerBound: 0, Label: "Conservative", Color: "green",
			Recommendations: []string{"Balance sheet leaves room to borrow"}},
		{LowerBound: 1, Label: "Moderate", Color: "yellow",
			Recommendations: []string{"Monitor interest coverage"}},
		{LowerBound: 2, Label: "High", Color: "orange",
			Recommendations: []string{"Refinancing risk rises with rates", "Prioritize debt reduction"}},
		{LowerBound: 3, Label: "Very High", Color: "red",
			Recommendations: []string{"Equity cushion is thin", "Stress-test cash flows"}},
	},

	// Annualized tracking error as a fraction
	"tracking_quality": {
		{LowerBound: 0, Label: "Tight", Color: "green",
			Recommendations: []string{"Fund tracks its benchmark closely"}},
		{LowerBound: 0.005, Label: "Acceptable", Color: "yellow",
			Recommendations: []string{"Typical for physically replicating index funds"}},
		{LowerBound: 0.02, Label: "Loose", Color: "orange",
			Recommendations: []string{"Compare against cheaper alternatives"}},
		{LowerBound: 0.05, Label: "Poor", Color: "red",
			Recommendations: []string{"The fund is not delivering its index"}},
	},

	// Net present value; the notional -1 bound marks the catch-all
	"npv_viability": {
		{LowerBound: -1, Label: "Not Viable", Color: "red",
			Recommendations: []string{"The project destroys value at this discount rate"}},
		{LowerBound: 0, Label: "Viable", Color: "green",
			Recommendations: []string{"Positive NPV at the stated discount rate"}},
	},
}

// Table looks up a built-in band table by name.
func Table(name string) (bands.Table, bool) {
	t, ok := tables[name]
	return t, ok
}

// TableNames lists the built-in table names, sorted.
func TableNames() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
