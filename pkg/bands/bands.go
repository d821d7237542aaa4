// Package bands maps scalar scores to ordered human-readable categories via
// declarative threshold tables. The classifier is generic: every domain
// (risk level, drawdown severity, scenario viability) supplies its own table.
package bands

import "fmt"

// Band is one category in a threshold table. A value belongs to the band with
// the highest LowerBound it meets or exceeds.
type Band struct {
	LowerBound      float64  `json:"lower_bound"`
	Label           string   `json:"label"`
	Color           string   `json:"color"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// Table is an ordered list of bands, ascending by LowerBound. The first band
// acts as the catch-all: values below its bound still classify into it, so
// classification is total over the reals.
type Table []Band

// Result is the category assigned to a value.
type Result struct {
	Label           string   `json:"label"`
	Color           string   `json:"color"`
	Rank            int      `json:"rank"` // Index of the winning band, 0 = lowest
	Recommendations []string `json:"recommendations,omitempty"`
}

// Validate checks that the table is non-empty with strictly increasing bounds.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("band table is empty")
	}
	for i := 1; i < len(t); i++ {
		if t[i].LowerBound <= t[i-1].LowerBound {
			return fmt.Errorf("band %q: lower bound %.6g not above previous %.6g",
				t[i].Label, t[i].LowerBound, t[i-1].LowerBound)
		}
	}
	return nil
}

// Classify assigns value to a band. Bands are checked from the highest lower
// bound downward; the first bound the value meets wins. Values below every
// explicit bound fall into the lowest band, making Classify a total function.
func Classify(value float64, table Table) *Result {
	if len(table) == 0 {
		return nil
	}

	for i := len(table) - 1; i > 0; i-- {
		if value >= table[i].LowerBound {
			return resultFor(table, i)
		}
	}

	return resultFor(table, 0)
}

func resultFor(table Table, i int) *Result {
	return &Result{
		Label:           table[i].Label,
		Color:           table[i].Color,
		Rank:            i,
		Recommendations: table[i].Recommendations,
	}
}
