package classification

import (
	"testing"

	"github.com/aristath/quantcalc/pkg/bands"
	"github.com/aristath/quantcalc/pkg/logger"
)

func newTestService() *Service {
	log := logger.New(logger.Config{Level: "error", Pretty: false})
	return NewService(log)
}

// Every built-in table must be well-formed.
func TestBuiltinTablesValidate(t *testing.T) {
	names := TableNames()
	if len(names) == 0 {
		t.Fatal("Expected built-in tables")
	}

	for _, name := range names {
		table, ok := Table(name)
		if !ok {
			t.Fatalf("TableNames listed %q but Table cannot find it", name)
		}
		if err := table.Validate(); err != nil {
			t.Errorf("Table %q invalid: %v", name, err)
		}
	}
}

func TestService_Classify_NamedTable(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name  string
		table string
		value float64
		want  string
	}{
		{"Low volatility", "risk_level", 0.05, "Low"},
		{"Very high volatility", "risk_level", 0.45, "Very High"},
		{"Deep drawdown", "drawdown_severity", 0.55, "Critical"},
		{"Negative NPV", "npv_viability", -0.01, "Not Viable"},
		{"Break-even NPV counts as viable", "npv_viability", 0, "Viable"},
		{"Unlevered balance sheet", "leverage_level", 0.2, "Conservative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.value
			result, err := service.Classify(ClassifyRequest{Value: &v, Table: tt.table})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result.Label != tt.want {
				t.Errorf("Classify(%v, %s) = %q, want %q", tt.value, tt.table, result.Label, tt.want)
			}
		})
	}
}

func TestService_Classify_InlineTable(t *testing.T) {
	service := newTestService()

	v := 7.0
	result, err := service.Classify(ClassifyRequest{
		Value: &v,
		Bands: bands.Table{
			{LowerBound: 0, Label: "Few"},
			{LowerBound: 5, Label: "Many"},
		},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Label != "Many" {
		t.Errorf("Label = %q, want Many", result.Label)
	}
}

func TestService_Classify_Errors(t *testing.T) {
	service := newTestService()

	v := 1.0
	if _, err := service.Classify(ClassifyRequest{Table: "risk_level"}); err == nil {
		t.Error("Missing value should error")
	}
	if _, err := service.Classify(ClassifyRequest{Value: &v, Table: "nonexistent"}); err == nil {
		t.Error("Unknown table should error")
	}
	if _, err := service.Classify(ClassifyRequest{
		Value: &v,
		Bands: bands.Table{{LowerBound: 1, Label: "A"}, {LowerBound: 1, Label: "B"}},
	}); err == nil {
		t.Error("Invalid inline table should error")
	}
}
