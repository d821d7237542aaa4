package seriesstats

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/quantcalc/internal/modules/classification"
	"github.com/aristath/quantcalc/pkg/bands"
	"github.com/aristath/quantcalc/pkg/formulas"
)

// minTrackingPoints is the practical floor for a meaningful tracking-error
// estimate; the kernel itself only needs 2.
const minTrackingPoints = 3

// Service computes descriptive statistics over return and value series.
type Service struct {
	maxPoints int
	log       zerolog.Logger
}

// NewService creates a new series statistics service. maxPoints bounds the
// accepted series length.
func NewService(maxPoints int, log zerolog.Logger) *Service {
	return &Service{
		maxPoints: maxPoints,
		log:       log.With().Str("component", "seriesstats").Logger(),
	}
}

// Drawdown analyzes the worst peak-to-trough decline of a value path.
// Returns nil for series that are too short or contain non-positive values.
func (s *Service) Drawdown(values []float64) *DrawdownResult {
	if len(values) > s.maxPoints {
		return nil
	}

	dd := formulas.MaximumDrawdown(values)
	if dd == nil {
		return nil
	}

	result := &DrawdownResult{DrawdownResult: *dd}
	if table, ok := classification.Table("drawdown_severity"); ok {
		result.Severity = bands.Classify(dd.MaxDrawdown, table)
	}
	return result
}

// Tracking computes tracking difference and tracking error between a fund and
// its benchmark. Text series are parsed with the percent heuristic; typed
// series are taken as fractions. Errors describe caller mistakes (bad tokens,
// mismatched lengths, too few points); the caller renders no statistic.
func (s *Service) Tracking(req TrackingRequest) (*formulas.TrackingStats, error) {
	ppy, ok := PeriodsPerYear(req.Frequency)
	if !ok {
		return nil, fmt.Errorf("unknown frequency %q", req.Frequency)
	}

	fund, err := s.resolveSeries(req.Fund, req.FundText, "fund")
	if err != nil {
		return nil, err
	}
	benchmark, err := s.resolveSeries(req.Benchmark, req.BenchmarkText, "benchmark")
	if err != nil {
		return nil, err
	}

	if len(fund) != len(benchmark) {
		return nil, fmt.Errorf("fund has %d points, benchmark has %d; lengths must match", len(fund), len(benchmark))
	}
	if len(fund) < minTrackingPoints {
		return nil, fmt.Errorf("at least %d points are required, got %d", minTrackingPoints, len(fund))
	}
	if len(fund) > s.maxPoints {
		return nil, fmt.Errorf("series exceeds the %d point limit", s.maxPoints)
	}

	stats := formulas.TrackingStatistics(fund, benchmark, ppy)
	if stats == nil {
		return nil, fmt.Errorf("tracking statistics not computable")
	}

	return stats, nil
}

// WeightedReturn computes the weight-scaled portfolio return over the rows
// that carry both a weight and a return. Returns nil when no row qualifies.
func (s *Service) WeightedReturn(req WeightedRequest) *formulas.WeightedReturnResult {
	items := make([]formulas.WeightedItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Weight == nil || item.ReturnPct == nil {
			continue
		}
		items = append(items, formulas.WeightedItem{Weight: *item.Weight, Return: *item.ReturnPct})
	}

	if len(items) < len(req.Items) {
		s.log.Debug().
			Int("submitted", len(req.Items)).
			Int("usable", len(items)).
			Msg("Dropped incomplete allocation rows")
	}

	return formulas.WeightedAverageReturn(items)
}

// Volatility computes annualized volatility from a value path and grades it.
func (s *Service) Volatility(req VolatilityRequest) *VolatilityResult {
	ppy, ok := PeriodsPerYear(req.Frequency)
	if !ok || len(req.Values) > s.maxPoints {
		return nil
	}

	vol := formulas.VolatilityFromValues(req.Values, ppy)
	if vol == nil {
		return nil
	}

	result := &VolatilityResult{
		AnnualizedVolatility: *vol,
		Periods:              len(req.Values) - 1,
	}
	if table, ok := classification.Table("risk_level"); ok {
		result.RiskLevel = bands.Classify(*vol, table)
	}
	return result
}

func (s *Service) resolveSeries(typed []float64, text, name string) ([]float64, error) {
	if len(typed) > 0 {
		return typed, nil
	}
	if text == "" {
		return nil, fmt.Errorf("%s series is required", name)
	}

	parsed, err := ParseReturnSeries(text)
	if err != nil {
		return nil, fmt.Errorf("%s series: %w", name, err)
	}
	return parsed, nil
}
