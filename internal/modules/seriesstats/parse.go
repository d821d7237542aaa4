package seriesstats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// percentMagnitudeCutoff drives the unit heuristic for pasted return series:
// a token whose absolute value exceeds it is assumed to be expressed in
// percent and divided by 100. The heuristic is not exact; a genuine
// fractional return above 200% would be misread. Tokens carrying an explicit
// "%" suffix skip the heuristic and are always scaled.
const percentMagnitudeCutoff = 2.0

// ParseReturnSeries converts pasted text into fractional returns. Tokens may
// be separated by commas, semicolons or any whitespace. A single non-numeric
// token invalidates the whole series; there are no partial results.
func ParseReturnSeries(text string) ([]float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("series is empty")
	}

	out := make([]float64, 0, len(fields))
	for _, field := range fields {
		explicitPercent := strings.HasSuffix(field, "%")
		token := strings.TrimSuffix(field, "%")

		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid numeric token %q", field)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("non-finite value %q", field)
		}

		if explicitPercent || math.Abs(v) > percentMagnitudeCutoff {
			v /= 100
		}
		out = append(out, v)
	}

	return out, nil
}

// ParseValueSeries converts pasted text into a portfolio value path. Values
// are taken as-is (no unit heuristic), must be positive and finite.
func ParseValueSeries(text string) ([]float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("series is empty")
	}

	out := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid numeric token %q", field)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return nil, fmt.Errorf("portfolio values must be positive, got %q", field)
		}
		out = append(out, v)
	}

	return out, nil
}
