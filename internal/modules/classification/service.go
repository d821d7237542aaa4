package classification

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/quantcalc/pkg/bands"
)

// ClassifyRequest grades a value against a named built-in table or an inline
// caller-supplied one. Exactly one of Table / Bands should be set.
type ClassifyRequest struct {
	Value *float64    `json:"value"`
	Table string      `json:"table,omitempty"`
	Bands bands.Table `json:"bands,omitempty"`
}

// Service resolves band tables and classifies values against them.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new classification service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("component", "classification").Logger(),
	}
}

// Classify grades the request's value. Inline tables are validated before
// use; built-in tables are trusted.
func (s *Service) Classify(req ClassifyRequest) (*bands.Result, error) {
	if req.Value == nil {
		return nil, fmt.Errorf("value is required")
	}

	table := req.Bands
	if len(table) == 0 {
		named, ok := Table(req.Table)
		if !ok {
			return nil, fmt.Errorf("unknown table %q", req.Table)
		}
		table = named
	} else if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid band table: %w", err)
	}

	return bands.Classify(*req.Value, table), nil
}
