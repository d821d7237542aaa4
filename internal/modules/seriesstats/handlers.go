package seriesstats

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles series statistics HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new series statistics handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "seriesstats").Logger(),
	}
}

// RegisterRoutes mounts the module routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/drawdown", h.HandleDrawdown)
	r.Post("/tracking", h.HandleTracking)
	r.Post("/weighted-return", h.HandleWeightedReturn)
	r.Post("/volatility", h.HandleVolatility)
}

// HandleDrawdown handles POST /drawdown - maximum drawdown of a value path
func (h *Handler) HandleDrawdown(w http.ResponseWriter, r *http.Request) {
	var req DrawdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	values := req.Values
	if len(values) == 0 && req.ValuesText != "" {
		parsed, err := ParseValueSeries(req.ValuesText)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		values = parsed
	}

	if len(values) < 2 {
		http.Error(w, "values requires at least 2 points", http.StatusBadRequest)
		return
	}

	writeResult(w, h.service.Drawdown(values))
}

// HandleTracking handles POST /tracking - tracking difference and error
func (h *Handler) HandleTracking(w http.ResponseWriter, r *http.Request) {
	var req TrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	stats, err := h.service.Tracking(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeResult(w, stats)
}

// HandleWeightedReturn handles POST /weighted-return
func (h *Handler) HandleWeightedReturn(w http.ResponseWriter, r *http.Request) {
	var req WeightedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	writeResult(w, h.service.WeightedReturn(req))
}

// HandleVolatility handles POST /volatility - annualized volatility
func (h *Handler) HandleVolatility(w http.ResponseWriter, r *http.Request) {
	var req VolatilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if len(req.Values) < 3 {
		http.Error(w, "values requires at least 3 points", http.StatusBadRequest)
		return
	}

	writeResult(w, h.service.Volatility(req))
}

// writeResult encodes an engine result; nil means "no result" and is a valid
// outcome, not an error.
func writeResult(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"result": result})
}
