package amortization

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles amortization HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new amortization handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "amortization").Logger(),
	}
}

// RegisterRoutes mounts the module routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/payment", h.HandlePayment)
	r.Post("/schedule", h.HandleSchedule)
	r.Post("/adjustable", h.HandleAdjustable)
}

// HandlePayment handles POST /payment - fixed-rate payment calculation
func (h *Handler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if req.Principal == nil || req.AnnualRatePct == nil || req.TermYears == nil {
		http.Error(w, "principal, annual_rate_pct and term_years are required", http.StatusBadRequest)
		return
	}

	writeResult(w, h.service.Payment(req))
}

// HandleSchedule handles POST /schedule - full amortization table
func (h *Handler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if req.Principal == nil || req.AnnualRatePct == nil || req.TermYears == nil {
		http.Error(w, "principal, annual_rate_pct and term_years are required", http.StatusBadRequest)
		return
	}

	writeResult(w, h.service.Schedule(req))
}

// HandleAdjustable handles POST /adjustable - adjustable-rate comparison
func (h *Handler) HandleAdjustable(w http.ResponseWriter, r *http.Request) {
	var req AdjustableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if req.Principal == nil || req.InitialRatePct == nil || req.RateCapPct == nil || req.TermYears == nil {
		http.Error(w, "principal, initial_rate_pct, rate_cap_pct and term_years are required", http.StatusBadRequest)
		return
	}

	writeResult(w, h.service.Adjustable(req))
}

// writeResult encodes an engine result. A nil engine result is a valid
// outcome ("no result", the caller renders nothing), not an error.
func writeResult(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"result": result})
}
