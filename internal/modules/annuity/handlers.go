package annuity

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles annuity HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new annuity handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "annuity").Logger(),
	}
}

// RegisterRoutes mounts the module routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/payment", h.HandlePayment)
}

// HandlePayment handles POST /payment - solve payment for a target value
func (h *Handler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if req.TargetValue == nil || req.AnnualRatePct == nil || req.Years == nil {
		http.Error(w, "target_value, annual_rate_pct and years are required", http.StatusBadRequest)
		return
	}
	if req.TargetType != TargetPresentValue && req.TargetType != TargetFutureValue {
		http.Error(w, "target_type must be \"present\" or \"future\"", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"result": h.service.Payment(req)})
}
