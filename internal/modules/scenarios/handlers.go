package scenarios

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles scenario valuation HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new scenarios handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "scenarios").Logger(),
	}
}

// RegisterRoutes mounts the module routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/npv", h.HandleNPV)
	r.Post("/run", h.HandleRun)
}

// HandleNPV handles POST /npv - single cash-flow valuation
func (h *Handler) HandleNPV(w http.ResponseWriter, r *http.Request) {
	var req NPVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if req.InitialInvestment == nil || req.DiscountRatePct == nil ||
		req.ProjectYears == nil || req.AnnualCashFlow == nil {
		http.Error(w, "initial_investment, discount_rate_pct, project_years and annual_cash_flow are required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"result": h.service.NPV(req)})
}

// HandleRun handles POST /run - multi-scenario comparison
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if req.InitialInvestment == nil || req.DiscountRatePct == nil || req.ProjectYears == nil {
		http.Error(w, "initial_investment, discount_rate_pct and project_years are required", http.StatusBadRequest)
		return
	}
	if len(req.Scenarios) == 0 {
		http.Error(w, "at least one scenario is required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"result": h.service.Run(req)})
}
