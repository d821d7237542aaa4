package classification

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/aristath/quantcalc/pkg/bands"
)

// Handler handles classification HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new classification handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "classification").Logger(),
	}
}

// RegisterRoutes mounts the module routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/tables", h.HandleTables)
	r.Post("/classify", h.HandleClassify)
}

// HandleTables handles GET /tables - list built-in band tables
func (h *Handler) HandleTables(w http.ResponseWriter, r *http.Request) {
	out := make(map[string]bands.Table, len(TableNames()))
	for _, name := range TableNames() {
		table, _ := Table(name)
		out[name] = table
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// HandleClassify handles POST /classify - grade a value against a table
func (h *Handler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Classify(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"result": result})
}
