package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aristath/quantcalc/internal/config"
	"github.com/aristath/quantcalc/internal/modules/amortization"
	"github.com/aristath/quantcalc/internal/modules/annuity"
	"github.com/aristath/quantcalc/internal/modules/classification"
	"github.com/aristath/quantcalc/internal/modules/scenarios"
	"github.com/aristath/quantcalc/internal/modules/seriesstats"
)

// Config holds server configuration
type Config struct {
	Port    int
	Log     zerolog.Logger
	Config  *config.Config
	DevMode bool
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	cfg    *config.Config

	amortization   *amortization.Handler
	annuity        *annuity.Handler
	scenarios      *scenarios.Handler
	seriesstats    *seriesstats.Handler
	classification *classification.Handler
}

// New creates a new HTTP server with every calculation module wired in
func New(cfg Config) *Server {
	log := cfg.Log

	s := &Server{
		router: chi.NewRouter(),
		log:    log.With().Str("component", "server").Logger(),
		cfg:    cfg.Config,

		amortization:   amortization.NewHandler(amortization.NewService(log), log),
		annuity:        annuity.NewHandler(annuity.NewService(log), log),
		scenarios:      scenarios.NewHandler(scenarios.NewService(log), log),
		seriesstats:    seriesstats.NewHandler(seriesstats.NewService(cfg.Config.MaxSeriesPoints, log), log),
		classification: classification.NewHandler(classification.NewService(log), log),
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(30 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.handleSystemStatus)
		})

		r.Route("/amortization", s.amortization.RegisterRoutes)
		r.Route("/annuity", s.annuity.RegisterRoutes)
		r.Route("/scenarios", s.scenarios.RegisterRoutes)
		r.Route("/series", s.seriesstats.RegisterRoutes)
		r.Route("/classification", s.classification.RegisterRoutes)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
