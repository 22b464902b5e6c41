// Package api exposes the toolkit over HTTP: scrape job submission,
// stored lead results and exports, cost estimation, and report parsing.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bwalden3/leadkit/internal/config"
	"github.com/bwalden3/leadkit/internal/export"
	"github.com/bwalden3/leadkit/internal/pipeline"
	"github.com/bwalden3/leadkit/internal/pricing"
	"github.com/bwalden3/leadkit/internal/store"
)

// Server is the HTTP API server for leadkit.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	store        *store.Store
	sheets       *export.SheetsClient
	rates        pricing.Rates
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server. The sheets client
// may be nil when no gateway is configured.
func NewServer(orch *pipeline.Orchestrator, st *store.Store, sheets *export.SheetsClient, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		store:        st,
		sheets:       sheets,
		rates: pricing.Rates{
			LinkedInCUPerProfile:  cfg.LinkedInCURate,
			InstagramCUPerProfile: cfg.InstagramCURate,
		},
		log: log,
		cfg: cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))
	r.Use(CORS(s.cfg.AllowedOrigins))

	// Public endpoints.
	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/scrape", s.handleScrape)
		r.Get("/api/scrape/{jobID}/status", s.handleScrapeStatus)
		r.Get("/api/stats/scrape", s.handleScrapeStats)

		r.Get("/api/results", s.handleResults)
		r.Post("/api/export/csv", s.handleExportCSV)
		r.Post("/api/export/sheets", s.handleExportSheets)

		r.Post("/api/costs/estimate", s.handleCostEstimate)
		r.Get("/api/costs/analysis", s.handleCostAnalysis)
		r.Post("/api/reports/parse", s.handleReportParse)
	})

	s.router = r
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"message":"Outreach Scraping Toolkit API"}`))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
