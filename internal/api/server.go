package api

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/dgallion1/resumeparser/internal/config"
	"github.com/dgallion1/resumeparser/internal/resume"
	"github.com/dgallion1/resumeparser/internal/stats"
	"github.com/dgallion1/resumeparser/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Server is the HTTP front end for interactive resume parsing.
type Server struct {
	router  chi.Router
	parser  *resume.Parser
	records *store.RecordStore
	stats   *stats.ParseStats
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(p *resume.Parser, records *store.RecordStore, st *stats.ParseStats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		parser:  p,
		records: records,
		stats:   st,
		log:     log,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start runs the expired-record sweeper until ctx is done.
func (s *Server) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.cfg.CleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.records.Cleanup(); n > 0 {
					s.log.Debug("evicted expired records", "count", n)
				}
			}
		}
	}()
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	// Browser UI.
	r.Get("/", s.handleIndex)
	r.Post("/upload", s.handleUpload)

	// JSON API.
	r.Post("/api/parse", s.handleParse)
	r.Get("/api/records/{id}", s.handleGetRecord)
	r.Get("/api/records/{id}/export.json", s.handleExportJSON)
	r.Get("/api/records/{id}/export.csv", s.handleExportCSV)
	r.Get("/api/stats", s.handleStats)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
