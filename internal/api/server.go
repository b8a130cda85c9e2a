package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Horopapera/Mind-Map-generator/internal/config"
	"github.com/Horopapera/Mind-Map-generator/internal/session"
)

// Server is the HTTP API for the mind-map service.
type Server struct {
	router   chi.Router
	sessions *session.Store
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(sessions *session.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		sessions: sessions,
		log:      log,
		cfg:      cfg,
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
	r.Use(Metrics)

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	// API endpoints, authenticated when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Route("/api/maps", func(r chi.Router) {
			r.Post("/", s.handleCreateMap)
			r.Post("/import", s.handleImportMap)
			r.Get("/", s.handleListMaps)

			r.Route("/{mapID}", func(r chi.Router) {
				r.Get("/", s.handleGetMap)
				r.Put("/", s.handleReplaceMap)
				r.Delete("/", s.handleDeleteMap)

				r.Post("/nodes/{nodeID}/toggle", s.handleToggleNode)
				r.Post("/expand", s.handleExpandAll)
				r.Post("/collapse", s.handleCollapseAll)

				r.Get("/flat", s.handleFlatten)
				r.Get("/search", s.handleSearch)
				r.Get("/layout/{kind}", s.handleLayout)
				r.Get("/export/{format}", s.handleExport)
			})
		})
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
