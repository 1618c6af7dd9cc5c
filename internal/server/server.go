package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/zkmedar/ctcaematch/internal/config"
	"github.com/zkmedar/ctcaematch/internal/ctcae"
	"github.com/zkmedar/ctcaematch/internal/history"
	"github.com/zkmedar/ctcaematch/internal/matcher"
)

// Server exposes the matching pipeline and term repository over HTTP.
type Server struct {
	cfg        config.ServerConfig
	matcher    *matcher.Matcher
	repo       *ctcae.Repository
	history    *history.Store
	router     chi.Router
	httpServer *http.Server
}

// New creates a Server with all dependencies. history may be nil to disable
// request recording.
func New(cfg config.ServerConfig, m *matcher.Matcher, repo *ctcae.Repository, hist *history.Store) *Server {
	s := &Server{
		cfg:     cfg,
		matcher: m,
		repo:    repo,
		history: hist,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/api/match", s.handleMatch)

	r.Route("/api/terms", func(r chi.Router) {
		r.Get("/", s.handleSearchTerms)
		r.Get("/{name}", s.handleGetTerm)
	})
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", s.handleListCategories)
		r.Get("/{soc}/terms", s.handleTermsByCategory)
	})

	if s.history != nil {
		history.RegisterRoutes(r, s.history)
	}

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("ctcaematch server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
