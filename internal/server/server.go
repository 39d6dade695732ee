// Package server provides the HTTP server and routing for the site.
package server

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aristath/approuter/internal/config"
	"github.com/aristath/approuter/internal/modules/pages"
	pageshandlers "github.com/aristath/approuter/internal/modules/pages/handlers"
)

// Config holds server configuration
type Config struct {
	Log       zerolog.Logger
	Config    *config.Config
	Templates fs.FS        // Template root holding layout.html and the page templates
	Pages     []pages.Page // Defaults to pages.All()
}

// Server represents the HTTP server
type Server struct {
	router  *chi.Mux
	server  *http.Server
	log     zerolog.Logger
	cfg     *config.Config
	pages   []pages.Page
	started time.Time
}

// New creates a new HTTP server. It fails when a page links to an
// unregistered route or its templates cannot be parsed.
func New(cfg Config) (*Server, error) {
	all := cfg.Pages
	if all == nil {
		all = pages.All()
	}

	if err := pages.Validate(all); err != nil {
		return nil, fmt.Errorf("invalid page set: %w", err)
	}

	renderer, err := pages.NewRenderer(cfg.Templates, all)
	if err != nil {
		return nil, fmt.Errorf("failed to load page templates: %w", err)
	}

	s := &Server{
		router:  chi.NewRouter(),
		log:     cfg.Log.With().Str("component", "server").Logger(),
		cfg:     cfg.Config,
		pages:   all,
		started: time.Now(),
	}

	s.setupMiddleware(cfg.Config.DevMode)
	s.setupRoutes(pageshandlers.NewHandler(renderer, all, s.log))

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// HEAD requests are answered by the GET routes
	s.router.Use(middleware.GetHead)

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(pageHandler *pageshandlers.Handler) {
	s.router.Get("/health", s.handleHealth)
	pageHandler.RegisterRoutes(s.router)
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Int("pages", len(s.pages)).Msg("Starting HTTP server")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
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
