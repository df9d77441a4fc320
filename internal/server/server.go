// Package server exposes the query engine over a read-only JSON HTTP API.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sells-group/litigation-cli/internal/model"
)

// TableSource returns the canonical table for a data path. *loader.Cache
// implements it.
type TableSource interface {
	Get(ctx context.Context, path string) (*model.Table, error)
}

// Options configures the API server.
type Options struct {
	DataPath       string
	CORSOrigins    []string
	RateLimitRPS   float64 // 0 disables rate limiting
	RateLimitBurst int
}

// Server serves the overview, explorer, detail, and choices endpoints. It
// holds no per-request state; each request reads the shared table.
type Server struct {
	src    TableSource
	opts   Options
	router chi.Router
}

// New builds a server and its routes.
func New(src TableSource, opts Options) *Server {
	s := &Server{src: src, opts: opts}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		if s.opts.RateLimitRPS > 0 {
			r.Use(rateLimit(s.opts.RateLimitRPS, s.opts.RateLimitBurst))
		}
		r.Get("/overview", s.handleOverview)
		r.Get("/cases", s.handleCases)
		r.Get("/cases/{index}", s.handleCase)
		r.Get("/choices", s.handleChoices)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
