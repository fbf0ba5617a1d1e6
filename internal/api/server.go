// Package api serves the dashboard statistics and charts over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faithboard/faithboard/internal/contract"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "faithboard"

// Request limits per client IP.
const (
	DefaultRate  rate.Limit = 10
	DefaultBurst            = 20
)

const shutdownTimeout = 5 * time.Second

// Server answers dashboard requests from a StatsProvider.
type Server struct {
	provider contract.StatsProvider
	cfg      *contract.Config
	logger   *log.Logger
	metrics  *metrics
	limiter  *IPRateLimiter
	router   chi.Router
}

// NewServer builds the router. A nil logger uses the default logger.
func NewServer(provider contract.StatsProvider, cfg *contract.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		provider: provider,
		cfg:      cfg,
		logger:   logger,
		metrics:  newMetrics(),
		limiter:  NewIPRateLimiter(DefaultRate, DefaultBurst),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.instrument)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", s.metrics.handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(rateLimit(s.limiter))

		r.Get("/bible", s.handleBible)
		r.Get("/today", s.handleAnkiToday)
		r.Get("/daily", s.handleAnkiDaily)
		r.Get("/weekly", s.handleAnkiWeekly)
		r.Get("/refs", s.handleReferences)

		r.Route("/faith", func(r chi.Router) {
			r.Get("/today", s.handleFaithToday)
			r.Get("/daily", s.handleFaithDaily)
			r.Get("/weekly", s.handleFaithWeekly)
		})

		r.Get("/places", s.handlePlaces)
		r.Get("/church", s.handleChurch)

		// {name} also matches "<name>.png".
		r.Get("/charts/{name}", s.handleChart)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no route for %s", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed", r.Method))
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		s.logger.Info("Server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	}
}
