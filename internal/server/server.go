// Package server is the wiring layer: it builds the services and handlers
// over a store, registers the routes and middleware, and runs the HTTP
// server until its context is cancelled.
//
// This is the composition root. Every dependency is assembled in New, so
// handlers never reach for globals and tests can build a Server over an
// in-memory store.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sakif/packlist/internal/config"
	"github.com/sakif/packlist/internal/handler"
	"github.com/sakif/packlist/internal/middleware"
	"github.com/sakif/packlist/internal/repository"
	"github.com/sakif/packlist/internal/service"
)

// Server owns the router. The store is owned by the caller, which closes it
// after Start returns.
type Server struct {
	router *chi.Mux
	config config.ServerConfig
	logger *slog.Logger
	store  repository.Store
}

func New(cfg config.ServerConfig, store repository.Store, logger *slog.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		store:  store,
	}
	s.setupRoutes()
	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes installs middleware and routes.
//
// Middleware order matters:
//  1. RequestID: assigns the id the logger reads
//  2. RealIP: rewrites RemoteAddr from X-Forwarded-For
//  3. Logger: one line per request
//  4. Recoverer: turns panics into 500s
//  5. CORS: answers preflight requests before routing
func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	lists := handler.NewPackingListHandler(service.NewPackingListService(s.store, s.logger), s.logger)
	items := handler.NewGearItemHandler(service.NewGearItemService(s.store, s.logger), s.logger)
	alts := handler.NewAlternateProductHandler(service.NewAlternateProductService(s.store, s.logger), s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", handler.HandleHealth)

		r.Route("/packing-lists", func(r chi.Router) {
			r.Get("/", lists.HandleList)
			r.Post("/", lists.HandleCreate)
			r.Get("/{id}", lists.HandleGet)
			r.Patch("/{id}", lists.HandleUpdate)
			r.Delete("/{id}", lists.HandleDelete)
			r.Get("/{id}/summary", lists.HandleSummary)
		})

		r.Route("/gear-items", func(r chi.Router) {
			r.Post("/", items.HandleCreate)
			r.Patch("/{id}", items.HandleUpdate)
			r.Delete("/{id}", items.HandleDelete)
		})

		r.Route("/alternate-products", func(r chi.Router) {
			r.Post("/", alts.HandleCreate)
			r.Patch("/{id}", alts.HandleUpdate)
			r.Delete("/{id}", alts.HandleDelete)
		})
	})
}

// Start serves HTTP until ctx is cancelled, then drains in-flight requests
// for up to the configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case <-ctx.Done():
		s.logger.Info("shutdown requested")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
		return nil
	}
}
