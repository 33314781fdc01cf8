// Package httpapi exposes the profile operations over HTTP: the welcome and
// health endpoints, the authenticated profile routes, and the middleware
// chain around them.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/profilekeeper/internal/logging"
	"github.com/dmitrijs2005/profilekeeper/internal/secrets"
	"github.com/dmitrijs2005/profilekeeper/internal/server/config"
	"github.com/dmitrijs2005/profilekeeper/internal/server/profiles"
)

type Server struct {
	config     *config.Config
	logger     logging.Logger
	profiles   *profiles.Service
	secrets    *secrets.Cache
	httpServer *http.Server
}

func NewServer(cfg *config.Config, logger logging.Logger, profileService *profiles.Service, secretCache *secrets.Cache) *Server {
	s := &Server{
		config:   cfg,
		logger:   logger,
		profiles: profileService,
		secrets:  secretCache,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.setupRoutes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints, no auth.
	mux.HandleFunc("GET /{$}", s.handleWelcome)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Profile endpoints behind the auth gate.
	mux.HandleFunc("GET /profiles/{userId}",
		s.withMiddleware("/profiles/{userId}", s.requireAuth(s.handleGetProfile)))
	mux.HandleFunc("POST /profiles/{userId}",
		s.withMiddleware("/profiles/{userId}", s.requireAuth(s.handleUpsertProfile)))

	return mux
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info(ctx, "starting http server", "addr", s.httpServer.Addr)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.shutdown()
	case err := <-errChan:
		return err
	}
}

func (s *Server) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.logger.Info(shutdownCtx, "shutting down http server")
	return s.httpServer.Shutdown(shutdownCtx)
}
