// Package api exposes the projection engine over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/wealthcoach/wealthcoach/internal/calculation"
	"github.com/wealthcoach/wealthcoach/internal/config"
)

// maxBodyBytes caps request bodies; a plan file is a few kilobytes at most.
const maxBodyBytes = 1 << 20

// Server is the HTTP API server.
type Server struct {
	engine  *calculation.ProjectionEngine
	parser  *config.InputParser
	log     *logrus.Logger
	router  *mux.Router
	version string
}

// NewServer creates a server with all routes and middleware.
func NewServer(engine *calculation.ProjectionEngine, log *logrus.Logger, version string) *Server {
	s := &Server{
		engine:  engine,
		parser:  config.NewInputParser(),
		log:     log,
		version: version,
	}
	s.router = s.buildRouter()
	return s
}

// Router returns the HTTP handler, for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) buildRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestIDMiddleware, s.loggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/projections", s.handleProjection).Methods(http.MethodPost)
	v1.HandleFunc("/projections/batch", s.handleBatch).Methods(http.MethodPost)
	v1.HandleFunc("/required-monthly", s.handleRequiredMonthly).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not found")
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.ServerSettings) error {
	httpSrv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("Starting server on %s", cfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server failed: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
