// Package server exposes the packer over HTTP: a health check for
// supervisors and a POST endpoint that packs a request body.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
)

const (
	shutdownTimeout = 5 * time.Second
	maxBodyBytes    = 1 << 20
)

// Packer is the part of packer.Packer the server needs.
type Packer interface {
	PackReader(ctx context.Context, r io.Reader) (string, error)
}

// Server serves the HTTP routes.
type Server struct {
	logger *slog.Logger
	packer Packer
}

// New creates a server.
func New(logger *slog.Logger, p Packer) *Server {
	return &Server{logger: logger.With("component", "http_server"), packer: p}
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	router := httprouter.New()
	router.GET("/health", s.healthHandler)
	router.POST("/pack", s.packHandler)
	return s.requestLogging(router)
}

// Serve accepts connections on l until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("🩺 HTTP server starting", "address", l.Addr().String())
		errCh <- httpServer.Serve(l)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	// ctx is already done, so shutdown gets a fresh deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("🩺 Shutting down HTTP server...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown failed", "error", err)
		return err
	}
	s.logger.Debug("HTTP server shut down gracefully.")
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}
