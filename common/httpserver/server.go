// Package httpserver runs a mock server's handler behind the shared middleware
// chain and stops it on context cancellation or a request to /STOP.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/telhawk-systems/sdk-mockservers/common/config"
	"github.com/telhawk-systems/sdk-mockservers/common/logging"
	"github.com/telhawk-systems/sdk-mockservers/common/middleware"
)

// StopPath is the endpoint that shuts a mock server down.
const StopPath = "/STOP"

const defaultShutdownTimeout = 10 * time.Second

// Server is an http.Server with a stop trigger.
type Server struct {
	srv             *http.Server
	logger          *logging.Logger
	shutdownTimeout time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

// New wires handler behind the shared middleware chain.
func New(cfg config.ServerConfig, handler http.Handler, logger *logging.Logger) (*Server, error) {
	addr, err := cfg.Addr()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Default()
	}

	s := &Server{
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
		stop:            make(chan struct{}),
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = defaultShutdownTimeout
	}

	h := s.stopHandler(handler)
	h = AccessLog(logger)(h)
	if len(cfg.CORSOrigins) > 0 {
		h = middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSOrigins))(h)
	}
	h = middleware.RequestID(h)

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s, nil
}

// Addr is the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Handler returns the fully wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Stop asks Run/Serve to shut down. Safe to call more than once.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// Stopped is closed once Stop has been called.
func (s *Server) Stopped() <-chan struct{} {
	return s.stop
}

// Run listens on the configured address and serves until ctx is done or Stop
// is called, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		err := s.srv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down server", "reason", "context done")
	case <-s.stop:
		s.logger.Info("Shutting down server", "reason", "stop requested")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if err := <-errCh; err != nil {
		return err
	}

	s.logger.Info("Server stopped")
	return nil
}

// stopHandler answers /STOP with 200 and triggers shutdown once the response
// has been written. Every other path goes to next.
func (s *Server) stopHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != StopPath {
			next.ServeHTTP(w, r)
			return
		}

		w.WriteHeader(http.StatusOK)
		s.logger.InfoContext(r.Context(), "HTTP server stopping!")
		s.Stop()
	})
}
