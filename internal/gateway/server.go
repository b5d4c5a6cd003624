package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
)

const defaultShutdownTimeout = 20 * time.Second

// Server represents the HTTP server
type Server struct {
	httpServer      *http.Server
	port            string
	shutdownTimeout time.Duration
}

// NewServer creates a new HTTP server. A non-positive shutdownTimeout uses
// the default of 20 seconds.
func NewServer(port string, handler http.Handler, shutdownTimeout time.Duration) *Server {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		port:            port,
		shutdownTimeout: shutdownTimeout,
	}
}

// OnShutdown registers fn to run when shutdown begins, e.g. to close
// hijacked websocket connections.
func (s *Server) OnShutdown(fn func()) {
	s.httpServer.RegisterOnShutdown(fn)
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled. In-flight requests get shutdownTimeout
// to complete.
func (s *Server) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		logging.Info().Str("port", s.port).Msg("server starting")
		serverErrors <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logging.Info().Dur("timeout", s.shutdownTimeout).Msg("server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			_ = s.httpServer.Close()
			return fmt.Errorf("could not gracefully shutdown server: %w", err)
		}
		if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

		logging.Info().Msg("server stopped gracefully")
	}

	return nil
}
