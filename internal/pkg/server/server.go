package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trailyn/transport/internal/pkg/logger"
)

// Echo's own Shutdown deadline. Long enough for an in-flight stop commit
// with its retry backoff to finish.
const shutdownTimeout = 30 * time.Second

// GracefulServer runs an Echo instance until SIGINT or SIGTERM, then drains
// in-flight requests before returning.
type GracefulServer struct {
	echo   *echo.Echo
	logger *logger.ZapLogger
	port   int
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int) *GracefulServer {
	return &GracefulServer{
		echo:   e,
		logger: zapLogger,
		port:   port,
	}
}

// Start serves until an interrupt or SIGTERM arrives, then drains and
// returns. The caller shuts down its own components afterwards.
func (s *GracefulServer) Start() error {
	errc := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errc:
		s.logger.Error("HTTP server failed", logger.Err(err))
		return err
	case sig := <-quit:
		s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))
	}

	return s.Shutdown()
}

// Shutdown drains in-flight requests, forcing the close after the drain
// deadline passes.
func (s *GracefulServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

// ShutdownManager collects the cleanup hooks for backing clients. Hooks run
// in registration order after the HTTP server has drained; a failing hook is
// logged and the rest still run.
type ShutdownManager struct {
	logger *logger.ZapLogger
	hooks  []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup hook
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	sm.hooks = append(sm.hooks, fn)
}

// Shutdown runs every registered hook
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(sm.hooks)))

	for i, fn := range sm.hooks {
		if err := fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.Int("component", i),
				logger.Err(err))
		}
	}

	sm.logger.Info("All components shutdown completed")
	return nil
}
