package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Start runs the HTTP server until ctx is canceled, then shuts it down
// gracefully within the configured timeout.
func (s *Server) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := s.tracker.Start(runCtx, s.bus); err != nil {
		return fmt.Errorf("failed to start activity tracker: %w", err)
	}
	go s.store.RunJanitor(runCtx, s.Cfg.SweepInterval)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", s.Cfg.Addr)
		if err := s.E.Start(s.Cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("shutting down the server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.Cfg.ShutdownTimeout)
	defer shutdownCancel()

	slog.Info("Shutting down server")
	if err := s.E.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
