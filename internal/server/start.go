package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
)

// Start boots the modules and serves HTTP until ctx is cancelled, then shuts
// down gracefully. Background work started by modules stops with ctx.
func (s *Server) Start(ctx context.Context) error {
	if err := s.bootModules(ctx); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", s.Cfg.GetAddr(), "base_url", s.Cfg.GetBaseURL())
		if err := s.E.Start(s.Cfg.GetAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	return s.shutdown()
}
