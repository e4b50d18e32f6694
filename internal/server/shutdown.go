package server

import (
	"context"
	"time"
)

const shutdownTimeout = 10 * time.Second

// shutdown stops accepting requests, waits for in-flight ones and then
// shuts the modules down.
func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.E.Shutdown(ctx)
	s.shutdownModules(ctx)
	return err
}
