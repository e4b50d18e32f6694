package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/techhub/web"
)

// RegisterRoutes mounts the routes owned by the server itself. Feature
// routes are mounted by their modules.
func (s *Server) RegisterRoutes() {
	if dir := s.Cfg.GetStaticDir(); dir != "" {
		slog.Info("Serving static files from disk", "dir", dir)
		s.E.StaticFS("/static", os.DirFS(dir))
	} else {
		s.E.StaticFS("/static", web.Static())
	}

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
