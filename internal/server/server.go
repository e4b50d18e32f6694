package server

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/techhub/internal/app"
	"github.com/nfrund/techhub/internal/config"
	"github.com/nfrund/techhub/internal/handlers"
	"github.com/nfrund/techhub/internal/middleware"
	"github.com/nfrund/techhub/internal/module"
	"github.com/nfrund/techhub/internal/registry"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	registry *registry.Registry
	modules  []module.Module
}

// New creates a server with the core middleware stack and the given
// dependencies published in its registry. Routes are mounted by
// RegisterRoutes and the modules boot in Start.
func New(cfg config.Provider, deps app.Dependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.Renderer = deps.Renderer

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger := middleware.FromContext(c.Request().Context())
			if v.Error != nil {
				logger.Warn("Request failed", "uri", v.URI, "status", v.Status, "latency", v.Latency, "error", v.Error)
				return nil
			}
			logger.Debug("Request", "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(echomw.Recover())

	setupErrorHandling(e)

	reg := registry.New(cfg)
	deps.Publish(reg)

	slog.Debug("Server created", "addr", cfg.GetAddr())

	return &Server{
		E:        e,
		Cfg:      cfg,
		registry: reg,
		modules:  app.NewModules(),
	}
}

// Registry exposes the service registry, useful for testing.
func (s *Server) Registry() *registry.Registry {
	return s.registry
}
