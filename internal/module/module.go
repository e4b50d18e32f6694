package module

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/techhub/internal/registry"
)

// Module is a self-contained feature of the site.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register publishes the module's services in the registry. All modules
	// register before any module boots.
	Register(reg *registry.Registry) error

	// Boot mounts routes and starts background work. ctx is cancelled when
	// the server shuts down.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown releases resources during graceful shutdown.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op implementations for modules to embed.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error { return nil }
