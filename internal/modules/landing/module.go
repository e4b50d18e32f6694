// Package landing is the TechHub landing page: the document at "/" and the
// actions that drive each open page's theme and navigation state.
package landing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/techhub/internal/content"
	"github.com/nfrund/techhub/internal/handlers"
	"github.com/nfrund/techhub/internal/middleware"
	"github.com/nfrund/techhub/internal/module"
	"github.com/nfrund/techhub/internal/pagestate"
	"github.com/nfrund/techhub/internal/registry"
	"github.com/nfrund/techhub/internal/rendering"
	"github.com/nfrund/techhub/internal/view/sections"
)

// KeyPageStore is the type-safe key for the store of open pages.
var KeyPageStore = registry.Key[*pagestate.Store]("landing.PageStore")

// Module implements module.Module for the landing page. The renderer and
// content source are resolved from the registry in Boot.
type Module struct {
	module.BaseModule
	renderer rendering.Renderer
	content  *content.Source
	pages    *pagestate.Store
}

// New creates a new instance of the module.
func New() *Module {
	return &Module{}
}

// Name returns the module's unique identifier.
func (m *Module) Name() string {
	return "landing"
}

// Register creates the page store and publishes it.
func (m *Module) Register(reg *registry.Registry) error {
	cfg := reg.Config()
	m.pages = pagestate.NewStore(sections.Anchors(), cfg.GetPageTTL())
	registry.Set(reg, KeyPageStore, m.pages)
	return nil
}

// Boot mounts the page routes and starts the janitor and, when a content
// file is configured, the content watcher.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()
	m.content = registry.MustGet(reg, registry.KeyContent)
	m.renderer = registry.MustGet(reg, registry.KeyRenderer)

	if path := cfg.GetContentPath(); path != "" {
		if err := m.content.Watch(ctx, path); err != nil {
			return fmt.Errorf("failed to load content from %s: %w", path, err)
		}
	}

	go m.pages.Run(ctx, cfg.GetSweepInterval())

	slog.Info("Booting landing module: Setting up routes...")
	h := handlers.NewPageHandler(m.pages, m.content, m.renderer)

	g.GET("/", h.PageGet)

	actions := g.Group("/pages/:id", middleware.RateLimiter(cfg.GetActionRateLimit()))
	actions.POST("/theme", h.ThemeToggle)
	actions.POST("/menu", h.MenuToggle)
	actions.POST("/navigate/:section", h.Navigate)
	actions.POST("/close", h.PageClose)

	return nil
}

// Shutdown logs the number of pages still open.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.pages != nil {
		slog.Info("Shutting down landing module", "open_pages", m.pages.Len())
	}
	return nil
}
