package app

import (
	"github.com/nfrund/techhub/internal/content"
	"github.com/nfrund/techhub/internal/registry"
	"github.com/nfrund/techhub/internal/rendering"
)

// Dependencies holds the core services that are required by the application's modules.
// The server publishes them in its registry, where modules resolve them at boot.
type Dependencies struct {
	Renderer rendering.Renderer
	Content  *content.Source
}

// Publish registers every core service under its registry key.
func (d Dependencies) Publish(reg *registry.Registry) {
	registry.Set(reg, registry.KeyRenderer, d.Renderer)
	registry.Set(reg, registry.KeyContent, d.Content)
}
