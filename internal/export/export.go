// Package export writes the landing page as a standalone HTML file.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/nfrund/techhub/internal/content"
	"github.com/nfrund/techhub/internal/rendering"
	"github.com/nfrund/techhub/internal/view/sections"
)

// Options selects the state the page is rendered in.
type Options struct {
	Dark     bool
	MenuOpen bool
}

// Exporter renders pages to a file system.
type Exporter struct {
	fs       afero.Fs
	renderer rendering.Renderer
}

// New creates an Exporter writing to fs.
func New(fs afero.Fs, renderer rendering.Renderer) *Exporter {
	return &Exporter{fs: fs, renderer: renderer}
}

// Render returns the document for cat in the given state. Interactive
// elements are wired for the client script alone.
func (x *Exporter) Render(ctx context.Context, cat *content.Catalog, opts Options) ([]byte, error) {
	st := sections.State{Dark: opts.Dark, MenuOpen: opts.MenuOpen}
	return x.renderer.RenderComponent(ctx, sections.Page(cat, st))
}

// WriteFile renders the document and writes it to path, creating parent
// directories as needed.
func (x *Exporter) WriteFile(ctx context.Context, path string, cat *content.Catalog, opts Options) error {
	body, err := x.Render(ctx, cat, opts)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := x.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(x.fs, path, body, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	slog.Info("Exported page", "path", path, "bytes", len(body), "dark", opts.Dark, "menu_open", opts.MenuOpen)
	return nil
}
