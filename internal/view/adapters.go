// Package view bridges gomponents nodes into templ, so fragments built with
// gomponents go through c.Render like any templ component.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Templ wraps a gomponents node as a templ.Component.
func Templ(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}
