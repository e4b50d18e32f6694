package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/techhub/internal/content"
	ui "github.com/nfrund/techhub/internal/view/components"
)

// HeaderFragment renders the header on its own, for htmx swaps.
func HeaderFragment(cat *content.Catalog, st State) g.Node {
	return siteHeader(cat, st)
}

func siteHeader(cat *content.Catalog, st State) g.Node {
	a := st.actions()

	return Header(
		ID(HeaderID),
		Class("sticky top-0 z-50 w-full border-b bg-background/95 backdrop-blur supports-[backdrop-filter]:bg-background/60"),
		container(
			Div(
				Class("flex h-16 items-center justify-between"),
				Div(Class("flex items-center"), H1(Class("text-xl font-bold"), g.Text(cat.Site.Name))),

				Nav(
					Class("hidden md:flex items-center space-x-6"),
					g.Map(cat.Nav, func(l content.NavLink) g.Node {
						return navButton(a, l, "text-sm font-medium hover:text-primary transition-colors")
					}),
				),

				Div(
					Class("flex items-center space-x-4"),
					// Both glyphs are always present; the dark marker picks one.
					ui.Button(ui.ButtonProps{
						Variant: ui.ButtonGhost,
						Size:    ui.SizeIcon,
						OnClick: a.ToggleTheme(),
						Attrs:   []g.Node{g.Attr("aria-label", "Toggle theme")},
					},
						ui.Icon(ui.IconMoon, "h-5 w-5 dark:hidden"),
						ui.Icon(ui.IconSun, "h-5 w-5 hidden dark:inline-block"),
					),
					ui.Button(ui.ButtonProps{
						Variant: ui.ButtonGhost,
						Size:    ui.SizeIcon,
						Class:   "md:hidden",
						OnClick: a.ToggleMenu(),
						Attrs: []g.Node{
							g.Attr("aria-label", "Menu"),
							g.Attr("aria-controls", "mobile-nav"),
							g.Attr("aria-expanded", boolAttr(st.MenuOpen)),
						},
					},
						Span(Class(classIf("", "hidden", st.MenuOpen)), g.Attr("data-menu-icon", "closed"), ui.Icon(ui.IconMenu, "h-5 w-5")),
						Span(Class(classIf("", "hidden", !st.MenuOpen)), g.Attr("data-menu-icon", "open"), ui.Icon(ui.IconClose, "h-5 w-5")),
					),
				),
			),
		),

		Div(
			ID("mobile-nav"),
			Class(classIf("md:hidden border-t bg-background", "hidden", !st.MenuOpen)),
			Div(
				Class("container mx-auto px-4 py-4 space-y-2"),
				g.Map(cat.Nav, func(l content.NavLink) g.Node {
					return navButton(a, l, "block w-full text-left py-2 text-sm font-medium hover:text-primary transition-colors")
				}),
			),
		),
	)
}

func navButton(a Actions, l content.NavLink, class string) g.Node {
	return Button(Type("button"), Class(class), a.Navigate(l.Section), g.Text(l.Label))
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
