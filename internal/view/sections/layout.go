package sections

import (
	"io/fs"
	"log/slog"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/techhub/internal/content"
	"github.com/nfrund/techhub/web"
)

const (
	htmxSrc    = "https://unpkg.com/htmx.org@2.0.4"
	iconifySrc = "https://code.iconify.design/1/1.0.7/iconify.min.js"
	tailwind   = "https://cdn.tailwindcss.com"
)

// Document wraps body in the full HTML document. The dark marker on <html>
// is the only thing the theme changes. Standalone documents carry the site's
// own stylesheet and scripts inline so they work when opened from disk.
func Document(cat *content.Catalog, st State, body ...g.Node) g.Node {
	standalone := st.standalone()

	return g.Group{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("vi"),
			g.If(st.Dark, Class("dark")),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(cat.Site.Name)),
				Meta(Name("description"), Content(cat.Site.Description)),
				Script(Src(tailwind)),
				g.Iff(standalone, func() g.Node {
					return g.Group{
						inlineAsset("js/tailwind.config.js", Script),
						inlineAsset("css/techhub.css", StyleEl),
						Script(Src(iconifySrc)),
					}
				}),
				g.If(!standalone, g.Group{
					Script(Src("/static/js/tailwind.config.js")),
					Link(Rel("stylesheet"), Href("/static/css/techhub.css")),
					Script(Src(iconifySrc)),
					Script(Src(htmxSrc)),
					Script(Src("/static/js/techhub.js"), Defer()),
				}),
			),
			Body(
				Class("min-h-screen bg-background text-foreground"),
				st.actions().Page(),
				g.Group(body),
				// Inline scripts cannot be deferred, so this one goes last.
				g.Iff(standalone, func() g.Node { return inlineAsset("js/techhub.js", Script) }),
			),
		),
	}
}

// inlineAsset embeds a file from the static tree in the given element.
func inlineAsset(path string, el func(children ...g.Node) g.Node) g.Node {
	b, err := fs.ReadFile(web.Static(), path)
	if err != nil {
		slog.Warn("Static asset missing, leaving it out of the document", "path", path, "error", err)
		return nil
	}
	return el(g.Raw(string(b)))
}

// container is the centred, padded column used by every section.
func container(children ...g.Node) g.Node {
	return Div(Class("container mx-auto px-4 sm:px-6 lg:px-8"), g.Group(children))
}

// intro renders the centred heading block above a grid.
func intro(si content.SectionIntro) g.Node {
	return Div(
		Class("text-center mb-16"),
		H2(Class("text-3xl md:text-4xl font-bold mb-4"), g.Text(si.Heading)),
		P(Class("text-lg text-muted-foreground max-w-2xl mx-auto"), g.Text(si.Intro)),
	)
}

// grid renders a section with an intro and a three-column card grid.
func grid(id content.SectionID, class string, si content.SectionIntro, cards g.Group) g.Node {
	return Section(
		ID(string(id)),
		Class(classes("py-20", class)),
		container(
			intro(si),
			Div(Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"), cards),
		),
	)
}

func classes(base, extra string) string {
	switch {
	case extra == "":
		return base
	case base == "":
		return extra
	}
	return base + " " + extra
}

func classIf(base, extra string, cond bool) string {
	if !cond {
		return base
	}
	return classes(base, extra)
}
