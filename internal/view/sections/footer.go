package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/techhub/internal/content"
)

func siteFooter(cat *content.Catalog) g.Node {
	return Footer(
		Class("bg-muted/50 py-12"),
		container(
			Div(
				Class("text-center"),
				H3(Class("text-2xl font-bold mb-4"), g.Text(cat.Site.Name)),
				P(Class("text-muted-foreground mb-6"), g.Text(cat.Site.Tagline)),
				socialLinks("flex justify-center gap-4 mb-6", cat.Socials),
				P(Class("text-sm text-muted-foreground"), g.Text(cat.Site.Copyright)),
			),
		),
	)
}
