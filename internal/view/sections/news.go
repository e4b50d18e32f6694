package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/techhub/internal/content"
	ui "github.com/nfrund/techhub/internal/view/components"
)

func news(cat *content.Catalog, _ State, id content.SectionID) g.Node {
	n := cat.News
	return grid(id, "bg-muted/50", n.SectionIntro, g.Map(n.Articles, func(a content.Article) g.Node {
		return articleCard(a, n.ReadMore)
	}))
}

func articleCard(a content.Article, readMore string) g.Node {
	return ui.Card("overflow-hidden hover:shadow-lg transition-shadow",
		articleCover(a),
		ui.CardHeader("",
			Div(Class("flex gap-2 mb-2"), g.Map(a.Tags, func(tag string) g.Node {
				return ui.Badge(ui.BadgeSecondary, ui.Icon(ui.IconTag, "w-3 h-3 mr-1"), g.Text(tag))
			})),
			H3(Class("text-xl font-semibold"), g.Text(a.Title)),
		),
		ui.CardContent("",
			P(Class("text-muted-foreground mb-4"), g.Text(a.Description)),
			Div(
				Class("flex items-center justify-between"),
				Div(
					Class("flex items-center text-sm text-muted-foreground"),
					ui.Icon(ui.IconClock, "w-4 h-4 mr-1"),
					g.Text(a.Meta),
				),
				ui.Button(ui.ButtonProps{Variant: ui.ButtonGhost, Size: ui.SizeSm},
					g.Text(readMore),
					ui.Icon(ui.IconExternalLink, "w-4 h-4 ml-1"),
				),
			),
		),
	)
}

// articleCover shows the article image, or the gradient glyph when there is
// no image.
func articleCover(a content.Article) g.Node {
	if a.Image != "" {
		return Div(
			Class("aspect-video relative"),
			Img(Src(a.Image), Alt(a.ImageAlt), Class("w-full h-full object-cover")),
		)
	}
	return Div(
		Class(classes("aspect-video relative bg-gradient-to-br flex items-center justify-center", a.Gradient)),
		Div(
			Class("text-white text-center"),
			Div(Class("text-4xl font-bold mb-2"), g.Text(a.Glyph)),
			Div(Class("text-lg"), g.Text(a.GlyphCaption)),
		),
	)
}
