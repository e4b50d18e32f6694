package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/techhub/internal/content"
	ui "github.com/nfrund/techhub/internal/view/components"
)

func tips(cat *content.Catalog, _ State, id content.SectionID) g.Node {
	t := cat.Tips
	return grid(id, "bg-muted/50", t.SectionIntro, g.Map(t.Items, func(tip content.Tip) g.Node {
		return tipCard(tip, t.Action)
	}))
}

func tipCard(t content.Tip, action content.Action) g.Node {
	return ui.Card("hover:shadow-lg transition-shadow",
		ui.CardHeader("",
			Div(
				Class("flex gap-2 mb-2"),
				ui.Badge(ui.BadgeOutline, g.Text(t.Level)),
				g.Map(t.Tags, secondaryBadge),
			),
			H3(Class("text-xl font-semibold"), g.Text(t.Title)),
		),
		ui.CardContent("",
			P(Class("text-muted-foreground mb-4"), g.Text(t.Description)),
			Div(
				Class("flex items-center justify-between mb-4"),
				Span(Class("text-sm text-muted-foreground"), g.Text(t.Meta)),
			),
			actionButton(action, "w-full"),
		),
	)
}
