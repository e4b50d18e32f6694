package sections

import (
	"log/slog"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/techhub/internal/content"
	ui "github.com/nfrund/techhub/internal/view/components"
)

const maxRating = 5

func software(cat *content.Catalog, _ State, id content.SectionID) g.Node {
	s := cat.Software
	return grid(id, "", s.SectionIntro, g.Map(s.Items, softwareCard))
}

func softwareCard(s content.Software) g.Node {
	return ui.Card("hover:shadow-lg transition-shadow",
		ui.CardHeader("",
			Div(
				Class("flex items-center justify-between mb-2"),
				Div(
					Class("flex items-center"),
					stars(s.Rating),
					Span(Class("ml-2 text-sm font-medium"), g.Textf("%d/%d", s.Rating, maxRating)),
				),
				ui.Badge(ui.BadgeOutline, g.Text(s.Meta)),
			),
			H3(Class("text-xl font-semibold"), g.Text(s.Title)),
		),
		ui.CardContent("",
			P(Class("text-muted-foreground mb-4"), g.Text(s.Description)),
			Div(Class("flex gap-2 mb-4"), g.Map(s.Tags, secondaryBadge)),
			actionButton(s.Action, "w-full"),
		),
	)
}

func stars(rating int) g.Node {
	nodes := make(g.Group, 0, maxRating)
	for i := 0; i < maxRating; i++ {
		if i < rating {
			nodes = append(nodes, ui.Icon(ui.IconStar, "w-4 h-4 fill-yellow-400 text-yellow-400"))
		} else {
			nodes = append(nodes, ui.Icon(ui.IconStar, "w-4 h-4 text-muted-foreground"))
		}
	}
	return nodes
}

func secondaryBadge(label string) g.Node {
	return ui.Badge(ui.BadgeSecondary, g.Text(label))
}

// actionButton renders a card's call to action. The catalog is validated on
// load, so an unknown variant here is logged and rendered as the default.
func actionButton(a content.Action, class string) g.Node {
	variant, err := ui.ParseButtonVariant(a.Variant)
	if err != nil {
		slog.Warn("Invalid action variant in catalog", "label", a.Label, "error", err)
		variant = ui.ButtonDefault
	}

	var icon g.Node
	if a.Icon != "" {
		icon = ui.Icon(ui.IconName(a.Icon), "w-4 h-4 mr-2")
	}

	return ui.Button(ui.ButtonProps{Variant: variant, Class: class}, icon, g.Text(a.Label))
}
