package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/techhub/internal/content"
	ui "github.com/nfrund/techhub/internal/view/components"
)

func about(cat *content.Catalog, _ State, id content.SectionID) g.Node {
	ab := cat.About

	return Section(
		ID(string(id)),
		Class("py-20"),
		container(
			intro(ab.SectionIntro),
			Div(
				Class("max-w-4xl mx-auto"),
				ui.Card("overflow-hidden",
					Div(
						Class("md:flex"),
						Div(
							Class("md:w-1/3"),
							Img(Src(ab.Avatar), Alt(ab.Name), Class("w-full h-64 md:h-full object-cover")),
						),
						Div(
							Class("md:w-2/3 p-8"),
							H3(Class("text-3xl font-bold mb-4"), g.Text(ab.Name)),
							P(Class("text-xl text-primary mb-4"), g.Text(ab.Role)),
							Div(Class("text-muted-foreground mb-6 leading-relaxed [&_a]:text-primary [&_a]:underline"), g.Raw(ab.BioHTML)),
							Div(Class("grid grid-cols-2 gap-4 mb-6"), g.Map(ab.Stats, stat)),
							Div(
								Class("mb-6"),
								H4(Class("font-semibold mb-3"), g.Text(ab.SkillsLabel)),
								Div(Class("flex flex-wrap gap-2"), g.Map(ab.Skills, secondaryBadge)),
							),
							socialLinks("flex gap-4", cat.Socials),
						),
					),
				),
			),
		),
	)
}

func stat(s content.Stat) g.Node {
	return Div(
		Class("text-center p-4 bg-muted rounded-lg"),
		Div(Class("text-2xl font-bold text-primary"), g.Text(s.Value)),
		Div(Class("text-sm text-muted-foreground"), g.Text(s.Label)),
	)
}

// socialLinks renders icon links that look like outline icon buttons.
func socialLinks(class string, socials []content.Social) g.Node {
	return Div(Class(class), g.Map(socials, func(s content.Social) g.Node {
		return A(
			Href(s.Href),
			Class(ui.ButtonClass(ui.ButtonOutline, ui.SizeIcon, "hover:text-primary")),
			g.Attr("aria-label", s.Label),
			ui.Icon(ui.IconName(s.Icon), "h-5 w-5"),
		)
	}))
}
