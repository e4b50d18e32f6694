package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/techhub/internal/content"
	ui "github.com/nfrund/techhub/internal/view/components"
)

func hero(cat *content.Catalog, st State, id content.SectionID) g.Node {
	h := cat.Hero
	a := st.actions()

	return Section(
		ID(string(id)),
		Class("relative py-20 lg:py-32 overflow-hidden"),
		Div(
			Class("absolute inset-0 z-0"),
			Img(Src(h.Image), Alt(h.ImageAlt), Class("w-full h-full object-cover")),
			Div(Class("absolute inset-0 bg-black/50")),
		),
		Div(
			Class("relative z-10 container mx-auto px-4 sm:px-6 lg:px-8 text-center text-white"),
			H1(Class("text-4xl md:text-6xl font-bold mb-6"), g.Text(h.Title)),
			P(Class("text-xl md:text-2xl mb-8 max-w-3xl mx-auto"), g.Text(h.Subtitle)),
			Div(
				Class("flex flex-col sm:flex-row gap-4 justify-center"),
				ui.Button(ui.ButtonProps{Size: ui.SizeLg, OnClick: a.Navigate(h.Primary.Section)}, g.Text(h.Primary.Label)),
				ui.Button(ui.ButtonProps{Variant: ui.ButtonOutline, Size: ui.SizeLg, OnClick: a.Navigate(h.Secondary.Section)}, g.Text(h.Secondary.Label)),
			),
		),
	)
}
