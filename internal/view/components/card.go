package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Card is the bordered container used by every grid.
func Card(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(joinClasses("rounded-lg border bg-card text-card-foreground shadow-sm", class)), g.Group(children))
}

// CardHeader is the padded top block of a card.
func CardHeader(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(joinClasses("flex flex-col space-y-1.5 p-6", class)), g.Group(children))
}

// CardContent is the padded body of a card.
func CardContent(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(joinClasses("p-6 pt-0", class)), g.Group(children))
}
