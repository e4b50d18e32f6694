// Package sections composes the TechHub page from the primitives in
// internal/view/components and the copy in internal/content.
package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/techhub/internal/content"
)

type section struct {
	id     content.SectionID
	render func(cat *content.Catalog, st State, id content.SectionID) g.Node
}

// layout is the page body in order. Its ids are the page's scroll anchors.
var layout = []section{
	{id: content.SectionHome, render: hero},
	{id: content.SectionNews, render: news},
	{id: content.SectionSoftware, render: software},
	{id: content.SectionTips, render: tips},
	{id: content.SectionAbout, render: about},
}

// Anchors returns the ids of the sections the page renders.
func Anchors() []content.SectionID {
	ids := make([]content.SectionID, len(layout))
	for i, s := range layout {
		ids[i] = s.id
	}
	return ids
}

// Page renders the complete document for the given state.
func Page(cat *content.Catalog, st State) g.Node {
	body := make(g.Group, 0, len(layout))
	for _, s := range layout {
		body = append(body, s.render(cat, st, s.id))
	}

	return Document(cat, st,
		siteHeader(cat, st),
		Main(body),
		siteFooter(cat),
	)
}
