package sections

import (
	"net/url"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"

	"github.com/nfrund/techhub/internal/content"
	"github.com/nfrund/techhub/internal/pagestate"
)

// HeaderID is the element id of the header, the region re-rendered by menu
// and navigation actions.
const HeaderID = "site-header"

// State is everything that varies between renders of the page.
type State struct {
	Dark     bool
	MenuOpen bool
	// Actions wires the interactive elements. Nil renders a standalone page
	// driven entirely by the client script.
	Actions Actions
}

// FromSnapshot builds the render state of a live page.
func FromSnapshot(snap pagestate.Snapshot) State {
	return State{
		Dark:     snap.Dark,
		MenuOpen: snap.MenuOpen,
		Actions:  LiveActions(snap.ID.String()),
	}
}

func (s State) actions() Actions {
	if s.Actions == nil {
		return StaticActions{}
	}
	return s.Actions
}

// standalone reports whether the page runs without a server.
func (s State) standalone() bool {
	_, ok := s.actions().(StaticActions)
	return ok
}

// Actions returns the attributes that make an element trigger an action.
type Actions interface {
	ToggleTheme() g.Node
	ToggleMenu() g.Node
	Navigate(id content.SectionID) g.Node
	// Page returns attributes for <body>.
	Page() g.Node
}

type liveActions struct {
	base string
}

// LiveActions posts every action to the server-side state of pageID.
func LiveActions(pageID string) Actions {
	return liveActions{base: "/pages/" + url.PathEscape(pageID)}
}

func (a liveActions) ToggleTheme() g.Node {
	return g.Group{hx.Post(a.base + "/theme"), hx.Swap("none")}
}

func (a liveActions) ToggleMenu() g.Node {
	return g.Group{hx.Post(a.base + "/menu"), hx.Target("#" + HeaderID), hx.Swap("outerHTML")}
}

func (a liveActions) Navigate(id content.SectionID) g.Node {
	return g.Group{
		hx.Post(a.base + "/navigate/" + url.PathEscape(string(id))),
		hx.Target("#" + HeaderID),
		hx.Swap("outerHTML"),
	}
}

func (a liveActions) Page() g.Node {
	return g.Attr("data-close-url", a.base+"/close")
}

// StaticActions marks interactive elements for the client script alone, for
// pages exported without a server.
type StaticActions struct{}

func (StaticActions) ToggleTheme() g.Node { return g.Attr("data-action", "theme") }

func (StaticActions) ToggleMenu() g.Node { return g.Attr("data-action", "menu") }

func (StaticActions) Navigate(id content.SectionID) g.Node {
	return g.Group{g.Attr("data-action", "navigate"), g.Attr("data-section", string(id))}
}

func (StaticActions) Page() g.Node { return g.Attr("data-static", "true") }
