package pagestate

import "github.com/nfrund/techhub/internal/content"

// Root mirrors the client's <html> element. It records marker changes so the
// next response can replay them in the browser.
type Root struct {
	dark    bool
	changed bool
}

// SetDark implements controller.DocumentRoot.
func (r *Root) SetDark(dark bool) bool {
	if r.dark == dark {
		return false
	}
	r.dark = dark
	r.changed = true
	return true
}

// Dark reports whether the marker is present.
func (r *Root) Dark() bool {
	return r.dark
}

// AnchorScroller implements controller.ViewportScroller for a page whose
// anchors are known up front. A successful scroll is queued for the client.
type AnchorScroller struct {
	anchors map[content.SectionID]struct{}
	pending content.SectionID
}

// NewAnchorScroller returns a scroller that knows about the given anchors.
func NewAnchorScroller(anchors []content.SectionID) *AnchorScroller {
	set := make(map[content.SectionID]struct{}, len(anchors))
	for _, a := range anchors {
		set[a] = struct{}{}
	}
	return &AnchorScroller{anchors: set}
}

// ScrollToAnchor queues a scroll to id if the page renders that anchor.
func (s *AnchorScroller) ScrollToAnchor(id content.SectionID) bool {
	if _, ok := s.anchors[id]; !ok {
		return false
	}
	s.pending = id
	return true
}

// Effects are the client-side side effects produced by one action.
type Effects struct {
	// ScrollTo is the anchor to scroll to, empty when nothing scrolls.
	ScrollTo content.SectionID
	// Theme is set when the palette marker changed.
	Theme *bool
}

// Empty reports whether there is nothing to send to the client.
func (e Effects) Empty() bool {
	return e.ScrollTo == "" && e.Theme == nil
}

// Triggers renders the effects as htmx client events, keyed by event name.
func (e Effects) Triggers() map[string]any {
	triggers := make(map[string]any, 2)
	if e.ScrollTo != "" {
		triggers[EventScroll] = map[string]string{"target": string(e.ScrollTo)}
	}
	if e.Theme != nil {
		triggers[EventTheme] = map[string]bool{"dark": *e.Theme}
	}
	return triggers
}

// Client event names dispatched through the HX-Trigger header.
const (
	EventScroll = "techhub:scroll"
	EventTheme  = "techhub:theme"
)
