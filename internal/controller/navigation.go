package controller

import "github.com/nfrund/techhub/internal/content"

// ViewportScroller scrolls the viewport to a section anchor. It reports
// false, without scrolling, when the anchor is not on the page.
type ViewportScroller interface {
	ScrollToAnchor(id content.SectionID) (found bool)
}

// Navigation owns the mobile menu flag and the navigate-to-section action.
type Navigation struct {
	menuOpen bool
	scroller ViewportScroller
}

// NewNavigation returns a navigation controller with the menu closed.
func NewNavigation(scroller ViewportScroller) *Navigation {
	return &Navigation{scroller: scroller}
}

// IsMenuOpen reports whether the mobile menu is open.
func (n *Navigation) IsMenuOpen() bool {
	return n.menuOpen
}

// ToggleMenu flips the mobile menu without touching the scroll position.
func (n *Navigation) ToggleMenu() {
	n.menuOpen = !n.menuOpen
}

// NavigateTo scrolls to the section and then closes the menu. A missing
// section is not an error: nothing scrolls, and the menu still closes.
func (n *Navigation) NavigateTo(id content.SectionID) (found bool) {
	if n.scroller != nil {
		found = n.scroller.ScrollToAnchor(id)
	}
	n.menuOpen = false
	return found
}
