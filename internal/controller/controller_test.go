package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nfrund/techhub/internal/content"
)

type fakeRoot struct {
	dark  bool
	calls int
}

func (r *fakeRoot) SetDark(dark bool) bool {
	r.calls++
	if r.dark == dark {
		return false
	}
	r.dark = dark
	return true
}

type fakeScroller struct {
	anchors  map[content.SectionID]bool
	scrolled []content.SectionID
	// menuAtScroll records the menu flag seen while the scroll is initiated.
	nav          *Navigation
	menuAtScroll []bool
}

func (s *fakeScroller) ScrollToAnchor(id content.SectionID) bool {
	if s.nav != nil {
		s.menuAtScroll = append(s.menuAtScroll, s.nav.IsMenuOpen())
	}
	if !s.anchors[id] {
		return false
	}
	s.scrolled = append(s.scrolled, id)
	return true
}

func TestTheme_ToggleParity(t *testing.T) {
	for n := 0; n <= 7; n++ {
		root := &fakeRoot{}
		theme := NewTheme(root)
		for i := 0; i < n; i++ {
			theme.Toggle()
		}
		assert.Equal(t, n%2 == 1, theme.IsDark(), "after %d toggles", n)
		assert.Equal(t, theme.IsDark(), root.dark, "root marker follows the flag")
	}
}

func TestTheme_ApplyIsIdempotent(t *testing.T) {
	root := &fakeRoot{}
	theme := NewTheme(root)

	theme.Toggle()
	assert.True(t, root.dark)

	assert.False(t, theme.Apply(), "re-applying the same state is a no-op")
	assert.False(t, theme.Apply())
	assert.True(t, root.dark)
}

func TestTheme_NilRoot(t *testing.T) {
	theme := NewTheme(nil)
	theme.Toggle()
	assert.True(t, theme.IsDark())
	assert.False(t, theme.Apply())
}

func TestNavigation_ToggleMenu(t *testing.T) {
	nav := NewNavigation(nil)
	assert.False(t, nav.IsMenuOpen())

	nav.ToggleMenu()
	assert.True(t, nav.IsMenuOpen())

	nav.ToggleMenu()
	assert.False(t, nav.IsMenuOpen())
}

func TestNavigation_NavigateToAlwaysClosesMenu(t *testing.T) {
	tests := []struct {
		name      string
		menuOpen  bool
		target    content.SectionID
		wantFound bool
	}{
		{name: "known section, menu open", menuOpen: true, target: content.SectionNews, wantFound: true},
		{name: "known section, menu closed", menuOpen: false, target: content.SectionAbout, wantFound: true},
		{name: "missing section, menu open", menuOpen: true, target: "not-a-real-section", wantFound: false},
		{name: "missing section, menu closed", menuOpen: false, target: "not-a-real-section", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scroller := &fakeScroller{anchors: map[content.SectionID]bool{
				content.SectionNews:  true,
				content.SectionAbout: true,
			}}
			nav := NewNavigation(scroller)
			if tt.menuOpen {
				nav.ToggleMenu()
			}

			found := nav.NavigateTo(tt.target)

			assert.Equal(t, tt.wantFound, found)
			assert.False(t, nav.IsMenuOpen())
			if tt.wantFound {
				assert.Equal(t, []content.SectionID{tt.target}, scroller.scrolled)
			} else {
				assert.Empty(t, scroller.scrolled)
			}
		})
	}
}

func TestNavigation_ScrollStartsBeforeMenuCloses(t *testing.T) {
	scroller := &fakeScroller{anchors: map[content.SectionID]bool{content.SectionTips: true}}
	nav := NewNavigation(scroller)
	scroller.nav = nav

	nav.ToggleMenu()
	nav.NavigateTo(content.SectionTips)

	assert.Equal(t, []bool{true}, scroller.menuAtScroll, "menu is still open while the scroll is initiated")
	assert.False(t, nav.IsMenuOpen())
}

func TestScenario_ThemeThenNavigation(t *testing.T) {
	root := &fakeRoot{}
	scroller := &fakeScroller{anchors: map[content.SectionID]bool{content.SectionNews: true}}
	theme := NewTheme(root)
	nav := NewNavigation(scroller)

	assert.False(t, theme.IsDark())
	assert.False(t, nav.IsMenuOpen())

	theme.Toggle()
	assert.True(t, theme.IsDark())
	assert.True(t, root.dark)

	assert.True(t, nav.NavigateTo(content.SectionNews))
	assert.Equal(t, []content.SectionID{content.SectionNews}, scroller.scrolled)
	assert.False(t, nav.IsMenuOpen())

	assert.NotPanics(t, func() {
		assert.False(t, nav.NavigateTo("not-a-real-section"))
	})
	assert.Len(t, scroller.scrolled, 1, "no scroll for a missing section")
	assert.False(t, nav.IsMenuOpen())
}
