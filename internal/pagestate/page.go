package pagestate

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nfrund/techhub/internal/content"
	"github.com/nfrund/techhub/internal/controller"
)

// Page is the UI state of one page load.
type Page struct {
	ID    uuid.UUID
	Theme *controller.Theme
	Nav   *controller.Navigation

	root     *Root
	scroller *AnchorScroller

	mu       sync.Mutex
	lastSeen time.Time
}

// Snapshot is a read-only copy of a page's state, used for rendering.
type Snapshot struct {
	ID       uuid.UUID
	Dark     bool
	MenuOpen bool
}

func newPage(id uuid.UUID, anchors []content.SectionID, now time.Time) *Page {
	root := &Root{}
	scroller := NewAnchorScroller(anchors)
	return &Page{
		ID:       id,
		Theme:    controller.NewTheme(root),
		Nav:      controller.NewNavigation(scroller),
		root:     root,
		scroller: scroller,
		lastSeen: now,
	}
}

// Snapshot copies the current state. Callers must hold the page, i.e. be
// inside Store.Do or own a freshly created page.
func (p *Page) Snapshot() Snapshot {
	return Snapshot{
		ID:       p.ID,
		Dark:     p.Theme.IsDark(),
		MenuOpen: p.Nav.IsMenuOpen(),
	}
}

// TakeEffects returns and clears the effects queued since the last call.
func (p *Page) TakeEffects() Effects {
	var fx Effects
	if p.scroller.pending != "" {
		fx.ScrollTo = p.scroller.pending
		p.scroller.pending = ""
	}
	if p.root.changed {
		dark := p.root.dark
		fx.Theme = &dark
		p.root.changed = false
	}
	return fx
}
