// Package pagestate keeps the UI state of every open page in memory.
//
// State lives exactly as long as the page: it is created when the page is
// served, dropped when the browser reports the page closed, and expired after
// a period of inactivity. Nothing is persisted.
package pagestate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nfrund/techhub/internal/content"
	"github.com/nfrund/techhub/internal/domain"
)

// Store holds page states keyed by page id.
type Store struct {
	mu      sync.Mutex
	pages   map[uuid.UUID]*Page
	anchors []content.SectionID
	ttl     time.Duration
	now     func() time.Time
}

// NewStore creates a store whose pages scroll to the given anchors and expire
// after ttl without activity.
func NewStore(anchors []content.SectionID, ttl time.Duration) *Store {
	return &Store{
		pages:   make(map[uuid.UUID]*Page),
		anchors: append([]content.SectionID(nil), anchors...),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Create registers state for a new page load and returns a snapshot of it.
func (s *Store) Create() Snapshot {
	id := uuid.New()
	p := newPage(id, s.anchors, s.now())

	s.mu.Lock()
	s.pages[id] = p
	s.mu.Unlock()

	return p.Snapshot()
}

// Do runs fn with exclusive access to the page. It returns
// domain.ErrPageNotFound if the page is unknown or expired.
func (s *Store) Do(id uuid.UUID, fn func(p *Page) error) error {
	s.mu.Lock()
	p, ok := s.pages[id]
	if ok {
		p.lastSeen = s.now()
	}
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrPageNotFound, id)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return fn(p)
}

// Close drops the page's state. Closing an unknown page is a no-op.
func (s *Store) Close(id uuid.UUID) {
	s.mu.Lock()
	delete(s.pages, id)
	s.mu.Unlock()
}

// Len returns the number of live pages.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}

// Sweep removes pages idle for longer than the TTL and returns how many
// were removed.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, p := range s.pages {
		if p.lastSeen.Before(cutoff) {
			delete(s.pages, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired pages every interval until ctx is cancelled.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Page state janitor stopped")
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				slog.Debug("Expired idle page states", "removed", n, "remaining", s.Len())
			}
		}
	}
}
