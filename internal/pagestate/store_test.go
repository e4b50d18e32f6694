package pagestate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/techhub/internal/content"
	"github.com/nfrund/techhub/internal/domain"
)

func newTestStore(ttl time.Duration) (*Store, *time.Time) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(content.Sections, ttl)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestStore_CreateStartsWithDefaults(t *testing.T) {
	s, _ := newTestStore(time.Minute)

	snap := s.Create()

	assert.NotEqual(t, uuid.Nil, snap.ID)
	assert.False(t, snap.Dark)
	assert.False(t, snap.MenuOpen)
	assert.Equal(t, 1, s.Len())
}

func TestStore_EachLoadGetsFreshState(t *testing.T) {
	s, _ := newTestStore(time.Minute)

	first := s.Create()
	require.NoError(t, s.Do(first.ID, func(p *Page) error {
		p.Theme.Toggle()
		return nil
	}))

	second := s.Create()
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, second.Dark, "theme preference is not carried over to a new page load")
}

func TestStore_DoUnknownPage(t *testing.T) {
	s, _ := newTestStore(time.Minute)

	err := s.Do(uuid.New(), func(p *Page) error {
		t.Fatal("fn must not run for an unknown page")
		return nil
	})

	assert.ErrorIs(t, err, domain.ErrPageNotFound)
}

func TestPage_Effects(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	snap := s.Create()

	require.NoError(t, s.Do(snap.ID, func(p *Page) error {
		assert.True(t, p.TakeEffects().Empty(), "a fresh page has no pending effects")

		p.Theme.Toggle()
		p.Nav.ToggleMenu()
		p.Nav.NavigateTo(content.SectionNews)

		fx := p.TakeEffects()
		require.NotNil(t, fx.Theme)
		assert.True(t, *fx.Theme)
		assert.Equal(t, content.SectionNews, fx.ScrollTo)
		assert.Equal(t, map[string]any{
			EventScroll: map[string]string{"target": "news"},
			EventTheme:  map[string]bool{"dark": true},
		}, fx.Triggers())

		assert.True(t, p.TakeEffects().Empty(), "effects are drained once taken")

		p.Nav.NavigateTo("not-a-real-section")
		assert.True(t, p.TakeEffects().Empty(), "a missing anchor produces no scroll")
		assert.False(t, p.Snapshot().MenuOpen)
		return nil
	}))
}

func TestStore_CloseAndSweep(t *testing.T) {
	s, now := newTestStore(10 * time.Minute)

	idle := s.Create()
	*now = now.Add(6 * time.Minute)
	active := s.Create()
	closed := s.Create()

	s.Close(closed.ID)
	s.Close(uuid.New())
	assert.Equal(t, 2, s.Len())

	*now = now.Add(5 * time.Minute)
	require.NoError(t, s.Do(active.ID, func(*Page) error { return nil }))

	assert.Equal(t, 1, s.Sweep())
	assert.ErrorIs(t, s.Do(idle.ID, func(*Page) error { return nil }), domain.ErrPageNotFound)
	assert.NoError(t, s.Do(active.ID, func(*Page) error { return nil }))
}

func TestStore_ConcurrentActionsAreSerialised(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	snap := s.Create()

	const toggles = 100
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(snap.ID, func(p *Page) error {
				p.Theme.Toggle()
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, s.Do(snap.ID, func(p *Page) error {
		assert.False(t, p.Theme.IsDark(), "an even number of toggles ends light")
		return nil
	}))
}

func TestStore_RunStopsOnCancel(t *testing.T) {
	s := NewStore(content.Sections, time.Nanosecond)
	s.Create()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}
