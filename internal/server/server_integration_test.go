package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/techhub/internal/app"
	"github.com/nfrund/techhub/internal/config"
	"github.com/nfrund/techhub/internal/content"
	"github.com/nfrund/techhub/internal/modules/landing"
	"github.com/nfrund/techhub/internal/registry"
	"github.com/nfrund/techhub/internal/rendering"
)

func testConfig() *config.Config {
	return &config.Config{
		Addr:            "127.0.0.1:0",
		BaseURL:         "http://localhost",
		PageTTL:         time.Hour,
		SweepInterval:   time.Hour,
		ActionRateLimit: 1000,
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	s := New(cfg, app.Dependencies{
		Renderer: rendering.NewUniversalRenderer(),
		Content:  content.NewSource(content.MustEmbedded()),
	})
	s.RegisterRoutes()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, s.bootModules(ctx))
	return s
}

// pageBase loads the page and returns the action prefix of its state.
func pageBase(t *testing.T, s *Server) string {
	t.Helper()
	rec := serve(s, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	closeURL, ok := doc.Find("body").Attr("data-close-url")
	require.True(t, ok, "body has no close url")
	return strings.TrimSuffix(closeURL, "/close")
}

func serve(s *Server, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t, testConfig())

	rec := serve(s, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_PageDocument(t *testing.T) {
	s := newTestServer(t, testConfig())

	rec := serve(s, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<!DOCTYPE html>"))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.False(t, doc.Find("html").HasClass("dark"))
	assert.Equal(t, 5, doc.Find("main > section[id]").Length())
	assert.Equal(t, 3, doc.Find("#news .bg-card").Length())
	assert.True(t, doc.Find("#mobile-nav").HasClass("hidden"))
	assert.Contains(t, doc.Find("#about").Text(), "TechHub")
}

func TestServer_StaticAssets(t *testing.T) {
	s := newTestServer(t, testConfig())

	for _, path := range []string{"/static/css/techhub.css", "/static/js/techhub.js", "/static/js/tailwind.config.js"} {
		rec := serve(s, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	css := serve(s, http.MethodGet, "/static/css/techhub.css")
	assert.Contains(t, css.Body.String(), ".dark {")
}

func TestServer_PageScenario(t *testing.T) {
	s := newTestServer(t, testConfig())
	pages := registry.MustGet(s.Registry(), landing.KeyPageStore)

	base := pageBase(t, s)
	require.Equal(t, 1, pages.Len())

	rec := serve(s, http.MethodPost, base+"/theme")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.JSONEq(t, `{"techhub:theme":{"dark":true}}`, rec.Header().Get("HX-Trigger"))

	rec = serve(s, http.MethodPost, base+"/navigate/news")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"techhub:scroll":{"target":"news"}}`, rec.Header().Get("HX-Trigger"))
	assert.Contains(t, rec.Body.String(), `aria-expanded="false"`)

	rec = serve(s, http.MethodPost, base+"/navigate/not-a-real-section")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("HX-Trigger"))
	assert.Contains(t, rec.Body.String(), `aria-expanded="false"`)

	rec = serve(s, http.MethodPost, base+"/close")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, pages.Len())

	rec = serve(s, http.MethodPost, base+"/menu")
	assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))
}

func TestServer_ActionsAreRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.ActionRateLimit = 0.01
	s := newTestServer(t, cfg)

	base := pageBase(t, s)

	assert.Equal(t, http.StatusNoContent, serve(s, http.MethodPost, base+"/theme").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(s, http.MethodPost, base+"/theme").Code)

	// The page itself is not limited.
	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/").Code)
}

func TestServer_StartAndShutdown(t *testing.T) {
	s := New(testConfig(), app.Dependencies{
		Renderer: rendering.NewUniversalRenderer(),
		Content:  content.NewSource(content.MustEmbedded()),
	})
	s.RegisterRoutes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	require.Eventually(t, func() bool { return s.E.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_PublishesCoreServices(t *testing.T) {
	renderer := rendering.NewUniversalRenderer()
	src := content.NewSource(content.MustEmbedded())

	s := New(testConfig(), app.Dependencies{Renderer: renderer, Content: src})

	assert.Same(t, src, registry.MustGet(s.Registry(), registry.KeyContent))
	assert.Same(t, renderer, registry.MustGet(s.Registry(), registry.KeyRenderer))
	assert.Same(t, renderer, s.E.Renderer)
}
