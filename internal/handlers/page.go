package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/techhub/internal/content"
	"github.com/nfrund/techhub/internal/domain"
	"github.com/nfrund/techhub/internal/middleware"
	"github.com/nfrund/techhub/internal/pagestate"
	"github.com/nfrund/techhub/internal/rendering"
	"github.com/nfrund/techhub/internal/view"
	"github.com/nfrund/techhub/internal/view/sections"
)

// PageHandler serves the landing page and the actions of its live state.
type PageHandler struct {
	pages    *pagestate.Store
	content  *content.Source
	renderer rendering.Renderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(pages *pagestate.Store, src *content.Source, renderer rendering.Renderer) *PageHandler {
	return &PageHandler{
		pages:    pages,
		content:  src,
		renderer: renderer,
	}
}

// PageGet renders the full page with fresh state.
func (h *PageHandler) PageGet(c echo.Context) error {
	snap := h.pages.Create()
	middleware.FromContext(c.Request().Context()).Debug("Created page state", "page_id", snap.ID)

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return h.renderer.RenderPage(c, http.StatusOK, sections.Page(h.content.Current(), sections.FromSnapshot(snap)))
}

// ThemeToggle flips the palette. The response has no body; the client
// applies the marker from the HX-Trigger event.
func (h *PageHandler) ThemeToggle(c echo.Context) error {
	id, err := bindPageID(c, new(PageRequest))
	if err != nil {
		return err
	}

	var fx pagestate.Effects
	err = h.pages.Do(id, func(p *pagestate.Page) error {
		p.Theme.Toggle()
		fx = p.TakeEffects()
		return nil
	})
	if err != nil {
		return h.pageError(c, err)
	}

	if err := setTriggers(c, fx); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MenuToggle opens or closes the mobile menu and returns the new header.
func (h *PageHandler) MenuToggle(c echo.Context) error {
	id, err := bindPageID(c, new(PageRequest))
	if err != nil {
		return err
	}

	var snap pagestate.Snapshot
	err = h.pages.Do(id, func(p *pagestate.Page) error {
		p.Nav.ToggleMenu()
		snap = p.Snapshot()
		return nil
	})
	if err != nil {
		return h.pageError(c, err)
	}

	return h.header(c, snap)
}

// Navigate scrolls to a section and closes the mobile menu. An unknown
// section only closes the menu.
func (h *PageHandler) Navigate(c echo.Context) error {
	req := new(NavigateRequest)
	id, err := bindPageID(c, req)
	if err != nil {
		return err
	}
	section := content.SectionID(req.Section)

	var (
		snap  pagestate.Snapshot
		fx    pagestate.Effects
		found bool
	)
	err = h.pages.Do(id, func(p *pagestate.Page) error {
		found = p.Nav.NavigateTo(section)
		snap = p.Snapshot()
		fx = p.TakeEffects()
		return nil
	})
	if err != nil {
		return h.pageError(c, err)
	}

	if !found {
		middleware.FromContext(c.Request().Context()).Debug("Section not on page, menu closed without scrolling", "page_id", id, "section", req.Section)
	}

	if err := setTriggers(c, fx); err != nil {
		return err
	}
	return h.header(c, snap)
}

// PageClose drops the page's state. It is called by the browser on
// pagehide and succeeds for unknown pages.
func (h *PageHandler) PageClose(c echo.Context) error {
	id, err := bindPageID(c, new(PageRequest))
	if err != nil {
		return err
	}
	h.pages.Close(id)
	return c.NoContent(http.StatusNoContent)
}

// header answers an action with the swapped header fragment.
func (h *PageHandler) header(c echo.Context, snap pagestate.Snapshot) error {
	return c.Render(http.StatusOK, "", view.Templ(sections.HeaderFragment(h.content.Current(), sections.FromSnapshot(snap))))
}

// pageError turns a missing page into a reload request. Its state expired
// or the server restarted, and a reload starts from the defaults anyway.
func (h *PageHandler) pageError(c echo.Context, err error) error {
	if !errors.Is(err, domain.ErrPageNotFound) {
		return err
	}
	middleware.FromContext(c.Request().Context()).Info("Asking client to reload unknown page", "error", err)
	c.Response().Header().Set(HeaderHXRefresh, "true")
	return c.NoContent(http.StatusNoContent)
}

type pageAddressed interface {
	pageID() string
}

func (r *PageRequest) pageID() string { return r.ID }

// bindPageID binds and validates req from the path and returns its page id.
func bindPageID(c echo.Context, req pageAddressed) (uuid.UUID, error) {
	if err := c.Bind(req); err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request").SetInternal(err)
	}
	if err := c.Validate(req); err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request").SetInternal(err)
	}
	id, err := uuid.Parse(req.pageID())
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid page id").SetInternal(err)
	}
	return id, nil
}
