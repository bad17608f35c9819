package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/homepage/internal/domain"
	"github.com/nfrund/homepage/internal/middleware"
	"github.com/nfrund/homepage/internal/rendering"
	"github.com/nfrund/homepage/internal/view"
	"github.com/nfrund/homepage/web/src/templates/pages"
)

// HeaderHXRequest is set by htmx on every request it issues.
const HeaderHXRequest = "HX-Request"

// PageStore is the view state the home page needs.
type PageStore interface {
	Mount(ctx context.Context) (domain.PageInstance, error)
	Like(ctx context.Context, id string) (domain.PageInstance, error)
}

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	store    PageStore
	renderer rendering.Renderer
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(store PageStore, renderer rendering.Renderer) *HomeHandler {
	return &HomeHandler{store: store, renderer: renderer}
}

// HomeGet mounts a fresh page instance and renders the full document.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	ctx := c.Request().Context()

	inst, err := h.store.Mount(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to mount page", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create page")
	}
	middleware.FromContext(ctx).Debug("Page mounted", "instance_id", inst.ID)

	return h.renderer.RenderPage(c, http.StatusOK, view.HomeDocument(homeData(inst)))
}

// LikePost applies one like to the instance named in the path. htmx requests
// get only the redrawn button; plain form posts get the whole page back.
func (h *HomeHandler) LikePost(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	inst, err := h.store.Like(ctx, id)
	if err != nil {
		return stateError(c, id, err)
	}

	if c.Request().Header.Get(HeaderHXRequest) == "true" {
		return h.renderer.RenderPage(c, http.StatusOK, pages.LikeButton(inst.ID, inst.Likes))
	}
	return h.renderer.RenderPage(c, http.StatusOK, view.HomeDocument(homeData(inst)))
}

func homeData(inst domain.PageInstance) pages.HomeData {
	return pages.HomeData{InstanceID: inst.ID, Likes: inst.Likes}
}

// stateError maps store errors onto HTTP errors.
func stateError(c echo.Context, id string, err error) error {
	logger := middleware.FromContext(c.Request().Context())
	switch {
	case errors.Is(err, domain.ErrInvalidInstanceID):
		logger.Warn("Rejected malformed instance id", "instance_id", id)
		return echo.NewHTTPError(http.StatusBadRequest, "malformed page id")
	case errors.Is(err, domain.ErrInstanceNotFound):
		logger.Info("Like for unknown or expired page", "instance_id", id)
		return echo.NewHTTPError(http.StatusNotFound, "page expired, reload to start again")
	default:
		logger.Error("Failed to apply like", "instance_id", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not apply like")
	}
}
