package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Amityadav08/SLVNK-Frontend/internal/media"
	"github.com/Amityadav08/SLVNK-Frontend/internal/middleware"
)

// MediaHandler serves backend-hosted uploads through the local cache, so
// page markup never references the backend host directly.
type MediaHandler struct {
	cache *media.Cache
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(cache *media.Cache) *MediaHandler {
	return &MediaHandler{cache: cache}
}

// Serve streams one upload (GET /media/*).
func (h *MediaHandler) Serve(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	content, ctype, err := h.cache.Open(ctx, c.Param("*"))
	if err != nil {
		logger.Warn("Media fetch failed", "path", c.Param("*"), "error", err)
		return echo.NewHTTPError(http.StatusNotFound, "Media not available")
	}
	defer content.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Stream(http.StatusOK, ctype, content)
}
