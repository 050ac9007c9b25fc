// Package handlers contains the HTTP handlers, one struct per feature
// area, each constructed with its dependencies by the server.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
)

// render writes a gomponents tree as the HTML response.
func render(c echo.Context, node cmp.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return node.Render(c.Response().Writer)
}
