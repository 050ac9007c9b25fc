package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/Amityadav08/SLVNK-Frontend/internal/session"
	"github.com/Amityadav08/SLVNK-Frontend/internal/view"
	"github.com/Amityadav08/SLVNK-Frontend/web/templates/layouts"
	"github.com/Amityadav08/SLVNK-Frontend/web/templates/pages"
)

// PageHandler serves the static public pages.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// loggedIn is the navbar's notion of authentication on public pages: the
// presence of a token cookie. Guarded routes validate the token properly;
// here a stale token only mislabels the navbar until the next guarded
// request clears it.
func loggedIn(c echo.Context) bool {
	return session.IsAuthenticated(c) || session.Token(c) != ""
}

// HomeGet renders the landing page (GET /).
func (h *PageHandler) HomeGet(c echo.Context) error {
	return render(c, layouts.Base("", view.GetFlashData(c), loggedIn(c), pages.Home()))
}

// AboutGet renders the about page (GET /about).
func (h *PageHandler) AboutGet(c echo.Context) error {
	return render(c, layouts.Base("About", view.GetFlashData(c), loggedIn(c), pages.About()))
}

// PricingGet renders the membership plans (GET /pricing).
func (h *PageHandler) PricingGet(c echo.Context) error {
	return render(c, layouts.Base("Pricing", view.GetFlashData(c), loggedIn(c), pages.Pricing()))
}

// ContactGet renders the contact page (GET /contact-us).
func (h *PageHandler) ContactGet(c echo.Context) error {
	return render(c, layouts.Base("Contact Us", view.GetFlashData(c), loggedIn(c), pages.Contact()))
}
