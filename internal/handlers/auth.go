package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Amityadav08/SLVNK-Frontend/internal/api"
	"github.com/Amityadav08/SLVNK-Frontend/internal/session"
	"github.com/Amityadav08/SLVNK-Frontend/internal/view"
	"github.com/Amityadav08/SLVNK-Frontend/web/templates/layouts"
	"github.com/Amityadav08/SLVNK-Frontend/web/templates/pages"
)

// Authenticator is the slice of the backend client the auth handler needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*api.Credentials, error)
}

// AuthHandler handles member login and logout.
type AuthHandler struct {
	backend Authenticator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(backend Authenticator) *AuthHandler {
	return &AuthHandler{backend: backend}
}

// LoginGet renders the login page (GET /login). A visitor who already has
// a token is sent straight to the search page.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	if session.Token(c) != "" {
		return c.Redirect(http.StatusSeeOther, "/search")
	}

	// 1. Recall the email from a failed attempt so it pre-fills the form.
	email := view.RecallEmail(c)

	// 2. Render the page with any pending flash messages.
	flashes := view.GetFlashData(c)
	return render(c, layouts.Base("Login", flashes, false, pages.Login(email)))
}

// LoginPost handles the login form submission (POST /login).
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Invalid request.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, "Enter your email and password.")
		view.RememberEmail(c, req.Email)
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	creds, err := h.backend.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("Failed login attempt", "email", req.Email, "error", err)
		view.SetFlashError(c, api.Message(err))
		// Preserve the submitted email for the next render of the form.
		view.RememberEmail(c, req.Email)
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	session.SetToken(c, creds.Token)
	view.SetFlashSuccess(c, "Logged in successfully!")
	return c.Redirect(http.StatusSeeOther, "/search")
}

// Logout clears the session cookie (GET /logout). The token is opaque to
// us and the backend has no revocation endpoint, so logout is purely
// local.
func (h *AuthHandler) Logout(c echo.Context) error {
	session.ClearToken(c)
	view.SetFlashSuccess(c, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/login")
}
