package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Amityadav08/SLVNK-Frontend/internal/api"
	"github.com/Amityadav08/SLVNK-Frontend/internal/session"
)

// UserValidator resolves a bearer token to the profile it belongs to.
type UserValidator interface {
	CurrentUser(ctx context.Context, token string) (*api.Profile, error)
}

// RequireUser protects member-only routes. A request only reaches the
// wrapped handler with a token the backend has just validated; the profile
// is cached on the context for the handler to use.
func RequireUser(backend UserValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 1. Get the token from the cookie.
			token := session.Token(c)
			if token == "" {
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			// 2. Validate the token against the backend. An invalid or
			// expired token tears the session down exactly once, here.
			user, err := backend.CurrentUser(c.Request().Context(), token)
			if err != nil {
				if api.IsUnauthorized(err) {
					slog.Info("Clearing invalid session token")
					session.ClearToken(c)
					return c.Redirect(http.StatusSeeOther, "/login")
				}
				// Backend unreachable: don't log the visitor out over a
				// transient failure, show the error page instead.
				slog.Error("Token validation failed", "error", err)
				return echo.NewHTTPError(http.StatusBadGateway, api.Message(err))
			}
			if user == nil {
				session.ClearToken(c)
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			// 3. Store the profile in the context for downstream handlers.
			session.WithUser(c, user)
			return next(c)
		}
	}
}

// RequireAdmin protects the admin area behind the frontend's password
// gate. The backend itself only checks an unverified request header, so
// this flag is the only thing standing between a visitor and /admin.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.IsAdmin(c) {
				return c.Redirect(http.StatusSeeOther, "/admin/login")
			}
			return next(c)
		}
	}
}
