// Package session owns everything about the browser's authenticated state:
// the auth token cookie, the validated user cached on the request context,
// and the admin flag kept in the cookie session. No other package touches
// the token directly.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/Amityadav08/SLVNK-Frontend/internal/api"
)

const (
	// TokenCookie is the durable storage key for the backend bearer token.
	TokenCookie = "auth_token"

	// tokenTTL matches the backend's token lifetime.
	tokenTTL = 7 * 24 * time.Hour

	// userContextKey is where the auth middleware caches the validated
	// profile for downstream handlers.
	userContextKey = "session.user"

	// adminSessionName and adminFlagKey hold the admin gate state. This is
	// a frontend-only flag; the backend's admin routes are not credential
	// checked (see DESIGN.md).
	adminSessionName = "admin-session"
	adminFlagKey     = "admin_authenticated"
)

// SetToken persists the backend token in an HttpOnly cookie. An empty
// token expires the cookie immediately, which is how logout works.
func SetToken(c echo.Context, token string) {
	cookie := &http.Cookie{
		Name:  TokenCookie,
		Value: token,
		Path:  "/",
		// HttpOnly keeps the token away from page scripts.
		HttpOnly: true,
		Secure:   c.Request().TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		cookie.MaxAge = -1
	} else {
		cookie.Expires = time.Now().UTC().Add(tokenTTL)
	}
	c.SetCookie(cookie)
}

// ClearToken removes the auth cookie. Logout is purely local: the token is
// opaque to us and the backend has no revocation endpoint.
func ClearToken(c echo.Context) {
	SetToken(c, "")
}

// Token returns the stored backend token, or "" when the visitor is
// anonymous.
func Token(c echo.Context) string {
	cookie, err := c.Cookie(TokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// WithUser caches the validated profile on the request context.
func WithUser(c echo.Context, user *api.Profile) {
	c.Set(userContextKey, user)
}

// User returns the validated profile cached by the auth middleware, or nil
// outside guarded routes.
func User(c echo.Context) *api.Profile {
	user, _ := c.Get(userContextKey).(*api.Profile)
	return user
}

// IsAuthenticated reports whether a validated user is loaded for this
// request. A token alone is not enough; the middleware must have resolved
// it to a profile.
func IsAuthenticated(c echo.Context) bool {
	return User(c) != nil
}

// UpdateUserData merges changed fields into the cached profile so the rest
// of the current request renders fresh data. No-op when no user is loaded.
func UpdateUserData(c echo.Context, updated *api.Profile) {
	if User(c) == nil || updated == nil {
		return
	}
	WithUser(c, updated)
}

// SetAdmin flips the admin flag in the cookie session.
func SetAdmin(c echo.Context, ok bool) error {
	sess, err := session.Get(adminSessionName, c)
	if err != nil {
		return err
	}
	if ok {
		sess.Values[adminFlagKey] = true
	} else {
		delete(sess.Values, adminFlagKey)
	}
	return sess.Save(c.Request(), c.Response())
}

// IsAdmin reports whether this browser passed the admin gate.
func IsAdmin(c echo.Context) bool {
	sess, err := session.Get(adminSessionName, c)
	if err != nil {
		return false
	}
	flag, _ := sess.Values[adminFlagKey].(bool)
	return flag
}
