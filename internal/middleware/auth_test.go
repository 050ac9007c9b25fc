package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amityadav08/SLVNK-Frontend/internal/api"
	"github.com/Amityadav08/SLVNK-Frontend/internal/middleware"
	"github.com/Amityadav08/SLVNK-Frontend/internal/session"
)

type stubValidator struct {
	user *api.Profile
	err  error
	seen string
}

func (s *stubValidator) CurrentUser(ctx context.Context, token string) (*api.Profile, error) {
	s.seen = token
	return s.user, s.err
}

func newGuardedEcho(backend middleware.UserValidator) *echo.Echo {
	e := echo.New()
	e.Use(echosession.Middleware(sessions.NewCookieStore([]byte("test-secret"))))
	e.GET("/search", func(c echo.Context) error {
		user := session.User(c)
		return c.String(http.StatusOK, "hello "+user.Name)
	}, middleware.RequireUser(backend))
	return e
}

func TestRequireUser_NoTokenRedirectsToLogin(t *testing.T) {
	e := newGuardedEcho(&stubValidator{})
	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireUser_ValidTokenLoadsUser(t *testing.T) {
	backend := &stubValidator{user: &api.Profile{ID: "u1", Name: "Priya"}}
	e := newGuardedEcho(backend)

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	req.AddCookie(&http.Cookie{Name: session.TokenCookie, Value: "tok-123"})
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello Priya", rec.Body.String())
	assert.Equal(t, "tok-123", backend.seen)
}

func TestRequireUser_UnauthorizedClearsCookieAndRedirects(t *testing.T) {
	backend := &stubValidator{err: &api.Error{Status: http.StatusUnauthorized, Message: "Token expired"}}
	e := newGuardedEcho(backend)

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	req.AddCookie(&http.Cookie{Name: session.TokenCookie, Value: "stale"})
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// The invalid token must have been expired in the same response.
	var cleared bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == session.TokenCookie {
			cleared = cookie.Value == "" && cookie.MaxAge < 0
		}
	}
	assert.True(t, cleared, "expected the auth cookie to be expired")
}

func TestRequireUser_BackendOutageDoesNotLogOut(t *testing.T) {
	backend := &stubValidator{err: &api.Error{Message: "network error: connection refused"}}
	e := newGuardedEcho(backend)

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	req.AddCookie(&http.Cookie{Name: session.TokenCookie, Value: "tok-123"})
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	for _, cookie := range rec.Result().Cookies() {
		assert.NotEqual(t, session.TokenCookie, cookie.Name, "a transient outage must not clear the session")
	}
}

func TestRequireAdmin_GatesOnSessionFlag(t *testing.T) {
	e := echo.New()
	e.Use(echosession.Middleware(sessions.NewCookieStore([]byte("test-secret"))))
	e.GET("/admin/dashboard", func(c echo.Context) error {
		return c.String(http.StatusOK, "admin")
	}, middleware.RequireAdmin())
	e.GET("/grant", func(c echo.Context) error {
		require.NoError(t, session.SetAdmin(c, true))
		return c.NoContent(http.StatusOK)
	})

	// Without the flag: bounced to the admin login page.
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))

	// Grab a session cookie with the flag set, then retry.
	grantReq := httptest.NewRequest(http.MethodGet, "/grant", nil)
	grantRec := httptest.NewRecorder()
	e.ServeHTTP(grantRec, grantReq)

	req = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, cookie := range grantRec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
