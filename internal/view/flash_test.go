package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/Amityadav08/SLVNK-Frontend/internal/view"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	sessionMiddleware(handler)(e.NewContext(req, rec))

	return c
}

func TestFlashMessages(t *testing.T) {
	t.Run("set and get success flash", func(t *testing.T) {
		c := setupTestContext()

		view.SetFlashSuccess(c, "It worked!")
		flashes := view.GetFlashData(c)

		assert.Equal(t, []string{"It worked!"}, flashes.Success)
		assert.Empty(t, flashes.Error)
	})

	t.Run("set and get error flash", func(t *testing.T) {
		c := setupTestContext()

		view.SetFlashError(c, "Something broke.")
		flashes := view.GetFlashData(c)

		assert.Equal(t, []string{"Something broke."}, flashes.Error)
		assert.Empty(t, flashes.Success)
	})

	t.Run("flashes are consumed on read", func(t *testing.T) {
		c := setupTestContext()

		view.SetFlashError(c, "once")
		_ = view.GetFlashData(c)
		again := view.GetFlashData(c)

		assert.Empty(t, again.Error)
	})

	t.Run("remembered email is consumed on recall", func(t *testing.T) {
		c := setupTestContext()

		view.RememberEmail(c, "priya@example.com")
		assert.Equal(t, "priya@example.com", view.RecallEmail(c))
		assert.Empty(t, view.RecallEmail(c))
	})
}
