package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amityadav08/SLVNK-Frontend/internal/middleware"
)

func TestLogger_GeneratesRequestID(t *testing.T) {
	e := echo.New()
	e.Use(middleware.Logger)
	e.GET("/", func(c echo.Context) error {
		logger := middleware.FromContext(c.Request().Context())
		require.NotNil(t, logger)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestLogger_PreservesIncomingRequestID(t *testing.T) {
	e := echo.New()
	e.Use(middleware.Logger)
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "upstream-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "upstream-id", rec.Header().Get(echo.HeaderXRequestID))
}
