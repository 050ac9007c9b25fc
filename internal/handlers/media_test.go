package handlers_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/Amityadav08/SLVNK-Frontend/internal/handlers"
	"github.com/Amityadav08/SLVNK-Frontend/internal/media"
)

type staticFetcher struct {
	body string
	err  error
}

func (f *staticFetcher) Media(ctx context.Context, path string) (io.ReadCloser, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return io.NopCloser(strings.NewReader(f.body)), "image/jpeg", nil
}

func TestMediaServe(t *testing.T) {
	cache := media.NewCache(afero.NewMemMapFs(), &staticFetcher{body: "jpeg-bytes"})
	e := echo.New()
	e.GET("/media/*", handlers.NewMediaHandler(cache).Serve)

	req := httptest.NewRequest(http.MethodGet, "/media/uploads/u1/photo.jpg", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpeg-bytes", rec.Body.String())
	assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age")
}

func TestMediaServe_NotFound(t *testing.T) {
	cache := media.NewCache(afero.NewMemMapFs(), &staticFetcher{err: errors.New("gone")})
	e := echo.New()
	e.GET("/media/*", handlers.NewMediaHandler(cache).Serve)

	req := httptest.NewRequest(http.MethodGet, "/media/uploads/missing.jpg", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
