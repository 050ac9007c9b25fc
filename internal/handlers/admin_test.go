package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amityadav08/SLVNK-Frontend/internal/api"
	"github.com/Amityadav08/SLVNK-Frontend/internal/handlers"
)

type stubAdminBackend struct {
	stats      *api.Stats
	users      *api.SearchPage
	user       *api.Profile
	created    *api.Profile
	createErr  error
	deletedID  string
	gotFilter  string
	gotPage    int
	gotPhotoID string
}

func (s *stubAdminBackend) AdminListUsers(ctx context.Context, page, limit int, filter string) (*api.SearchPage, error) {
	s.gotPage = page
	s.gotFilter = filter
	if s.users == nil {
		return &api.SearchPage{Page: page, TotalPages: 1}, nil
	}
	return s.users, nil
}

func (s *stubAdminBackend) AdminUser(ctx context.Context, id string) (*api.Profile, error) {
	return s.user, nil
}

func (s *stubAdminBackend) AdminCreateUser(ctx context.Context, fields map[string]any) (*api.Profile, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubAdminBackend) AdminDeleteUser(ctx context.Context, id string) error {
	s.deletedID = id
	return nil
}

func (s *stubAdminBackend) AdminStats(ctx context.Context) (*api.Stats, error) {
	if s.stats == nil {
		return &api.Stats{}, nil
	}
	return s.stats, nil
}

func (s *stubAdminBackend) UploadPicture(ctx context.Context, token string, photo api.Upload, userID string) (*api.Profile, string, error) {
	s.gotPhotoID = userID
	return &api.Profile{ID: userID}, "/uploads/x.jpg", nil
}

func newAdminApp(backend *stubAdminBackend, password string) *echo.Echo {
	return newApp(func(e *echo.Echo) {
		h := handlers.NewAdminHandler(backend, password)
		e.GET("/admin/login", h.LoginGet)
		e.POST("/admin/login", h.LoginPost)
		e.POST("/admin/logout", h.LogoutPost)
		e.GET("/admin", h.DashboardGet)
		e.GET("/admin/users/:id", h.UserGet)
		e.POST("/admin/users/:id/delete", h.DeletePost)
	})
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	e := newAdminApp(&stubAdminBackend{}, "letmein")

	rec := postForm(e, "/admin/login", url.Values{"password": {"guess"}}, nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestAdminLogin_CorrectPasswordSetsSession(t *testing.T) {
	e := newAdminApp(&stubAdminBackend{}, "letmein")

	rec := postForm(e, "/admin/login", url.Values{"password": {"letmein"}}, nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))

	var adminCookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "admin-session" {
			adminCookie = ck
		}
	}
	require.NotNil(t, adminCookie, "passing the gate must persist the admin flag")
}

func TestAdminLogin_EmptyConfiguredPasswordAlwaysFails(t *testing.T) {
	e := newAdminApp(&stubAdminBackend{}, "")

	rec := postForm(e, "/admin/login", url.Values{"password": {""}}, nil)

	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestAdminDashboard_ShowsVerifiedEstimate(t *testing.T) {
	backend := &stubAdminBackend{
		stats: &api.Stats{TotalUsers: 10},
		users: &api.SearchPage{
			Results:    []api.Profile{{ID: "u1", Name: "Anita", Email: "anita@example.com"}},
			Page:       1,
			TotalPages: 1,
		},
	}
	e := newAdminApp(backend, "letmein")

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// 75% of 10, rounded.
	assert.Contains(t, rec.Body.String(), ">8<")
	assert.Contains(t, rec.Body.String(), "Anita")
}

func TestAdminDashboard_PassesFilterAndPage(t *testing.T) {
	backend := &stubAdminBackend{}
	e := newAdminApp(backend, "letmein")

	req := httptest.NewRequest(http.MethodGet, "/admin?page=3&filter=week", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, backend.gotPage)
	assert.Equal(t, "week", backend.gotFilter)
}

func TestAdminDeletePost(t *testing.T) {
	backend := &stubAdminBackend{}
	e := newAdminApp(backend, "letmein")

	rec := postForm(e, "/admin/users/u42/delete", url.Values{}, nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
	assert.Equal(t, "u42", backend.deletedID)
}
