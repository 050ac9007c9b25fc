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

// ProfileBackend is the slice of the backend client the profile pages
// need.
type ProfileBackend interface {
	UpdateProfile(ctx context.Context, token string, fields map[string]any) (*api.Profile, error)
	UploadPicture(ctx context.Context, token string, photo api.Upload, userID string) (*api.Profile, string, error)
	ProfileByID(ctx context.Context, token, id string) (*api.Profile, error)
}

// ProfileHandler serves the member's own profile page and other members'
// detail views. All routes are behind the auth guard, so the validated
// profile is always on the context.
type ProfileHandler struct {
	backend ProfileBackend
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(backend ProfileBackend) *ProfileHandler {
	return &ProfileHandler{backend: backend}
}

// MyProfileGet renders the member's own profile with the edit form
// (GET /profile).
func (h *ProfileHandler) MyProfileGet(c echo.Context) error {
	user := session.User(c)
	flashes := view.GetFlashData(c)
	return render(c, layouts.Base("My Profile", flashes, true, pages.MyProfile(user, nil)))
}

// editableFields are the profile fields the edit form can change.
var editableFields = []string{
	"city", "state", "occupation", "annualIncome", "educationLevel",
	"educationField", "maritalStatus", "diet", "bio",
}

// UpdatePost applies the edit form (POST /profile). Only submitted,
// non-empty fields are sent; the backend merges them into the profile.
func (h *ProfileHandler) UpdatePost(c echo.Context) error {
	fields := map[string]any{}
	for _, field := range editableFields {
		if value := c.FormValue(field); value != "" {
			fields[field] = value
		}
	}

	updated, err := h.backend.UpdateProfile(c.Request().Context(), session.Token(c), fields)
	if err != nil {
		if fieldErrs := api.FieldErrors(err); len(fieldErrs) > 0 {
			flashes := view.GetFlashData(c)
			return render(c, layouts.Base("My Profile", flashes, true, pages.MyProfile(session.User(c), fieldErrs)))
		}
		slog.Error("Profile update failed", "error", err)
		view.SetFlashError(c, api.Message(err))
		return c.Redirect(http.StatusSeeOther, "/profile")
	}

	session.UpdateUserData(c, updated)
	view.SetFlashSuccess(c, "Profile updated.")
	return c.Redirect(http.StatusSeeOther, "/profile")
}

// PhotoPost replaces the member's profile photo (POST /profile/photo).
func (h *ProfileHandler) PhotoPost(c echo.Context) error {
	photo, err := readUpload(c, "profileImage")
	if err != nil {
		view.SetFlashError(c, err.Error())
		return c.Redirect(http.StatusSeeOther, "/profile")
	}
	if photo == nil {
		view.SetFlashError(c, "Choose a photo to upload.")
		return c.Redirect(http.StatusSeeOther, "/profile")
	}

	updated, _, err := h.backend.UploadPicture(c.Request().Context(), session.Token(c), *photo, "")
	if err != nil {
		slog.Error("Photo upload failed", "error", err)
		view.SetFlashError(c, api.Message(err))
		return c.Redirect(http.StatusSeeOther, "/profile")
	}

	session.UpdateUserData(c, updated)
	view.SetFlashSuccess(c, "Photo updated.")
	return c.Redirect(http.StatusSeeOther, "/profile")
}

// DetailGet renders another member's profile (GET /profiles/:id).
func (h *ProfileHandler) DetailGet(c echo.Context) error {
	profile, err := h.backend.ProfileByID(c.Request().Context(), session.Token(c), c.Param("id"))
	if err != nil {
		slog.Warn("Profile lookup failed", "id", c.Param("id"), "error", err)
		view.SetFlashError(c, api.Message(err))
		return c.Redirect(http.StatusSeeOther, "/search")
	}
	if profile == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
	}

	flashes := view.GetFlashData(c)
	return render(c, layouts.Base(profile.Name, flashes, true, pages.ProfileDetail(profile)))
}
