package handlers

import (
	"context"
	"encoding/gob"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/Amityadav08/SLVNK-Frontend/internal/api"
	sess "github.com/Amityadav08/SLVNK-Frontend/internal/session"
	"github.com/Amityadav08/SLVNK-Frontend/internal/view"
	"github.com/Amityadav08/SLVNK-Frontend/web/templates/layouts"
	"github.com/Amityadav08/SLVNK-Frontend/web/templates/pages"
)

func init() {
	// The wizard state is a plain string map stored in the cookie session.
	gob.Register(map[string]string{})
}

const (
	signupSessionName = "signup-session"
	signupFieldsKey   = "fields"
	signupErrorsKey   = "errors"

	// maxPhotoBytes caps the signup photo upload.
	maxPhotoBytes = 5 << 20
)

// Registrar is the slice of the backend client the signup wizard needs.
type Registrar interface {
	Register(ctx context.Context, fields url.Values, photo *api.Upload) (*api.Credentials, error)
}

// SignupHandler drives the four-step registration wizard. Entered values
// accumulate in the cookie session until the final step submits them to
// the backend in one multipart request.
type SignupHandler struct {
	backend Registrar
}

// NewSignupHandler creates a new SignupHandler.
func NewSignupHandler(backend Registrar) *SignupHandler {
	return &SignupHandler{backend: backend}
}

// SignupGet redirects the bare /signup to the first step.
func (h *SignupHandler) SignupGet(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/signup/1")
}

// StepGet renders one wizard step (GET /signup/:step).
func (h *SignupHandler) StepGet(c echo.Context) error {
	step := stepParam(c)
	values, errors := h.loadState(c)
	flashes := view.GetFlashData(c)
	return render(c, layouts.Base("Register", flashes, false, pages.SignupStep(step, values, errors)))
}

// PersonalPost handles step one (POST /signup/1).
func (h *SignupHandler) PersonalPost(c echo.Context) error {
	var req SignupPersonalRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Invalid request.")
		return c.Redirect(http.StatusSeeOther, "/signup/1")
	}
	if err := c.Validate(&req); err != nil {
		return h.failStep(c, 1, validationErrors(err))
	}
	if msg := checkDateOfBirth(req.DateOfBirth); msg != "" {
		return h.failStep(c, 1, map[string]string{"dateOfBirth": msg})
	}

	h.mergeFields(c, map[string]string{
		"name":             req.Name,
		"gender":           req.Gender,
		"dateOfBirth":      req.DateOfBirth,
		"mobileNumber":     req.MobileNumber,
		"city":             req.City,
		"state":            req.State,
		"country":          req.Country,
		"profileCreatedBy": req.ProfileCreatedBy,
	})
	return c.Redirect(http.StatusSeeOther, "/signup/2")
}

// AccountPost handles step two (POST /signup/2).
func (h *SignupHandler) AccountPost(c echo.Context) error {
	var req SignupAccountRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Invalid request.")
		return c.Redirect(http.StatusSeeOther, "/signup/2")
	}
	if err := c.Validate(&req); err != nil {
		return h.failStep(c, 2, validationErrors(err))
	}

	h.mergeFields(c, map[string]string{
		"email":    req.Email,
		"password": req.Password,
	})
	return c.Redirect(http.StatusSeeOther, "/signup/3")
}

// ProfilePost handles step three (POST /signup/3). Beyond the validated
// required fields, every known optional field is carried through as
// entered.
func (h *SignupHandler) ProfilePost(c echo.Context) error {
	var req SignupProfileRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Invalid request.")
		return c.Redirect(http.StatusSeeOther, "/signup/3")
	}
	if err := c.Validate(&req); err != nil {
		return h.failStep(c, 3, validationErrors(err))
	}

	merged := map[string]string{}
	for _, field := range profileStepFields {
		merged[field] = c.FormValue(field)
	}
	h.mergeFields(c, merged)
	return c.Redirect(http.StatusSeeOther, "/signup/4")
}

// profileStepFields are all the step-three form fields, validated or not.
var profileStepFields = []string{
	"maritalStatus", "heightCm", "weightKg", "physicalStatus", "bodyType",
	"complexion", "motherTongue", "religion", "caste", "subCaste", "gothra",
	"manglik", "educationLevel", "educationField", "occupation",
	"annualIncome", "fatherStatus", "motherStatus", "numberOfSiblings",
	"siblingsMarried", "familyType", "familyValues", "diet",
	"smokingHabits", "drinkingHabits", "bio",
}

// PhotoPost handles the final step (POST /signup/4): read the optional
// photo, submit everything collected so far, and log the new member in.
func (h *SignupHandler) PhotoPost(c echo.Context) error {
	values, _ := h.loadState(c)

	fields := url.Values{}
	for key, value := range values {
		if value != "" {
			fields.Set(key, value)
		}
	}

	photo, err := readUpload(c, "profileImage")
	if err != nil {
		return h.failStep(c, 4, map[string]string{"profileImage": err.Error()})
	}

	creds, err := h.backend.Register(c.Request().Context(), fields, photo)
	if err != nil {
		// Route backend field errors back to the step that owns them.
		if fieldErrs := api.FieldErrors(err); len(fieldErrs) > 0 {
			return h.failStep(c, owningStep(fieldErrs), fieldErrs)
		}
		slog.Error("Registration failed", "error", err)
		view.SetFlashError(c, api.Message(err))
		return c.Redirect(http.StatusSeeOther, "/signup/4")
	}

	h.clearState(c)
	sess.SetToken(c, creds.Token)
	view.SetFlashSuccess(c, "Welcome to SLVNK Matrimony! Your profile is live.")
	return c.Redirect(http.StatusSeeOther, "/search")
}

// stepFields maps each wizard step to the form fields it owns, for routing
// backend validation errors to the right page.
var stepFields = map[int][]string{
	1: {"name", "gender", "dateOfBirth", "mobileNumber", "city", "state", "country", "profileCreatedBy"},
	2: {"email", "password"},
	3: profileStepFields,
}

func owningStep(fieldErrs map[string]string) int {
	for step := 1; step <= 3; step++ {
		for _, field := range stepFields[step] {
			if _, ok := fieldErrs[field]; ok {
				return step
			}
		}
	}
	return 4
}

// failStep stashes the field errors and sends the visitor back to step.
func (h *SignupHandler) failStep(c echo.Context, step int, fieldErrs map[string]string) error {
	s, _ := session.Get(signupSessionName, c)
	s.Values[signupErrorsKey] = fieldErrs
	if err := s.Save(c.Request(), c.Response()); err != nil {
		slog.Error("Failed to save signup session", "error", err)
	}
	view.SetFlashError(c, "Please fix the highlighted fields.")
	return c.Redirect(http.StatusSeeOther, "/signup/"+strconv.Itoa(step))
}

// mergeFields folds submitted values into the wizard state.
func (h *SignupHandler) mergeFields(c echo.Context, submitted map[string]string) {
	s, _ := session.Get(signupSessionName, c)
	fields, _ := s.Values[signupFieldsKey].(map[string]string)
	if fields == nil {
		fields = map[string]string{}
	}
	for key, value := range submitted {
		fields[key] = value
	}
	s.Values[signupFieldsKey] = fields
	if err := s.Save(c.Request(), c.Response()); err != nil {
		slog.Error("Failed to save signup session", "error", err)
	}
}

// loadState returns the accumulated values and consumes any stashed field
// errors.
func (h *SignupHandler) loadState(c echo.Context) (values, errors map[string]string) {
	s, _ := session.Get(signupSessionName, c)
	values, _ = s.Values[signupFieldsKey].(map[string]string)
	if values == nil {
		values = map[string]string{}
	}
	errors, _ = s.Values[signupErrorsKey].(map[string]string)
	if errors == nil {
		errors = map[string]string{}
	} else {
		delete(s.Values, signupErrorsKey)
		_ = s.Save(c.Request(), c.Response())
	}
	return values, errors
}

func (h *SignupHandler) clearState(c echo.Context) {
	s, _ := session.Get(signupSessionName, c)
	s.Options.MaxAge = -1
	s.Values = map[interface{}]interface{}{}
	if err := s.Save(c.Request(), c.Response()); err != nil {
		slog.Error("Failed to clear signup session", "error", err)
	}
}

// checkDateOfBirth enforces the membership rules the date format tag
// cannot: at least 18 years old, and not in the future.
func checkDateOfBirth(value string) string {
	dob, err := time.Parse("2006-01-02", value)
	if err != nil {
		return "Use the date picker to choose a valid date."
	}
	now := time.Now()
	if dob.After(now) {
		return "Date of birth cannot be in the future."
	}
	if dob.AddDate(18, 0, 0).After(now) {
		return "You must be at least 18 years old."
	}
	return ""
}

func stepParam(c echo.Context) int {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil || step < 1 || step > 4 {
		return 1
	}
	return step
}

// readUpload pulls a bounded file out of the multipart form. A missing
// file is not an error; the photo is optional.
func readUpload(c echo.Context, field string) (*api.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	if fh.Size > maxPhotoBytes {
		return nil, errors.New("Photo must be under 5 MB.")
	}
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, maxPhotoBytes+1))
	if err != nil {
		return nil, err
	}
	return &api.Upload{Filename: fh.Filename, Content: content}, nil
}
