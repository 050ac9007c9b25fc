package handlers_test

import (
	"bytes"
	"context"
	"mime/multipart"
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

type stubRegistrar struct {
	creds     *api.Credentials
	err       error
	gotFields url.Values
	gotPhoto  *api.Upload
}

func (s *stubRegistrar) Register(ctx context.Context, fields url.Values, photo *api.Upload) (*api.Credentials, error) {
	s.gotFields = fields
	s.gotPhoto = photo
	if s.err != nil {
		return nil, s.err
	}
	return s.creds, nil
}

func newSignupApp(backend *stubRegistrar) *echo.Echo {
	return newApp(func(e *echo.Echo) {
		h := handlers.NewSignupHandler(backend)
		e.GET("/signup", h.SignupGet)
		e.GET("/signup/:step", h.StepGet)
		e.POST("/signup/1", h.PersonalPost)
		e.POST("/signup/2", h.AccountPost)
		e.POST("/signup/3", h.ProfilePost)
		e.POST("/signup/4", h.PhotoPost)
	})
}

var (
	personalForm = url.Values{
		"name":             {"Priya Sharma"},
		"gender":           {"Female"},
		"dateOfBirth":      {"1996-04-12"},
		"mobileNumber":     {"9876543210"},
		"city":             {"Pune"},
		"state":            {"Maharashtra"},
		"country":          {"India"},
		"profileCreatedBy": {"Self"},
	}
	accountForm = url.Values{
		"email":           {"priya@example.com"},
		"password":        {"super-secret-1"},
		"confirmPassword": {"super-secret-1"},
	}
	profileForm = url.Values{
		"maritalStatus":  {"Never Married"},
		"motherTongue":   {"Marathi"},
		"religion":       {"Hindu"},
		"caste":          {"Maratha"},
		"educationLevel": {"Masters"},
		"occupation":     {"Software Engineer"},
	}
)

// walkWizard posts the first three steps and returns the accumulated
// session cookies.
func walkWizard(t *testing.T, e *echo.Echo) []*http.Cookie {
	t.Helper()
	var cookies []*http.Cookie
	steps := []struct {
		path string
		form url.Values
	}{
		{"/signup/1", personalForm},
		{"/signup/2", accountForm},
		{"/signup/3", profileForm},
	}
	for _, step := range steps {
		rec := postForm(e, step.path, step.form, cookies)
		require.Equal(t, http.StatusSeeOther, rec.Code, "step %s must advance", step.path)
		cookies = mergeCookies(cookies, rec.Result().Cookies())
	}
	return cookies
}

func mergeCookies(existing, fresh []*http.Cookie) []*http.Cookie {
	byName := map[string]*http.Cookie{}
	for _, ck := range existing {
		byName[ck.Name] = ck
	}
	for _, ck := range fresh {
		byName[ck.Name] = ck
	}
	out := make([]*http.Cookie, 0, len(byName))
	for _, ck := range byName {
		out = append(out, ck)
	}
	return out
}

func TestSignupWizard_CompletesAndLogsIn(t *testing.T) {
	backend := &stubRegistrar{
		creds: &api.Credentials{Token: "fresh-token", User: &api.Profile{ID: "u9"}},
	}
	e := newSignupApp(backend)
	cookies := walkWizard(t, e)

	// Final step: multipart submit without a photo.
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/signup/4", &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/search", rec.Header().Get("Location"))

	require.NotNil(t, backend.gotFields, "the backend must receive the collected fields")
	assert.Equal(t, "Priya Sharma", backend.gotFields.Get("name"))
	assert.Equal(t, "priya@example.com", backend.gotFields.Get("email"))
	assert.Equal(t, "super-secret-1", backend.gotFields.Get("password"))
	assert.Equal(t, "Hindu", backend.gotFields.Get("religion"))
	assert.Equal(t, "Software Engineer", backend.gotFields.Get("occupation"))
	assert.Empty(t, backend.gotFields.Get("confirmPassword"), "the confirmation field is wizard-local")
	assert.Nil(t, backend.gotPhoto)

	cookie := authCookie(rec)
	require.NotNil(t, cookie, "registration must log the new member in")
	assert.Equal(t, "fresh-token", cookie.Value)
}

func TestSignupWizard_PhotoIsForwarded(t *testing.T) {
	backend := &stubRegistrar{creds: &api.Credentials{Token: "t"}}
	e := newSignupApp(backend)
	cookies := walkWizard(t, e)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("profileImage", "me.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/signup/4", &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.NotNil(t, backend.gotPhoto)
	assert.Equal(t, "me.jpg", backend.gotPhoto.Filename)
	assert.Equal(t, []byte("jpeg-bytes"), backend.gotPhoto.Content)
}

func TestSignupStep1_InvalidSubmissionStaysOnStep(t *testing.T) {
	backend := &stubRegistrar{}
	e := newSignupApp(backend)

	form := url.Values{"name": {"P"}} // too short, everything else missing
	rec := postForm(e, "/signup/1", form, nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/signup/1", rec.Header().Get("Location"))

	// The follow-up GET renders the inline errors.
	req := httptest.NewRequest(http.MethodGet, "/signup/1", nil)
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	getRec := httptest.NewRecorder()
	e.ServeHTTP(getRec, req)

	assert.Equal(t, http.StatusOK, getRec.Code)
	assert.Contains(t, getRec.Body.String(), "This value is too short.")
	assert.Contains(t, getRec.Body.String(), "This field is required.")
}

func TestSignupWizard_BackendFieldErrorsReturnToOwningStep(t *testing.T) {
	backend := &stubRegistrar{
		err: &api.Error{
			Status:  http.StatusBadRequest,
			Message: "Validation failed",
			Fields:  map[string]string{"email": "Email already registered"},
		},
	}
	e := newSignupApp(backend)
	cookies := walkWizard(t, e)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/signup/4", &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/signup/2", rec.Header().Get("Location"), "an email error belongs to the account step")
	assert.Nil(t, authCookie(rec))
}

func TestSignupStepValues_SurviveAcrossSteps(t *testing.T) {
	backend := &stubRegistrar{}
	e := newSignupApp(backend)

	rec := postForm(e, "/signup/1", personalForm, nil)
	cookies := rec.Result().Cookies()

	// Going back to step one re-fills the form.
	req := httptest.NewRequest(http.MethodGet, "/signup/1", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	getRec := httptest.NewRecorder()
	e.ServeHTTP(getRec, req)

	assert.Contains(t, getRec.Body.String(), "Priya Sharma")
	assert.Contains(t, getRec.Body.String(), "Pune")
}
