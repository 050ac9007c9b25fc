package api

import (
	"context"
	"net/http"
	"net/url"
)

// Login exchanges credentials for a bearer token and the user's profile.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	var out struct {
		envelope
		Token string   `json:"token"`
		User  *Profile `json:"user"`
	}
	req := request{
		method:   http.MethodPost,
		path:     "/auth/login",
		jsonBody: map[string]string{"email": email, "password": password},
	}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &Credentials{Token: out.Token, User: out.User}, nil
}

// Register creates a new account from the signup wizard's collected fields
// and an optional profile photo. The backend returns structured per-field
// errors on validation failure; they surface via FieldErrors.
func (c *Client) Register(ctx context.Context, fields url.Values, photo *Upload) (*Credentials, error) {
	var out struct {
		envelope
		Token string   `json:"token"`
		User  *Profile `json:"user"`
	}
	req := request{
		method: http.MethodPost,
		path:   "/auth/register",
		multipart: &multipartBody{
			fields:    fields,
			file:      photo,
			fileField: "profileImage",
		},
	}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &Credentials{Token: out.Token, User: out.User}, nil
}

// CurrentUser fetches the profile belonging to token. A 401 here means the
// token is expired or invalid and the session must be torn down.
func (c *Client) CurrentUser(ctx context.Context, token string) (*Profile, error) {
	var out struct {
		envelope
		User *Profile `json:"user"`
	}
	req := request{method: http.MethodGet, path: "/profiles/me", token: token}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// UpdateProfile sends a partial profile update and returns the merged
// profile the backend now holds.
func (c *Client) UpdateProfile(ctx context.Context, token string, fields map[string]any) (*Profile, error) {
	var out struct {
		envelope
		User *Profile `json:"user"`
	}
	req := request{
		method:   http.MethodPut,
		path:     "/profiles/me",
		token:    token,
		jsonBody: fields,
	}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// UploadPicture replaces the profile photo. userID is only set by the admin
// flow, which uploads on behalf of a freshly created user.
func (c *Client) UploadPicture(ctx context.Context, token string, photo Upload, userID string) (*Profile, string, error) {
	fields := url.Values{}
	if userID != "" {
		fields.Set("userId", userID)
	}
	var out struct {
		envelope
		User     *Profile `json:"user"`
		FilePath string   `json:"filePath"`
	}
	req := request{
		method: http.MethodPost,
		path:   "/profiles/me/upload-picture",
		token:  token,
		multipart: &multipartBody{
			fields:    fields,
			file:      &photo,
			fileField: "profileImage",
		},
	}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, "", err
	}
	return out.User, out.FilePath, nil
}
